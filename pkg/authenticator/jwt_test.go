package authenticator_test

import (
	"testing"
	"time"

	"github.com/fanpassport/backend/config"
	"github.com/fanpassport/backend/pkg/authenticator"
	"github.com/stretchr/testify/require"
)

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine[string](config.TokenConfigs{
		Secret:     "secret",
		Expiration: config.Duration(time.Minute),
	})

	token, err := engine.Generate("sub", "abc")
	require.Nil(t, err)

	msg, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "abc", msg)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine[string](config.TokenConfigs{
		Secret:     "secret",
		Expiration: config.Duration(-time.Minute),
	})

	token, err := engine.Generate("sub", "abc")
	require.Nil(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}
