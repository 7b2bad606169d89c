package domain

import (
	"testing"

	"github.com/fanpassport/backend/internal/model"
	"github.com/fanpassport/backend/pkg/authenticator"
	"github.com/fanpassport/backend/pkg/testutil"
	"github.com/fanpassport/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_authDomain_Login(t *testing.T) {
	ctx := testutil.MockContext()
	engine := authenticator.NewTokenEngine[model.AccessToken](
		xcontext.Configs(ctx).Auth.AccessToken)
	domain := NewAuthDomain(engine)

	address := "0xAbC4567890123456789012345678901234567890"
	resp, err := domain.Login(ctx, &model.LoginRequest{Address: address})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	// The token carries the lowercased address.
	info, err := engine.Verify(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "0xabc4567890123456789012345678901234567890", info.Address)
}

func Test_authDomain_Login_invalidAddress(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewAuthDomain(authenticator.NewTokenEngine[model.AccessToken](
		xcontext.Configs(ctx).Auth.AccessToken))

	for _, address := range []string{"", "abc", "0x1234", "0xZZ!4567890123456789012345678901234567890"} {
		_, err := domain.Login(ctx, &model.LoginRequest{Address: address})
		require.Error(t, err)
	}
}
