package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fanpassport/backend/internal/model"
	"github.com/fanpassport/backend/pkg/authenticator"
	"github.com/fanpassport/backend/pkg/testutil"
	"github.com/fanpassport/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_AuthVerifier_Middleware(t *testing.T) {
	ctx := testutil.MockContext()
	engine := authenticator.NewTokenEngine[model.AccessToken](
		xcontext.Configs(ctx).Auth.AccessToken)
	middleware := NewAuthVerifier(engine).Middleware()

	token, err := engine.Generate("0xabcd", model.AccessToken{Address: "0xabcd"})
	require.NoError(t, err)

	// Bearer header.
	req := httptest.NewRequest("GET", "/getProgress", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newCtx, err := middleware(xcontext.WithHTTPRequest(ctx, req))
	require.NoError(t, err)
	require.Equal(t, "0xabcd", xcontext.RequestUserID(newCtx))

	// Cookie fallback.
	cookieReq := httptest.NewRequest("GET", "/getProgress", nil)
	cookieReq.AddCookie(&http.Cookie{
		Name:  xcontext.Configs(ctx).Auth.AccessToken.Name,
		Value: token,
	})
	newCtx, err = middleware(xcontext.WithHTTPRequest(ctx, cookieReq))
	require.NoError(t, err)
	require.Equal(t, "0xabcd", xcontext.RequestUserID(newCtx))
}

func Test_AuthVerifier_Middleware_rejections(t *testing.T) {
	ctx := testutil.MockContext()
	engine := authenticator.NewTokenEngine[model.AccessToken](
		xcontext.Configs(ctx).Auth.AccessToken)
	middleware := NewAuthVerifier(engine).Middleware()

	// No token at all.
	req := httptest.NewRequest("GET", "/getProgress", nil)
	_, err := middleware(xcontext.WithHTTPRequest(ctx, req))
	require.Error(t, err)

	// A corrupted token.
	req = httptest.NewRequest("GET", "/getProgress", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	_, err = middleware(xcontext.WithHTTPRequest(ctx, req))
	require.Error(t, err)

	// A non-bearer scheme.
	req = httptest.NewRequest("GET", "/getProgress", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	_, err = middleware(xcontext.WithHTTPRequest(ctx, req))
	require.Error(t, err)
}
