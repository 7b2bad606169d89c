package middleware

import (
	"context"
	"strings"

	"github.com/fanpassport/backend/internal/model"
	"github.com/fanpassport/backend/pkg/authenticator"
	"github.com/fanpassport/backend/pkg/errorx"
	"github.com/fanpassport/backend/pkg/router"
	"github.com/fanpassport/backend/pkg/xcontext"
)

type AuthVerifier struct {
	accessTokenEngine authenticator.TokenEngine[model.AccessToken]
}

func NewAuthVerifier(
	accessTokenEngine authenticator.TokenEngine[model.AccessToken],
) *AuthVerifier {
	return &AuthVerifier{accessTokenEngine: accessTokenEngine}
}

// Middleware resolves the access token from the Authorization header or the
// token cookie and binds the wallet address to the request context. Requests
// without a valid token are rejected.
func (v *AuthVerifier) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := getAccessToken(ctx)
		if token == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		info, err := v.accessTokenEngine.Verify(token)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithRequestUserID(ctx, info.Address), nil
	}
}

func getAccessToken(ctx context.Context) string {
	req := xcontext.HTTPRequest(ctx)
	authorization := req.Header.Get("Authorization")
	auth, token, found := strings.Cut(authorization, " ")
	if found {
		if auth == "Bearer" {
			return token
		}

		return ""
	}

	cookie, err := req.Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name)
	if err != nil {
		return ""
	}

	return cookie.Value
}
