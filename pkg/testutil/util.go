package testutil

import (
	"context"
	"time"

	"github.com/fanpassport/backend/config"
	"github.com/fanpassport/backend/pkg/logger"
	"github.com/fanpassport/backend/pkg/xcontext"
)

func MockContext() context.Context {
	cfg := config.Configs{
		Env: "test",
		ApiServer: config.ServerConfigs{
			MaxLimit:     50,
			DefaultLimit: 10,
		},
		Auth: config.AuthConfigs{
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Secret:     "secret",
				Expiration: config.Duration(time.Minute),
			},
		},
		Progress: config.ProgressConfigs{
			StoreTimeout: config.Duration(time.Second),
		},
		File: config.FileConfigs{
			MaxSize:       2 * 1024 * 1024,
			MaxImageWidth: 512,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))

	return ctx
}

func MockContextWithUserAddress(userAddress string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userAddress)
}
