package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Load reads the configurations from a toml file. Secrets can be overridden
// with environment variables so they never need to be committed with the file.
func Load(path string) (Configs, error) {
	cfg := defaultConfigs()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}

	if v := os.Getenv("TOKEN_SECRET"); v != "" {
		cfg.Auth.AccessToken.Secret = v
	}

	if v := os.Getenv("STORAGE_SECRET_KEY"); v != "" {
		cfg.Storage.SecretKey = v
	}

	return cfg, nil
}

func defaultConfigs() Configs {
	return Configs{
		Env: "local",
		ApiServer: ServerConfigs{
			Host:         "0.0.0.0",
			Port:         "8080",
			MaxLimit:     50,
			DefaultLimit: 10,
		},
		LocalCache: LocalCacheConfigs{
			Path: "fanpassport-cache.db",
		},
		Auth: AuthConfigs{
			AccessToken: TokenConfigs{
				Name:       "access_token",
				Secret:     "secret",
				Expiration: Duration(24 * time.Hour),
			},
		},
		Progress: ProgressConfigs{
			StoreTimeout: Duration(5 * time.Second),
		},
		File: FileConfigs{
			MaxSize:       2 * 1024 * 1024,
			MaxImageWidth: 512,
		},
	}
}
