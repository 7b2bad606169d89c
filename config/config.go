package config

import (
	"fmt"
	"time"
)

// Duration wraps time.Duration so it can be written as "24h" in toml files.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	*d = Duration(parsed)
	return nil
}

type Configs struct {
	Env string `toml:"env"`

	ApiServer  ServerConfigs     `toml:"api_server"`
	Database   DatabaseConfigs   `toml:"database"`
	LocalCache LocalCacheConfigs `toml:"local_cache"`
	Redis      RedisConfigs      `toml:"redis"`
	Storage    S3Configs         `toml:"storage"`
	Auth       AuthConfigs       `toml:"auth"`
	Progress   ProgressConfigs   `toml:"progress"`
	File       FileConfigs       `toml:"file"`
}

type ServerConfigs struct {
	Host         string   `toml:"host"`
	Port         string   `toml:"port"`
	AllowCORS    []string `toml:"allow_cors"`
	MaxLimit     int      `toml:"max_limit"`
	DefaultLimit int      `toml:"default_limit"`
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

// LocalCacheConfigs describes the per-device sqlite file used when the shared
// database is not reachable from the running context.
type LocalCacheConfigs struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

type S3Configs struct {
	Region         string `toml:"region"`
	Endpoint       string `toml:"endpoint"`
	PublicEndpoint string `toml:"public_endpoint"`
	AccessKey      string `toml:"access_key"`
	SecretKey      string `toml:"secret_key"`
	Bucket         string `toml:"bucket"`
	SSLDisabled    bool   `toml:"ssl_disabled"`
}

type AuthConfigs struct {
	AccessToken TokenConfigs `toml:"access_token"`
}

type TokenConfigs struct {
	Name       string   `toml:"name"`
	Secret     string   `toml:"secret"`
	Expiration Duration `toml:"expiration"`
}

type ProgressConfigs struct {
	// StoreTimeout bounds every progress store call. A timed out call is
	// treated as a store-unavailable condition, not a fatal error.
	StoreTimeout Duration `toml:"store_timeout"`
}

type FileConfigs struct {
	MaxSize       int64 `toml:"max_size"`
	MaxImageWidth uint  `toml:"max_image_width"`
}
