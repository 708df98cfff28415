package env

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name string `mapstructure:"name"`
	} `mapstructure:"app"`
	Web struct {
		Port    int  `mapstructure:"port"`
		Prefork bool `mapstructure:"prefork"`
		Cors    struct {
			AllowOrigins string `mapstructure:"allow_origins"`
		} `mapstructure:"cors"`
	} `mapstructure:"web"`
	JWT struct {
		Secret                string        `mapstructure:"secret"`
		AccessTokenExpiration time.Duration `mapstructure:"access_token_expiration"`
		AccessCookieName      string        `mapstructure:"access_cookie_name"`
		CsrfCookieName        string        `mapstructure:"csrf_cookie_name"`
		CookieSecure          bool          `mapstructure:"cookie_secure"`
		CookieSameSite        string        `mapstructure:"cookie_samesite"`
		CookieDomain          string        `mapstructure:"cookie_domain"`
		CsrfProtect           bool          `mapstructure:"csrf_protect"`
	} `mapstructure:"jwt"`
	Log struct {
		Level  int    `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	Database struct {
		DSN  string `mapstructure:"dsn"`
		Pool struct {
			Idle     int `mapstructure:"idle"`
			Max      int `mapstructure:"max"`
			Lifetime int `mapstructure:"lifetime"`
		} `mapstructure:"pool"`
		Log struct {
			Level int `mapstructure:"level"`
		} `mapstructure:"log"`
	} `mapstructure:"database"`
	Redis struct {
		Enabled    bool   `mapstructure:"enabled"`
		Address    string `mapstructure:"address"`
		Password   string `mapstructure:"password"`
		DB         int    `mapstructure:"db"`
		ProfileTTL int    `mapstructure:"profile_ttl"`
		Pool       struct {
			Size        int `mapstructure:"size"`
			MinIdle     int `mapstructure:"min_idle"`
			MaxIdle     int `mapstructure:"max_idle"`
			Lifetime    int `mapstructure:"lifetime"`
			IdleTimeout int `mapstructure:"idle_timeout"`
		} `mapstructure:"pool"`
	} `mapstructure:"redis"`
	Monitoring struct {
		Otel struct {
			Enabled bool   `mapstructure:"enabled"`
			Host    string `mapstructure:"host"`
		} `mapstructure:"otel"`
	} `mapstructure:"monitoring"`
	Sentry struct {
		DSN         string `mapstructure:"dsn"`
		Environment string `mapstructure:"environment"`
	} `mapstructure:"sentry"`
	Media struct {
		Root string `mapstructure:"root"`
	} `mapstructure:"media"`
	Seed struct {
		AdminEmail    string `mapstructure:"admin_email"`
		AdminPassword string `mapstructure:"admin_password"`
	} `mapstructure:"seed"`
}

func NewConfig() *Config {
	config := viper.New()

	// Set configuration file details
	config.SetConfigName("config")
	config.SetConfigType("yml")
	config.AddConfigPath("./../")
	config.AddConfigPath("./")

	// DATABASE_DSN overrides database.dsn and so on
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	setDefaults(config)

	// Read the configuration file
	if err := config.ReadInConfig(); err != nil {
		panic(fmt.Errorf("fatal error reading config file: %w", err))
	}

	// Unmarshal into the Config struct
	cfg := new(Config)
	if err := config.Unmarshal(cfg); err != nil {
		panic(fmt.Errorf("fatal error unmarshaling config: %w", err))
	}

	return cfg
}

func setDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "auth-service")
	config.SetDefault("web.port", 8080)
	config.SetDefault("jwt.access_token_expiration", 900)
	config.SetDefault("jwt.access_cookie_name", "access_token_cookie")
	config.SetDefault("jwt.csrf_cookie_name", "csrf_access_token")
	config.SetDefault("jwt.cookie_samesite", "Lax")
	config.SetDefault("jwt.csrf_protect", true)
	config.SetDefault("log.level", 4)
	config.SetDefault("log.format", "text")
	config.SetDefault("redis.profile_ttl", 300)
	config.SetDefault("media.root", "./media")
}

// GetAccessSecret returns the HMAC key used to sign identity tokens.
func (c *Config) GetAccessSecret() string {
	return c.JWT.Secret
}

// GetAccessTokenExpiration returns the identity token lifetime.
// The configured value is expressed in seconds.
func (c *Config) GetAccessTokenExpiration() time.Duration {
	return c.JWT.AccessTokenExpiration * time.Second
}

func (c *Config) GetProfileCacheTTL() time.Duration {
	return time.Duration(c.Redis.ProfileTTL) * time.Second
}
