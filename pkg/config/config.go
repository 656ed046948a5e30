package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort      string
	Environment     string
	DatabaseDriver  string
	DatabasePath    string
	DatabaseURL     string
	FirebaseProject string
	CredentialsFile string
	RateLimitRPS    float64
	RateLimitBurst  int
}

func Load() (*Config, error) {
	// A missing .env file is fine; the process environment still applies.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	config := &Config{
		ServerPort:      v.GetString("SERVER_PORT"),
		Environment:     v.GetString("ENVIRONMENT"),
		DatabaseDriver:  strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabasePath:    v.GetString("DATABASE_PATH"),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		FirebaseProject: v.GetString("FIREBASE_PROJECT_ID"),
		CredentialsFile: v.GetString("FIREBASE_SERVICE_ACCOUNT_PATH"),
		RateLimitRPS:    v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:  v.GetInt("RATE_LIMIT_BURST"),
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "3000")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_PATH", "./database.sqlite")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("FIREBASE_PROJECT_ID", "")
	v.SetDefault("FIREBASE_SERVICE_ACCOUNT_PATH", "")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
