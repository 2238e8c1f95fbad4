// internal/config/config.go
package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type AppConfig struct {
	ReviewLimit int    `mapstructure:"review_limit"`
	Timezone    string `mapstructure:"timezone"` // 「今日」を判定するタイムゾーン
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// SessionConfig は練習セッションの設定
type SessionConfig struct {
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	ReapInterval   time.Duration `mapstructure:"reap_interval"`
	XPPerCorrect   int           `mapstructure:"xp_per_correct"`
	PerfectBonusXP int           `mapstructure:"perfect_bonus_xp"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	App      AppConfig      `mapstructure:"app"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Session  SessionConfig  `mapstructure:"session"`
}

var Cfg Config

// LoadConfig は .env → config.yaml → 環境変数 の順に設定を読み込み、Cfg に格納します
func LoadConfig(path string) error {
	cfg, err := Load(viper.New(), path)
	if err != nil {
		return err
	}
	Cfg = *cfg
	return nil
}

// Load は渡された viper インスタンスで設定を読み込みます (テストから直接使う)
func Load(v *viper.Viper, path string) (*Config, error) {
	// .env が無くても起動できるようにエラーは無視
	_ = godotenv.Load()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP") // 例: APP_APP_REVIEW_LIMIT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("database.url", "DATABASE_URL")
	v.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	v.BindEnv("log.level", "LOG_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return nil, err
	}

	// --- デフォルト値の設定 ---
	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.App.ReviewLimit <= 0 {
		log.Printf("App review limit not set or invalid, using default '%d'", DefaultAppReviewLimit)
		cfg.App.ReviewLimit = DefaultAppReviewLimit
	}
	if cfg.App.Timezone == "" {
		cfg.App.Timezone = DefaultTimezone
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if cfg.Session.IdleTimeout <= 0 {
		cfg.Session.IdleTimeout = DefaultSessionIdleTimeout
	}
	if cfg.Session.ReapInterval <= 0 {
		cfg.Session.ReapInterval = DefaultSessionReapInterval
	}
	if cfg.Session.XPPerCorrect < 0 {
		cfg.Session.XPPerCorrect = 0
	}
	if cfg.Session.PerfectBonusXP < 0 {
		cfg.Session.PerfectBonusXP = 0
	}

	// 未設定なら認証は有効
	if !v.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		cfg.Auth.Enabled = true
	}
	if !v.IsSet("session.xp_per_correct") {
		cfg.Session.XPPerCorrect = DefaultSessionXPPerCorrect
	}
	if !v.IsSet("session.perfect_bonus_xp") {
		cfg.Session.PerfectBonusXP = DefaultSessionPerfectBonusXP
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", cfg.Server.Port)
	log.Printf("Review Limit: %d", cfg.App.ReviewLimit)
	log.Printf("Auth Enabled: %t", cfg.Auth.Enabled)

	return &cfg, nil
}

// Location は設定されたタイムゾーンを返します。読み込めない場合はローカル時刻を使う
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		log.Printf("Invalid timezone %q, falling back to Local: %v", c.App.Timezone, err)
		return time.Local
	}
	return loc
}
