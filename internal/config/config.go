package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DB        DBConfig
	Server    ServerConfig
	Redis     RedisConfig
	CacheTTLs CacheTTLConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	CORS      CORSConfig
	LLM       LLMConfig
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DBConfig struct {
	Driver       string
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	MaxOpenConns int
	MaxIdleConns int
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
}

// CacheTTLConfig holds raw TTL strings ("5m", "1h"); parse them with ParseTTLStringOrDefault.
type CacheTTLConfig struct {
	CategoryList string `yaml:"category_list"`
}

type LoggerConfig struct {
	Env   string `yaml:"env"`
	Level string `yaml:"level"`
}

type AuthConfig struct {
	Enabled        bool
	JWTSecret      string
	Issuer         string
	AccessTokenTTL time.Duration
}

type CORSConfig struct {
	AllowOrigins string
}

// LLMConfig configures the Ollama model used by the question generation batch.
type LLMConfig struct {
	ServerURL            string
	Model                string
	Timeout              time.Duration
	QuestionsPerCategory int
	Concurrency          int
}

const (
	DriverGoOra  = "oracle"
	DriverGodror = "godror"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("server.idle_timeout", 20)
	v.SetDefault("server.body_limit_mb", 1)

	v.SetDefault("db.driver", DriverGoOra)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 1521)
	v.SetDefault("db.user", "trivia")
	v.SetDefault("db.name", "TRIVIA")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)

	v.SetDefault("cache_ttls.category_list", "5m")

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.issuer", "trivia-api")
	v.SetDefault("auth.access_token_ttl", "24h")

	v.SetDefault("cors.allow_origins", "*")

	v.SetDefault("llm.server_url", "http://localhost:11434")
	v.SetDefault("llm.model", "qwen3:0.6b")
	v.SetDefault("llm.timeout", "60s")
	v.SetDefault("llm.questions_per_category", 5)
	v.SetDefault("llm.concurrency", 2)
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		DB: DBConfig{
			Driver:       v.GetString("db.driver"),
			Host:         v.GetString("db.host"),
			Port:         v.GetInt("db.port"),
			User:         v.GetString("db.user"),
			Password:     v.GetString("db.password"),
			DBName:       v.GetString("db.name"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
			MaxIdleConns: v.GetInt("db.max_idle_conns"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			IdleTimeout:  time.Duration(v.GetInt("server.idle_timeout")) * time.Second,
			BodyLimit:    v.GetInt("server.body_limit_mb") * 1024 * 1024,
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		CacheTTLs: CacheTTLConfig{
			CategoryList: v.GetString("cache_ttls.category_list"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Auth: AuthConfig{
			Enabled:        v.GetBool("auth.enabled"),
			JWTSecret:      v.GetString("auth.jwt_secret"),
			Issuer:         v.GetString("auth.issuer"),
			AccessTokenTTL: v.GetDuration("auth.access_token_ttl"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("cors.allow_origins"),
		},
		LLM: LLMConfig{
			ServerURL:            v.GetString("llm.server_url"),
			Model:                v.GetString("llm.model"),
			Timeout:              v.GetDuration("llm.timeout"),
			QuestionsPerCategory: v.GetInt("llm.questions_per_category"),
			Concurrency:          v.GetInt("llm.concurrency"),
		},
	}

	// Override with environment variables if set
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if llmServer := os.Getenv("LLM_SERVER"); llmServer != "" {
		config.LLM.ServerURL = llmServer
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.Auth.JWTSecret = secret
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate reports configuration combinations the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	switch c.DB.Driver {
	case DriverGoOra, DriverGodror:
	default:
		return fmt.Errorf("unsupported db driver %q (want %q or %q)", c.DB.Driver, DriverGoOra, DriverGodror)
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		return errors.New("auth is enabled but auth.jwt_secret is empty")
	}
	return nil
}

// ParseTTLStringOrDefault parses a duration string, falling back to def when it is empty or invalid.
func (c *Config) ParseTTLStringOrDefault(ttl string, def time.Duration) time.Duration {
	if ttl == "" {
		return def
	}
	d, err := time.ParseDuration(ttl)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
