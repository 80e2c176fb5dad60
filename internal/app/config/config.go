package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"marketplace/internal/app/dsn"
	"marketplace/internal/app/logging"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	Log         logging.Config
	Minio       MinioConfig
	CORS        CORSConfig
	DSN         string      `mapstructure:"-"`
	JWT         JWTConfig   `mapstructure:"-"`
	Redis       RedisConfig `mapstructure:"-"`
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type CORSConfig struct {
	AllowOrigins []string
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

const (
	envConfigName = "CONFIG_NAME"
	envJWTSecret  = "JWT_SECRET"
	envJWTTTL     = "JWT_TTL"
	envRedisHost  = "REDIS_HOST"
	envRedisPort  = "REDIS_PORT"
	envRedisUser  = "REDIS_USER"
	envRedisPass  = "REDIS_PASSWORD"
	envMinioKey   = "MINIO_ACCESS_KEY"
	envMinioSec   = "MINIO_SECRET_KEY"
)

var errNoJWTSecret = errors.New("JWT_SECRET must be set")

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv(envConfigName) != "" {
		configName = os.Getenv(envConfigName)
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	err = v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	cfg.DSN = dsn.FromEnv()

	// секреты MinIO из env перекрывают файл
	if key := os.Getenv(envMinioKey); key != "" {
		cfg.Minio.AccessKey = key
	}
	if secret := os.Getenv(envMinioSec); secret != "" {
		cfg.Minio.SecretKey = secret
	}

	// инициализация JWT конфигурации из env
	cfg.JWT = JWTConfig{
		Token:         os.Getenv(envJWTSecret),
		ExpiresIn:     time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}
	if cfg.JWT.Token == "" {
		return nil, errNoJWTSecret
	}
	if ttl := os.Getenv(envJWTTTL); ttl != "" {
		cfg.JWT.ExpiresIn, err = time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("jwt ttl must be a duration: %w", err)
		}
	}

	// инициализация Redis конфигурации из env
	cfg.Redis.Host = os.Getenv(envRedisHost)
	cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
	if err != nil {
		return nil, fmt.Errorf("redis port must be int value: %w", err)
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	log.Info("config parsed")

	return cfg, nil
}
