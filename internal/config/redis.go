package config

import (
	"time"

	"gopostboard/pkg/db/redis"
)

// RedisConfig представляет конфигурацию для Redis.
type RedisConfig struct {
	Host     string        `yaml:"host" env:"APP_REDIS_HOST" env-default:"localhost"`
	Port     int           `yaml:"port" env:"APP_REDIS_PORT" env-default:"6379"`
	Password string        `yaml:"password" env:"APP_REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db" env:"APP_REDIS_DB" env-default:"0"`
	PoolSize int           `yaml:"pool_size" env:"APP_REDIS_POOL_SIZE" env-default:"10"`
	Timeout  time.Duration `yaml:"timeout" env:"APP_REDIS_TIMEOUT" env-default:"5s"`
}

// ToClientConfig преобразует настройки в конфигурацию клиента Redis.
func (c *RedisConfig) ToClientConfig() *redis.Config {
	return &redis.Config{
		Host:     c.Host,
		Port:     c.Port,
		Password: c.Password,
		DB:       c.DB,
		PoolSize: c.PoolSize,
		Timeout:  c.Timeout,
	}
}
