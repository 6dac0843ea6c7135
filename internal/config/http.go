package config

import (
	"fmt"
	"time"
)

// HTTPConfig представляет конфигурацию HTTP сервера.
type HTTPConfig struct {
	Host           string        `yaml:"host" env:"APP_HTTP_HOST" env-default:"0.0.0.0"`
	Port           int           `yaml:"port" env:"APP_HTTP_PORT" env-default:"4000"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"APP_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"APP_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	FrontendOrigin string        `yaml:"frontend_origin" env:"APP_FRONTEND_ORIGIN" env-default:"http://localhost:3000"`
}

// GetAddress возвращает адрес HTTP сервера.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
