package config

import "fmt"

// SMTPConfig содержит настройки исходящей почты.
type SMTPConfig struct {
	Host     string `yaml:"host" env:"APP_SMTP_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"APP_SMTP_PORT" env-default:"25"`
	Username string `yaml:"username" env:"APP_SMTP_USERNAME" env-default:""`
	Password string `yaml:"password" env:"APP_SMTP_PASSWORD" env-default:""`
	From     string `yaml:"from" env:"APP_SMTP_FROM" env-default:"noreply@gopostboard.local"`
}

// GetAddress возвращает адрес SMTP сервера.
func (c *SMTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
