package config

import "time"

// hoursPerDay - количество часов в сутках для расчета TTL токена.
const hoursPerDay = 24

// AuthConfig содержит настройки восстановления пароля.
type AuthConfig struct {
	// ResetTokenTTLDays - время жизни токена сброса пароля в днях.
	ResetTokenTTLDays int `yaml:"reset_token_ttl_days" env:"APP_RESET_TOKEN_TTL_DAYS" env-default:"3"`
}

// GetResetTokenTTL возвращает время жизни токена сброса пароля в виде Duration.
func (c *AuthConfig) GetResetTokenTTL() time.Duration {
	return time.Duration(c.ResetTokenTTLDays) * hoursPerDay * time.Hour
}
