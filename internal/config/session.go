package config

import "time"

// hoursPerYear - количество часов в году для расчета времени жизни cookie.
const hoursPerYear = 24 * 365

// SessionConfig содержит настройки сессий и session cookie.
type SessionConfig struct {
	CookieName string `yaml:"cookie_name" env:"APP_SESSION_COOKIE_NAME" env-default:"qid"`
	// TTLYears - время жизни сессии в годах. Сессия живет долго и
	// завершается только явным logout.
	TTLYears     int  `yaml:"ttl_years" env:"APP_SESSION_TTL_YEARS" env-default:"10"`
	CookieSecure bool `yaml:"cookie_secure" env:"APP_SESSION_COOKIE_SECURE" env-default:"false"`
}

// GetTTL возвращает время жизни сессии в виде Duration.
func (c *SessionConfig) GetTTL() time.Duration {
	return time.Duration(c.TTLYears) * hoursPerYear * time.Hour
}
