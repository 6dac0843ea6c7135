package entities

// Session представляет серверное состояние клиента, адресуемое через cookie.
// UserID равный нулю означает анонимную сессию.
type Session struct {
	ID        string
	UserID    int64
	Destroyed bool
}

// Authenticated сообщает, привязан ли к сессии аутентифицированный пользователь.
func (s *Session) Authenticated() bool {
	return s.UserID != 0
}
