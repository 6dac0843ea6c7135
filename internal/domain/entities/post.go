package entities

import (
	"errors"
	"time"
)

// ErrPostNotFound возвращается при обращении к несуществующей записи.
var ErrPostNotFound = errors.New("post not found")

// Post представляет собой простую запись с заголовком.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
