package entities

import "errors"

// ErrResetTokenNotFound возвращается, когда токен сброса пароля отсутствует
// в хранилище: либо он никогда не выдавался, либо истек, либо уже использован.
var ErrResetTokenNotFound = errors.New("reset token not found")
