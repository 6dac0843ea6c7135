package dto

import "gopostboard/internal/domain/entities"

// CreatePostRequest представляет запрос на создание поста.
type CreatePostRequest struct {
	Title string `json:"title"`
}

// UpdatePostRequest представляет запрос на изменение заголовка поста.
type UpdatePostRequest struct {
	Title string `json:"title"`
}

// PostResponse содержит один пост.
type PostResponse struct {
	Post *entities.Post `json:"post"`
}

// PostListResponse содержит список постов.
type PostListResponse struct {
	Posts []*entities.Post `json:"posts"`
}

// DeletePostResponse сообщает результат удаления поста.
type DeletePostResponse struct {
	Success bool `json:"success"`
}
