package entities

// FieldError описывает ошибку валидации или бизнес-правила для конкретного
// поля ввода. Возвращается клиенту как данные, а не как системная ошибка.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewFieldError создает список из одной ошибки поля.
// Операции аутентификации возвращают не более одной ошибки за раз.
func NewFieldError(field, message string) []FieldError {
	return []FieldError{{Field: field, Message: message}}
}
