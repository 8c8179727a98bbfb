package domain

// Document — единица обмена с удалённым хранилищем: id документа и поля.
// Id документа авторитетен: поле "id" внутри Data (если есть) игнорируется.
type Document struct {
	ID   string
	Data map[string]any
}
