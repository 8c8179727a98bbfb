package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// поля, допустимые в JSON товара (посевные файлы каталога)
var knownProductFields = map[string]struct{}{
	"id": {}, "name": {}, "description": {}, "rating": {}, "price": {}, "discount": {},
	"brand": {}, "imageUrl": {}, "category": {}, "size": {}, "sizes": {}, "colors": {},
	"stock": {}, "gender": {},
}

// ValidateProductFromJSON — валидация товара из JSON-объекта.
// Id берётся из поля "id"; неизвестные поля и хвостовые данные — ошибка.
func ValidateProductFromJSON(raw []byte) (*domain.Product, error) {
	var fields map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if unknown := unknownKeys(fields, knownProductFields); len(unknown) > 0 {
		return nil, fmt.Errorf("invalid json: unknown fields %v", unknown)
	}

	id, _ := fields["id"].(string)
	product, err := DecodeProduct(domain.Document{ID: id, Data: fields})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func unknownKeys(fields map[string]any, known map[string]struct{}) []string {
	var out []string
	for k := range fields {
		if _, ok := known[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
