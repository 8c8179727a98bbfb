package validate

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// JSONLResult — статистика валидации потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
}

// ValidateJSONLStream — читает JSONL из reader’а, валидирует каждую строку как товар.
// Для каждой валидной записи пишет канонический JSON одной строкой и вызывает onValid (если задан).
// Пустые строки пропускаются.
func ValidateJSONLStream(ir io.Reader, ow io.Writer, onValid func(*domain.Product) error) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}

		product, err := ValidateProductFromJSON(lineBytes)
		if err != nil {
			res.InvalidLinesCount++
			// не возвращаем ошибку — просто пропускаем невалидную строку
			continue
		}

		if err := writeCanonical(ow, product); err != nil {
			return res, err
		}
		if onValid != nil {
			if err := onValid(product); err != nil {
				return res, err
			}
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

func writeCanonical(ow io.Writer, product *domain.Product) error {
	marshal, _ := json.Marshal(product) // компактный JSON
	if _, err := ow.Write(marshal); err != nil {
		return fmt.Errorf("write valid line: %w", err)
	}
	if _, err := ow.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}
