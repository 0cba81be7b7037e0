package output

import "strings"

// Поддерживаемые форматы вывода.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// NewWriter создаёт Writer по имени формата (без учёта регистра).
// Неизвестный формат - текст.
func NewWriter(format string) Writer {
	if strings.EqualFold(format, FormatJSON) {
		return NewJSONWriter()
	}
	return NewTextWriter()
}
