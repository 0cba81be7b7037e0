// Package output форматирует результаты команд в JSON или текст.
// Результат пишется в stdout, логи идут отдельно в stderr.
package output

// Значения поля Status.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result - структурированный результат команды
// (XPLATFS_OUTPUT_FORMAT=json или text).
type Result struct {
	Status  string `json:"status"`
	Command string `json:"command"`

	// Data - payload конкретной команды (типизированная структура).
	Data any `json:"data,omitempty"`

	// Error заполняется только при Status == "error".
	Error *ErrorInfo `json:"error,omitempty"`

	Metadata *Metadata `json:"metadata,omitempty"`

	// Summary выводится блоком сводки в тексте и как metadata.summary в JSON.
	Summary *SummaryInfo `json:"-"`
}

// ErrorInfo - код (CATEGORY.SPECIFIC) и описание ошибки.
// Message не должен содержать секретов.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Metadata содержит метаданные выполнения команды.
type Metadata struct {
	DurationMs int64  `json:"duration_ms"`
	TraceID    string `json:"trace_id,omitempty"`

	// APIVersion - версия формата вывода, сейчас "v1".
	APIVersion string `json:"api_version"`

	Summary *SummaryInfo `json:"summary,omitempty"`
}
