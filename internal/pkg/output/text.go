package output

import (
	"encoding/json"
	"fmt"
	"io"
)

const summaryDivider = "══════════════════════════════════════════════════════"

// TextRenderer реализуется Data команд, у которых есть собственный
// человекочитаемый вид. Остальные Data выводятся как JSON.
type TextRenderer interface {
	WriteText(w io.Writer) error
}

// TextWriter форматирует Result в человекочитаемый текст.
type TextWriter struct{}

// NewTextWriter создаёт новый TextWriter.
func NewTextWriter() *TextWriter {
	return &TextWriter{}
}

// Write форматирует result. Сводка выводится только для успешных команд.
func (t *TextWriter) Write(w io.Writer, result *Result) error {
	if result == nil {
		return nil
	}

	if _, err := fmt.Fprintf(w, "%s: %s\n", result.Command, result.Status); err != nil {
		return err
	}

	if result.Error != nil {
		if _, err := fmt.Fprintf(w, "Error [%s]: %s\n", result.Error.Code, result.Error.Message); err != nil {
			return err
		}
	}

	if result.Data != nil {
		if err := writeData(w, result.Data); err != nil {
			return err
		}
	}

	if result.Status != StatusError {
		return t.writeSummary(w, result)
	}
	return nil
}

func writeData(w io.Writer, data any) error {
	if r, ok := data.(TextRenderer); ok {
		return r.WriteText(w)
	}
	dataJSON, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("не удалось сериализовать Data: %w", err)
	}
	_, err = fmt.Fprintf(w, "Data: %s\n", dataJSON)
	return err
}

func (t *TextWriter) writeSummary(w io.Writer, result *Result) error {
	lines := []string{"", summaryDivider, "📊 Сводка", summaryDivider}

	if result.Metadata != nil && result.Metadata.DurationMs > 0 {
		lines = append(lines, "⏱️  Время выполнения: "+formatDuration(result.Metadata.DurationMs))
	}

	if s := result.Summary; s != nil {
		for _, m := range s.KeyMetrics {
			line := "📈 " + m.Name + ": " + m.Value
			if m.Unit != "" {
				line += " " + m.Unit
			}
			lines = append(lines, line)
		}
		if s.WarningsCount > 0 {
			lines = append(lines, "", fmt.Sprintf("⚠️  Предупреждений: %d", s.WarningsCount))
			for _, warn := range s.Warnings {
				lines = append(lines, "   • "+warn)
			}
		}
	}
	lines = append(lines, summaryDivider)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// formatDuration: миллисекунды, секунды с десятыми, минуты с секундами.
func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dмс", ms)
	}
	sec := ms / 1000
	if sec < 60 {
		return fmt.Sprintf("%.1fс", float64(ms)/1000)
	}
	return fmt.Sprintf("%dм %dс", sec/60, sec%60)
}
