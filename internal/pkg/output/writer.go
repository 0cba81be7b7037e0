package output

import "io"

// Writer форматирует результат команды. Реализации: JSONWriter, TextWriter.
type Writer interface {
	Write(w io.Writer, result *Result) error
}
