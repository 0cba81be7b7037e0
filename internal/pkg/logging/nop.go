package logging

// NopLogger игнорирует все сообщения.
type NopLogger struct{}

// NewNopLogger создаёт Logger, который ничего не пишет.
// Используется движком по умолчанию и в тестах.
func NewNopLogger() Logger {
	return &NopLogger{}
}

func (n *NopLogger) Debug(_ string, _ ...any) {}

func (n *NopLogger) Info(_ string, _ ...any) {}

func (n *NopLogger) Warn(_ string, _ ...any) {}

func (n *NopLogger) Error(_ string, _ ...any) {}

// With возвращает тот же NopLogger: атрибуты всё равно не пишутся.
func (n *NopLogger) With(_ ...any) Logger {
	return n
}
