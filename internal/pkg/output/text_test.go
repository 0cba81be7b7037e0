package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type freeSpaceData struct {
	Path  string
	Bytes int64
}

func (d freeSpaceData) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s: %d\n", d.Path, d.Bytes)
	return err
}

func TestTextWriter_Success(t *testing.T) {
	result := successResult()
	result.Summary.AddWarning("пропущена ссылка /tmp/x")

	var buf bytes.Buffer
	require.NoError(t, NewTextWriter().Write(&buf, result))
	out := buf.String()

	assert.Contains(t, out, "stat: success\n")
	assert.Contains(t, out, `"kind": "file"`)
	assert.Contains(t, out, "📈 Размер: 5 байт")
	assert.Contains(t, out, "⏱️  Время выполнения: 12мс")
	assert.Contains(t, out, "⚠️  Предупреждений: 1")
	assert.Contains(t, out, "   • пропущена ссылка /tmp/x")
}

func TestTextWriter_Error(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextWriter().Write(&buf, errorResult()))
	out := buf.String()

	assert.Contains(t, out, "delete-file: error\n")
	assert.Contains(t, out, "Error [FS.PRECONDITION_FAILED]: путь не является файлом\n")
	assert.NotContains(t, out, "Сводка")
}

func TestTextWriter_TextRenderer(t *testing.T) {
	result := &Result{
		Status:  StatusSuccess,
		Command: "free-space",
		Data:    freeSpaceData{Path: "/tmp/", Bytes: 42},
	}
	var buf bytes.Buffer
	require.NoError(t, NewTextWriter().Write(&buf, result))
	assert.Contains(t, buf.String(), "/tmp/: 42\n")
	assert.NotContains(t, buf.String(), "Data:")
}

func TestTextWriter_Nil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextWriter().Write(&buf, nil))
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestTextWriter_PropagatesWriteError(t *testing.T) {
	assert.Error(t, NewTextWriter().Write(failingWriter{}, successResult()))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0мс"},
		{999, "999мс"},
		{1500, "1.5с"},
		{59999, "60.0с"},
		{61000, "1м 1с"},
		{3725000, "62м 5с"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.ms), tt.ms)
	}
}

func TestNewWriter(t *testing.T) {
	assert.IsType(t, &JSONWriter{}, NewWriter("json"))
	assert.IsType(t, &JSONWriter{}, NewWriter("JSON"))
	assert.IsType(t, &TextWriter{}, NewWriter("text"))
	assert.IsType(t, &TextWriter{}, NewWriter("yaml"))
	assert.IsType(t, &TextWriter{}, NewWriter(""))
}

func TestSummaryInfo(t *testing.T) {
	s := NewSummaryInfo()
	s.AddMetric("Скопировано", "10", "байт")
	s.AddWarning("a")
	s.AddWarning("b")
	assert.Len(t, s.KeyMetrics, 1)
	assert.Equal(t, 2, s.WarningsCount)
	assert.Equal(t, []string{"a", "b"}, s.Warnings)
}
