package output

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "обновить golden files")

func successResult() *Result {
	summary := NewSummaryInfo()
	summary.AddMetric("Размер", "5", "байт")
	return &Result{
		Status:  StatusSuccess,
		Command: "stat",
		Data:    map[string]any{"kind": "file", "size": 5},
		Metadata: &Metadata{
			DurationMs: 12,
			TraceID:    "4bf92f3577b34da6a3ce929d0e0e4736",
			APIVersion: "v1",
		},
		Summary: summary,
	}
}

func errorResult() *Result {
	return &Result{
		Status:  StatusError,
		Command: "delete-file",
		Error: &ErrorInfo{
			Code:    "FS.PRECONDITION_FAILED",
			Message: "путь не является файлом",
		},
		Metadata: &Metadata{DurationMs: 3, APIVersion: "v1"},
	}
}

func assertGolden(t *testing.T, name string, got []byte) {
	t.Helper()
	goldenPath := filepath.Join("testdata", "golden", name)
	if *update {
		require.NoError(t, os.WriteFile(goldenPath, got, 0600))
	}
	expected, err := os.ReadFile(goldenPath) //nolint:gosec // golden files в testdata
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(got))
}

func TestJSONWriter_ImplementsWriter(_ *testing.T) {
	var _ Writer = (*JSONWriter)(nil)
}

func TestJSONWriter_Golden(t *testing.T) {
	tests := []struct {
		golden string
		result *Result
	}{
		{"result_success.json", successResult()},
		{"result_error.json", errorResult()},
		{"result_minimal.json", &Result{Status: StatusSuccess, Command: "version"}},
	}
	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewJSONWriter().Write(&buf, tt.result))
			assertGolden(t, tt.golden, buf.Bytes())
		})
	}
}

func TestJSONWriter_DoesNotMutateResult(t *testing.T) {
	result := successResult()
	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter().Write(&buf, result))
	assert.Nil(t, result.Metadata.Summary)
}

func TestJSONWriter_SummaryWithoutMetadataDropped(t *testing.T) {
	result := successResult()
	result.Metadata = nil

	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter().Write(&buf, result))
	assert.NotContains(t, buf.String(), "summary")
}

func TestJSONWriter_Nil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter().Write(&buf, nil))
	assert.Equal(t, "null\n", buf.String())
}

func loadSchema(t *testing.T) *jsonschema.Schema {
	t.Helper()
	schema, err := jsonschema.NewCompiler().Compile(filepath.Join("testdata", "schema", "result.schema.json"))
	require.NoError(t, err)
	return schema
}

func TestJSONWriter_MatchesSchema(t *testing.T) {
	schema := loadSchema(t)

	for _, result := range []*Result{successResult(), errorResult(), {Status: StatusSuccess, Command: "version"}} {
		var buf bytes.Buffer
		require.NoError(t, NewJSONWriter().Write(&buf, result))

		var doc any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.NoError(t, schema.Validate(doc), result.Command)
	}
}

func TestSchema_RejectsErrorWithoutDetails(t *testing.T) {
	schema := loadSchema(t)
	var doc any
	require.NoError(t, json.Unmarshal([]byte(`{"status":"error","command":"move"}`), &doc))
	assert.Error(t, schema.Validate(doc))
}
