package version

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/xplatfs/internal/command"
	"github.com/Kargones/xplatfs/internal/command/handlers/shared/sharedtest"
	"github.com/Kargones/xplatfs/internal/constants"
	"github.com/Kargones/xplatfs/internal/pkg/output"
)

func TestVersionHandler_Name(t *testing.T) {
	h := &VersionHandler{}
	assert.Equal(t, "version", h.Name())
	assert.Equal(t, "Вывод информации о версии приложения", h.Description())
}

func TestRegisterCmd(t *testing.T) {
	command.Reset()
	t.Cleanup(command.Reset)

	require.NoError(t, RegisterCmd(sharedtest.New(t).RT))
	h, ok := command.Get(constants.ActVersion)
	require.True(t, ok)
	assert.Equal(t, constants.ActVersion, h.Name())
	assert.Error(t, RegisterCmd(nil), "повторная регистрация")
}

func TestBuildVersionData(t *testing.T) {
	d := buildVersionData("", "", "DiskFS")
	assert.Equal(t, "dev", d.Version)
	assert.Equal(t, "unknown", d.Commit)
	assert.Equal(t, runtime.Version(), d.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, d.Platform)

	d = buildVersionData("1.2.0", "abc123", "DiskFS")
	assert.Equal(t, "1.2.0", d.Version)
	assert.Equal(t, "abc123", d.Commit)
}

func TestVersionData_WriteText(t *testing.T) {
	var buf bytes.Buffer
	d := &VersionData{Version: "1.2.0", GoVersion: "go1.24.0", Commit: "abc", Platform: "linux/amd64", Backend: "DiskFS"}
	require.NoError(t, d.WriteText(&buf))
	assert.Equal(t, "xplatfs version 1.2.0\n  Go:       go1.24.0\n  Commit:   abc\n  Platform: linux/amd64\n  Backend:  DiskFS\n", buf.String())
}

func TestVersionHandler_TextOutput(t *testing.T) {
	hs := sharedtest.New(t)
	hs.RT.Writer = output.NewTextWriter()
	h := &VersionHandler{rt: hs.RT}

	require.NoError(t, h.Execute(context.Background(), sharedtest.Config()))
	out := hs.Out.String()
	assert.Contains(t, out, "version: success")
	assert.Contains(t, out, "xplatfs version")
	assert.Contains(t, out, "Backend:  MemoryFS")
}

// TestVersionHandler_GoldenJSON проверяет что JSON вывод соответствует структуре golden file.
// Сравниваются поля, а не значения: версия, trace_id и длительность динамические.
func TestVersionHandler_GoldenJSON(t *testing.T) {
	hs := sharedtest.New(t)
	h := &VersionHandler{rt: hs.RT}
	require.NoError(t, h.Execute(context.Background(), sharedtest.Config()))

	var actual map[string]any
	require.NoError(t, json.Unmarshal(hs.Out.Bytes(), &actual), "вывод должен быть валидным JSON")

	goldenData, err := os.ReadFile("testdata/version_json_output.golden")
	require.NoError(t, err, "golden file должен существовать")
	var golden map[string]any
	require.NoError(t, json.Unmarshal(goldenData, &golden))

	sameKeys(t, golden, actual, "")
	sameKeys(t, golden["data"].(map[string]any), actual["data"].(map[string]any), "data.")
	sameKeys(t, golden["metadata"].(map[string]any), actual["metadata"].(map[string]any), "metadata.")

	data := actual["data"].(map[string]any)
	for key, val := range data {
		_, isString := val.(string)
		assert.True(t, isString, "data.%s должен быть строкой, получен %T", key, val)
	}
	assert.Equal(t, "MemoryFS", data["backend"])
}

func TestVersionHandler_RejectsArgs(t *testing.T) {
	hs := sharedtest.New(t)
	h := &VersionHandler{rt: hs.RT}
	require.Error(t, h.Execute(context.Background(), sharedtest.Config("extra")))
	assert.Equal(t, output.StatusError, hs.Result(t).Status)
}

func sameKeys(t *testing.T, golden, actual map[string]any, prefix string) {
	t.Helper()
	for key := range golden {
		assert.Contains(t, actual, key, "JSON должен содержать поле '%s%s'", prefix, key)
	}
	for key := range actual {
		assert.Contains(t, golden, key, "JSON содержит неожиданное поле '%s%s'", prefix, key)
	}
}
