package help

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/xplatfs/internal/command"
	"github.com/Kargones/xplatfs/internal/command/handlers/shared/sharedtest"
	"github.com/Kargones/xplatfs/internal/config"
	"github.com/Kargones/xplatfs/internal/constants"
)

type fakeHandler struct{ name, usage string }

func (h *fakeHandler) Name() string                                      { return h.name }
func (h *fakeHandler) Description() string                               { return "fake " + h.name }
func (h *fakeHandler) Execute(_ context.Context, _ *config.Config) error { return nil }

type fakeUsageHandler struct{ fakeHandler }

func (h *fakeUsageHandler) Usage() string { return h.usage }

func registerFakes(t *testing.T) *sharedtest.Harness {
	t.Helper()
	command.Reset()
	t.Cleanup(command.Reset)

	hs := sharedtest.New(t)
	require.NoError(t, RegisterCmd(hs.RT))
	require.NoError(t, command.Register(&fakeHandler{name: "where"}))
	require.NoError(t, command.Register(&fakeUsageHandler{fakeHandler{name: "copy", usage: "<источник> <назначение>"}}))
	return hs
}

func TestHandler_Name(t *testing.T) {
	h := &Handler{}
	assert.Equal(t, constants.ActHelp, h.Name())
	assert.NotEmpty(t, h.Description())
}

func TestBuildData(t *testing.T) {
	registerFakes(t)

	data := buildData()
	require.Len(t, data.Commands, 3)
	assert.Equal(t, "copy", data.Commands[0].Name)
	assert.Equal(t, "<источник> <назначение>", data.Commands[0].Usage)
	assert.Equal(t, "help", data.Commands[1].Name)
	assert.Equal(t, "where", data.Commands[2].Name)
	assert.Empty(t, data.Commands[2].Usage)
}

func TestHandler_ExecuteJSON(t *testing.T) {
	hs := registerFakes(t)
	h, ok := command.Get(constants.ActHelp)
	require.True(t, ok)

	require.NoError(t, h.Execute(context.Background(), nil))
	res := hs.Result(t)
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, "help", res.Command)
	cmds, ok := res.Data["commands"].([]any)
	require.True(t, ok, "commands должен быть массивом")
	assert.Len(t, cmds, 3)
	for _, c := range cmds {
		cmd, ok := c.(map[string]any)
		require.True(t, ok)
		assert.Contains(t, cmd, "name")
		assert.Contains(t, cmd, "description")
	}
}

func TestData_WriteText(t *testing.T) {
	registerFakes(t)

	var buf bytes.Buffer
	require.NoError(t, buildData().WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "xplatfs - кроссплатформенные операции с файловой системой")
	assert.Contains(t, out, "  copy   fake copy\n")
	assert.Contains(t, out, "copy <источник> <назначение>\n")
	assert.Contains(t, out, "  where  fake where\n")
	assert.Contains(t, out, "XPLATFS_OUTPUT_FORMAT=json")
}
