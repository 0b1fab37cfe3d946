package scripting_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"

	"github.com/cory-johannsen/heroforge/internal/report"
	"github.com/cory-johannsen/heroforge/internal/scripting"
)

func TestCall_ReturnsFirstResult(t *testing.T) {
	L, err := scripting.LoadString(`function add(a, b) return a + b end`, 0, nil)
	require.NoError(t, err)
	defer L.Close()

	ret, err := scripting.Call(L, 0, "add", lua.LNumber(3), lua.LNumber(4))
	require.NoError(t, err)
	assert.Equal(t, lua.LNumber(7), ret)
}

func TestCall_NoReturnIsNil(t *testing.T) {
	L, err := scripting.LoadString(`function noop() end`, 0, nil)
	require.NoError(t, err)
	defer L.Close()

	ret, err := scripting.Call(L, 0, "noop")
	require.NoError(t, err)
	assert.Equal(t, lua.LNil, ret)
}

func TestCall_UndefinedFunction(t *testing.T) {
	L, err := scripting.LoadString(`not_a_function = 5`, 0, nil)
	require.NoError(t, err)
	defer L.Close()

	_, err = scripting.Call(L, 0, "missing")
	assert.ErrorIs(t, err, scripting.ErrUndefinedFunction)
	_, err = scripting.Call(L, 0, "not_a_function")
	assert.ErrorIs(t, err, scripting.ErrUndefinedFunction)
}

func TestCall_RuntimeErrorPropagates(t *testing.T) {
	L, err := scripting.LoadString(`function boom() error("intentional error") end`, 0, nil)
	require.NoError(t, err)
	defer L.Close()

	_, err = scripting.Call(L, 0, "boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "intentional error")
}

func TestCall_EachCallGetsFreshBudget(t *testing.T) {
	L, err := scripting.LoadString(`
		function work()
			local n = 0
			for i = 1, 50 do n = n + i end
			return n
		end
	`, 0, nil)
	require.NoError(t, err)
	defer L.Close()

	for i := 0; i < 20; i++ {
		ret, err := scripting.Call(L, 1000, "work")
		require.NoError(t, err)
		assert.Equal(t, lua.LNumber(1275), ret)
	}
}

func TestCall_InstructionLimit(t *testing.T) {
	L, err := scripting.LoadString(`function spin() while true do end end`, 0, nil)
	require.NoError(t, err)
	defer L.Close()

	_, err = scripting.Call(L, 100, "spin")
	assert.Error(t, err)
}

func TestRegisterReporter(t *testing.T) {
	var rec report.Recorder
	L, err := scripting.LoadString(`
		report("loaded")
		function speak(x) report("target: " .. x) report(42) end
	`, 0, &rec)
	require.NoError(t, err)
	defer L.Close()

	_, err = scripting.Call(L, 0, "speak", lua.LString("shop keeper"))
	require.NoError(t, err)
	assert.Equal(t, []string{"loaded", "target: shop keeper", "42"}, rec.Lines())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "steps.lua")
	require.NoError(t, os.WriteFile(path, []byte(`function pick_target() return "merchant" end`), 0644))

	L, err := scripting.LoadFile(path, 0, nil)
	require.NoError(t, err)
	defer L.Close()
	ret, err := scripting.Call(L, 0, "pick_target")
	require.NoError(t, err)
	assert.Equal(t, lua.LString("merchant"), ret)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := scripting.LoadFile("/nonexistent/steps.lua", 0, nil)
	assert.Error(t, err)
}

func TestLoadString_SyntaxError(t *testing.T) {
	_, err := scripting.LoadString(`function (`, 0, nil)
	assert.Error(t, err)
}

func TestRegisterReporter_NilDiscards(t *testing.T) {
	L, err := scripting.LoadString(`report("nobody hears this")`, 0, nil)
	require.NoError(t, err)
	L.Close()
}
