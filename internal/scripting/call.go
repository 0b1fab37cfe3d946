package scripting

import (
	"errors"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/cory-johannsen/heroforge/internal/report"
)

// ErrUndefinedFunction is returned by Call when the named global is not a function.
var ErrUndefinedFunction = errors.New("scripting: undefined function")

// LoadFile creates a sandboxed state, registers r as report(line), and executes
// the script at path in it. A nil r discards reported lines.
//
// Precondition: path must name a readable Lua file.
// Postcondition: Returns a loaded LState owned by the caller, or a non-nil error.
func LoadFile(path string, instLimit int, r report.Reporter) (*lua.LState, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("scripting: reading %q: %w", path, err)
	}
	L := NewSandboxedState(instLimit)
	RegisterReporter(L, r)
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("scripting: loading %q: %w", path, err)
	}
	return L, nil
}

// LoadString is LoadFile for an in-memory chunk.
func LoadString(src string, instLimit int, r report.Reporter) (*lua.LState, error) {
	L := NewSandboxedState(instLimit)
	RegisterReporter(L, r)
	if err := L.DoString(src); err != nil {
		L.Close()
		return nil, fmt.Errorf("scripting: loading chunk: %w", err)
	}
	return L, nil
}

// RegisterReporter exposes r to scripts as the global function report(line).
// Non-string arguments are converted with Lua's tostring rules.
func RegisterReporter(L *lua.LState, r report.Reporter) {
	r = report.OrDiscard(r)
	L.SetGlobal("report", L.NewFunction(func(L *lua.LState) int {
		r.Report(L.ToStringMeta(L.Get(1)).String())
		return 0
	}))
}

// Call invokes the Lua global function name with args under a fresh budget of
// instLimit opcodes.
//
// Postcondition: Returns the function's first result (LNil when it returns nothing),
// ErrUndefinedFunction when name is not a function, or the Lua runtime error.
func Call(L *lua.LState, instLimit int, name string, args ...lua.LValue) (lua.LValue, error) {
	fn, ok := L.GetGlobal(name).(*lua.LFunction)
	if !ok {
		return lua.LNil, fmt.Errorf("%w: %s", ErrUndefinedFunction, name)
	}
	Rearm(L, instLimit)
	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args...); err != nil {
		return lua.LNil, fmt.Errorf("scripting: calling %s: %w", name, err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	return ret, nil
}
