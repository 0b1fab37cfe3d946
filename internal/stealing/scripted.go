package stealing

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/cory-johannsen/heroforge/internal/report"
	"github.com/cory-johannsen/heroforge/internal/scripting"
)

// Lua globals implementing each step.
const (
	hookPickTarget    = "pick_target"
	hookConfuseTarget = "confuse_target"
	hookStealTheItem  = "steal_the_item"
	hookGiveBack      = "give_back"
)

// ErrBadTarget is returned by ScriptedMethod.PickTarget when the script yields
// anything other than a non-empty string.
var ErrBadTarget = errors.New("stealing: pick_target must return a non-empty string")

// ScriptedMethod runs each step as a Lua function in a sandboxed state.
// Scripts may call report(line) to emit a line.
//
// A ScriptedMethod owns a single LState and must not be used from more than one
// goroutine. Call Close when done.
type ScriptedMethod struct {
	name      string
	state     *lua.LState
	instLimit int
}

// LoadScriptedMethod loads the Lua script at path.
//
// Precondition: instLimit >= 0; 0 uses scripting.DefaultInstructionLimit.
// Postcondition: Returns a ready ScriptedMethod named after the file, or a non-nil error.
func LoadScriptedMethod(path string, instLimit int, r report.Reporter) (*ScriptedMethod, error) {
	L, err := scripting.LoadFile(path, instLimit, r)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &ScriptedMethod{name: name, state: L, instLimit: instLimit}, nil
}

// NewScriptedMethod loads src as a Lua chunk.
func NewScriptedMethod(name, src string, instLimit int, r report.Reporter) (*ScriptedMethod, error) {
	L, err := scripting.LoadString(src, instLimit, r)
	if err != nil {
		return nil, err
	}
	return &ScriptedMethod{name: name, state: L, instLimit: instLimit}, nil
}

func (m *ScriptedMethod) Name() string { return "scripted:" + m.name }

func (m *ScriptedMethod) PickTarget() (string, error) {
	ret, err := scripting.Call(m.state, m.instLimit, hookPickTarget)
	if err != nil {
		return "", err
	}
	s, ok := ret.(lua.LString)
	if !ok || strings.TrimSpace(string(s)) == "" {
		return "", fmt.Errorf("%w, got %s", ErrBadTarget, ret.Type())
	}
	return string(s), nil
}

func (m *ScriptedMethod) ConfuseTarget(target string) error {
	return m.step(hookConfuseTarget, target)
}

func (m *ScriptedMethod) StealTheItem(target string) error {
	return m.step(hookStealTheItem, target)
}

func (m *ScriptedMethod) GiveBack(target string) error {
	return m.step(hookGiveBack, target)
}

func (m *ScriptedMethod) step(hook, target string) error {
	_, err := scripting.Call(m.state, m.instLimit, hook, lua.LString(target))
	return err
}

// Close releases the Lua state.
func (m *ScriptedMethod) Close() {
	m.state.Close()
}
