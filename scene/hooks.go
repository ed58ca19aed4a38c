package scene

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// hookRuntime runs a scene's onEnter/onExit lifecycle script. Scripts define
// `onEnter(scene, state)` and `onExit(scene, state)`; the dispatch shim below
// selects the phase so one compiled script serves both.
type hookRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
	state      map[string]any
}

const hookDispatchScript = `
if __phase == "enter" {
	onEnter(__scene, __state)
} else if __phase == "exit" {
	onExit(__scene, __state)
}
`

func newHookRuntime(scriptPath string) (*hookRuntime, error) {
	if strings.TrimSpace(scriptPath) == "" {
		return nil, fmt.Errorf("scene: empty hook script path")
	}
	src, err := LoadScript(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("scene: load hook %s: %w", scriptPath, err)
	}

	script := tengo.NewScript(append(src, []byte("\n"+hookDispatchScript)...))
	_ = script.Add("__phase", "")
	_ = script.Add("__scene", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("scene: compile hook %s: %w", scriptPath, err)
	}

	return &hookRuntime{
		scriptPath: scriptPath,
		compiled:   compiled,
		state:      map[string]any{},
	}, nil
}

func (h *hookRuntime) runPhase(phase string, s *Scene) error {
	if h == nil || h.compiled == nil || s == nil {
		return nil
	}
	c := h.compiled.Clone()
	if err := c.Set("__phase", phase); err != nil {
		return err
	}
	if err := c.Set("__scene", map[string]any{
		"id":           s.ID,
		"display_name": s.DisplayName,
		"width":        s.Width,
		"height":       s.Height,
	}); err != nil {
		return err
	}
	if err := c.Set("__state", h.state); err != nil {
		return err
	}
	if err := c.Run(); err != nil {
		return fmt.Errorf("scene: hook %s phase %s: %w", h.scriptPath, phase, err)
	}
	// Persist state mutated by the script across phases and visits.
	if v := c.Get("__state"); v != nil {
		if m, ok := v.Value().(map[string]any); ok {
			h.state = m
		}
	}
	return nil
}

// RunEnter fires the scene's onEnter hook, if it has one.
func (s *Scene) RunEnter() error {
	if s == nil || s.hooks == nil {
		return nil
	}
	return s.hooks.runPhase("enter", s)
}

// RunExit fires the scene's onExit hook, if it has one.
func (s *Scene) RunExit() error {
	if s == nil || s.hooks == nil {
		return nil
	}
	return s.hooks.runPhase("exit", s)
}
