package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical ball action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight
	ActionJump
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionForward:  "forward",
	ActionBackward: "backward",
	ActionLeft:     "left",
	ActionRight:    "right",
	ActionJump:     "jump",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// InputConfig holds all input mappings
type InputConfig struct {
	// Keys bound to each action, keyed by action name in the config file
	Bindings map[string][]ebiten.Key `yaml:"bindings"`

	// ReleaseCursorKey frees a captured cursor, ToggleDebugKey flips the debug overlay
	ReleaseCursorKey ebiten.Key `yaml:"release_cursor_key"`
	ToggleDebugKey   ebiten.Key `yaml:"toggle_debug_key"`

	keyToAction map[ebiten.Key]ActionID
}

// Input is the global input configuration
var Input InputConfig

func resetInput() {
	Input = InputConfig{
		Bindings: map[string][]ebiten.Key{
			ActionForward.String():  {ebiten.KeyArrowUp},
			ActionBackward.String(): {ebiten.KeyArrowDown},
			ActionLeft.String():     {ebiten.KeyArrowLeft},
			ActionRight.String():    {ebiten.KeyArrowRight},
			ActionJump.String():     {ebiten.KeySpace},
		},
		ReleaseCursorKey: ebiten.KeyEscape,
		ToggleDebugKey:   ebiten.KeyF3,
	}
	Input.rebuild()
}

// rebuild refreshes the reverse lookup after Bindings changed.
func (c *InputConfig) rebuild() {
	c.keyToAction = make(map[ebiten.Key]ActionID)
	for id := ActionForward; id < ActionCount; id++ {
		for _, key := range c.Bindings[id.String()] {
			c.keyToAction[key] = id
		}
	}
}

// ActionForKey returns the action bound to key, or ActionNone.
func (c *InputConfig) ActionForKey(key ebiten.Key) ActionID {
	if id, ok := c.keyToAction[key]; ok {
		return id
	}
	return ActionNone
}

// Bind replaces the keys of one action.
func (c *InputConfig) Bind(id ActionID, keys ...ebiten.Key) {
	c.Bindings[id.String()] = keys
	c.rebuild()
}
