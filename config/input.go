package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID identifies a bindable action.
type ActionID int

const (
	ActionTogglePanel ActionID = iota
	ActionToggleDebug
	ActionCycleMode
	ActionQuit

	ActionCount
)

// Binding maps an action to the keys that trigger it.
type Binding struct {
	Keys []ebiten.Key
}

// InputConfig contains all key bindings.
type InputConfig struct {
	Bindings map[ActionID]Binding
}

// Input is the global input configuration.
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]Binding{
			ActionTogglePanel: {Keys: []ebiten.Key{ebiten.KeyTab}},
			ActionToggleDebug: {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionCycleMode:   {Keys: []ebiten.Key{ebiten.KeyM}},
			ActionQuit:        {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
	}
}
