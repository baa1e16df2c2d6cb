package config

// SettingsStep describes a stepper row in the settings panel: the panel
// walks the value up and down by Step between Min and Max.
type SettingsStep struct {
	Label string
	Min   float64
	Max   float64
	Step  float64
}

// SettingsPanelConfig contains the parameter panel layout and ranges.
type SettingsPanelConfig struct {
	Radius     SettingsStep
	SpeedMin   SettingsStep
	SpeedMax   SettingsStep
	Randomness SettingsStep

	ModeLabels []string // indexed by MotionMode
}

// SettingsPanel is the global parameter panel configuration.
var SettingsPanel SettingsPanelConfig

func init() {
	SettingsPanel = SettingsPanelConfig{
		Radius:     SettingsStep{Label: "Radius", Min: 20, Max: 400, Step: 10},
		SpeedMin:   SettingsStep{Label: "Speed min", Min: 0.1, Max: 4.0, Step: 0.1},
		SpeedMax:   SettingsStep{Label: "Speed max", Min: 0.1, Max: 4.0, Step: 0.1},
		Randomness: SettingsStep{Label: "Randomness", Min: 0, Max: 150, Step: 5},

		ModeLabels: []string{"Off", "Circular"},
	}
}

// Clamp limits v to the step's range.
func (s SettingsStep) Clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}
