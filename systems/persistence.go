package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"

	cfg "github.com/solview/lumenring/config"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Mode         int     `json:"mode"`
	CircleRadius float64 `json:"circleRadius"`
	SpeedMin     float64 `json:"speedMin"`
	SpeedMax     float64 `json:"speedMax"`
	Randomness   float64 `json:"randomness"`
	DebugEnabled bool    `json:"debugEnabled"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "lumenring",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SnapshotSettings captures the current motion config for persistence.
func SnapshotSettings() *SavedSettings {
	return &SavedSettings{
		Mode:         int(cfg.Motion.Mode),
		CircleRadius: cfg.Motion.CircleRadius,
		SpeedMin:     cfg.Motion.SpeedMin,
		SpeedMax:     cfg.Motion.SpeedMax,
		Randomness:   cfg.Motion.Randomness,
		DebugEnabled: cfg.Motion.DebugEnabled,
	}
}

// ApplySavedSettings writes saved values back into the live motion config,
// clamped to the panel ranges so a stale file can't smuggle bad values in.
func ApplySavedSettings(s *SavedSettings) {
	if s == nil {
		return
	}
	mode := cfg.MotionMode(s.Mode)
	if mode != cfg.MotionOff && mode != cfg.MotionCircular {
		mode = cfg.MotionCircular
	}
	cfg.Motion.Mode = mode
	cfg.Motion.CircleRadius = cfg.SettingsPanel.Radius.Clamp(s.CircleRadius)
	cfg.Motion.SpeedMin = cfg.SettingsPanel.SpeedMin.Clamp(s.SpeedMin)
	cfg.Motion.SpeedMax = cfg.SettingsPanel.SpeedMax.Clamp(s.SpeedMax)
	if cfg.Motion.SpeedMax < cfg.Motion.SpeedMin {
		cfg.Motion.SpeedMax = cfg.Motion.SpeedMin
	}
	cfg.Motion.Randomness = cfg.SettingsPanel.Randomness.Clamp(s.Randomness)
	cfg.Motion.DebugEnabled = s.DebugEnabled
}
