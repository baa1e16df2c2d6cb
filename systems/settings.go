package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/solview/lumenring/components"
	cfg "github.com/solview/lumenring/config"
)

// saveDelayTicks is the write-behind delay before flushing dirty settings.
const saveDelayTicks = 60

// UpdateSettings handles the settings hotkeys and flushes dirty settings
// to disk after a short quiet period.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	st := GetOrCreateSettings(e)

	if input.JustPressed(cfg.ActionTogglePanel) {
		st.PanelOpen = !st.PanelOpen
	}
	if input.JustPressed(cfg.ActionQuit) && st.PanelOpen {
		st.PanelOpen = false
	}
	if input.JustPressed(cfg.ActionToggleDebug) {
		ToggleDebug(e)
	}
	if input.JustPressed(cfg.ActionCycleMode) {
		CycleMode(e)
	}

	if st.Dirty {
		st.SaveDelay--
		if st.SaveDelay <= 0 {
			if err := SaveSettings(SnapshotSettings()); err == nil {
				st.Dirty = false
			} else {
				// Retry after another delay rather than every tick.
				st.SaveDelay = saveDelayTicks
			}
		}
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
	}
	return components.Settings.Get(entry)
}

// MarkSettingsDirty schedules a write-behind settings flush.
func MarkSettingsDirty(e *ecs.ECS) {
	st := GetOrCreateSettings(e)
	st.Dirty = true
	st.SaveDelay = saveDelayTicks
}

// CycleMode advances the auto-pilot mode.
func CycleMode(e *ecs.ECS) {
	switch cfg.Motion.Mode {
	case cfg.MotionOff:
		cfg.Motion.Mode = cfg.MotionCircular
	default:
		cfg.Motion.Mode = cfg.MotionOff
	}
	MarkSettingsDirty(e)
}

// ToggleDebug flips the synthetic pointer indicator.
func ToggleDebug(e *ecs.ECS) {
	cfg.Motion.DebugEnabled = !cfg.Motion.DebugEnabled
	MarkSettingsDirty(e)
}

// AdjustRadius steps the orbit radius by dir (+1/-1).
func AdjustRadius(e *ecs.ECS, dir int) {
	s := cfg.SettingsPanel.Radius
	cfg.Motion.CircleRadius = s.Clamp(cfg.Motion.CircleRadius + float64(dir)*s.Step)
	MarkSettingsDirty(e)
}

// AdjustRandomness steps the jitter amplitude by dir (+1/-1).
func AdjustRandomness(e *ecs.ECS, dir int) {
	s := cfg.SettingsPanel.Randomness
	cfg.Motion.Randomness = s.Clamp(cfg.Motion.Randomness + float64(dir)*s.Step)
	MarkSettingsDirty(e)
}

// AdjustSpeedMin steps the lower speed bound, dragging the upper bound
// along so SpeedMin <= SpeedMax always holds.
func AdjustSpeedMin(e *ecs.ECS, dir int) {
	s := cfg.SettingsPanel.SpeedMin
	cfg.Motion.SpeedMin = s.Clamp(cfg.Motion.SpeedMin + float64(dir)*s.Step)
	if cfg.Motion.SpeedMax < cfg.Motion.SpeedMin {
		cfg.Motion.SpeedMax = cfg.Motion.SpeedMin
	}
	MarkSettingsDirty(e)
}

// AdjustSpeedMax steps the upper speed bound, dragging the lower bound
// along so SpeedMin <= SpeedMax always holds.
func AdjustSpeedMax(e *ecs.ECS, dir int) {
	s := cfg.SettingsPanel.SpeedMax
	cfg.Motion.SpeedMax = s.Clamp(cfg.Motion.SpeedMax + float64(dir)*s.Step)
	if cfg.Motion.SpeedMin > cfg.Motion.SpeedMax {
		cfg.Motion.SpeedMin = cfg.Motion.SpeedMax
	}
	MarkSettingsDirty(e)
}
