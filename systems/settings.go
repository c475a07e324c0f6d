package systems

import (
	"github.com/automoto/rollball/components"
	cfg "github.com/automoto/rollball/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the window-level controls: cursor grab and the
// debug overlay toggle.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		SetCursorCaptured(settings, true)
	}
	if inpututil.IsKeyJustPressed(cfg.Input.ReleaseCursorKey) {
		SetCursorCaptured(settings, false)
	}
	if inpututil.IsKeyJustPressed(cfg.Input.ToggleDebugKey) {
		settings.Debug = !settings.Debug
		log.Debug("debug overlay", "enabled", settings.Debug)
	}
}

// SetCursorCaptured hides and locks the cursor, or gives it back.
func SetCursorCaptured(settings *components.SettingsData, captured bool) {
	if settings.CursorCaptured == captured {
		return
	}
	settings.CursorCaptured = captured
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	log.Debug("cursor", "captured", captured)
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	return components.Settings.Get(getOrCreateSettingsEntry(ecs))
}

func getOrCreateSettingsEntry(ecs *ecs.ECS) *donburi.Entry {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings, components.HUD, components.Heartbeat))
		components.Settings.SetValue(entry, components.SettingsData{Debug: cfg.Debug.Enabled})
		components.Heartbeat.SetValue(entry, components.HeartbeatData{
			Interval: cfg.Debug.Heartbeat,
			Next:     cfg.Debug.Heartbeat,
		})
	}
	return entry
}
