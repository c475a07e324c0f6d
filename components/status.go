package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type NameData struct {
	Name string
}

var Name = donburi.NewComponentType[NameData]()

// HeartbeatData drives the repeating status log line.
type HeartbeatData struct {
	Interval time.Duration
	Next     time.Duration
}

var Heartbeat = donburi.NewComponentType[HeartbeatData]()

// HUDData holds presentation-only state for the overlay.
type HUDData struct {
	// CooldownMeter drains from 1 to 0 while a jump cools down. Nil when idle.
	CooldownMeter *gween.Tween
	MeterValue    float32
}

var HUD = donburi.NewComponentType[HUDData]()
