package systems

import (
	"github.com/automoto/rollball/components"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHeartbeat logs the simulated time and greets every named entity each
// time the heartbeat interval elapses.
func UpdateHeartbeat(ecs *ecs.ECS) {
	hb := components.Heartbeat.Get(getOrCreateSettingsEntry(ecs))
	if hb.Interval <= 0 {
		return
	}

	now := GetOrCreateClock(ecs).Elapsed
	if now < hb.Next {
		return
	}
	for hb.Next <= now {
		hb.Next += hb.Interval
	}

	log.Info("current time", "elapsed", now)
	components.Name.Each(ecs.World, func(e *donburi.Entry) {
		log.Info("hello", "name", components.Name.Get(e).Name)
	})
}
