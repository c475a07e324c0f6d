package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the simulated clock. It only moves when the clock system
// steps it, so cooldowns are deterministic.
type ClockData struct {
	Elapsed time.Duration
	Delta   time.Duration
	Frame   uint64
}

// DeltaSeconds returns the last step length in seconds.
func (c *ClockData) DeltaSeconds() float64 {
	return c.Delta.Seconds()
}

var Clock = donburi.NewComponentType[ClockData]()
