package systems

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/automoto/rollball/components"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestHeartbeatGreetsNamedEntities(t *testing.T) {
	e, _ := newTestScene(t)
	out := captureLog(t)

	StepClock(GetOrCreateClock(e), 1900*time.Millisecond)
	UpdateHeartbeat(e)
	assert.Empty(t, out.String(), "silent before the first interval")

	StepClock(GetOrCreateClock(e), 100*time.Millisecond)
	UpdateHeartbeat(e)
	assert.Contains(t, out.String(), "current time")
	assert.Contains(t, out.String(), "hello")
	assert.Contains(t, out.String(), "ball")
	assert.Contains(t, out.String(), "platform-")

	out.Reset()
	UpdateHeartbeat(e)
	assert.Empty(t, out.String(), "once per interval")

	hb := components.Heartbeat.Get(getOrCreateSettingsEntry(e))
	assert.Equal(t, 4*time.Second, hb.Next)
}
