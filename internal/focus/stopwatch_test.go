package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStopwatch(t *testing.T) {
	var sw Stopwatch

	sw.Tick()
	assert.Equal(t, 0, sw.Elapsed(), "paused stopwatch ignores ticks")

	sw.Start()
	for i := 0; i < 3725; i++ {
		sw.Tick()
	}
	assert.Equal(t, "01:02:05", sw.Display())

	sw.Pause()
	sw.Tick()
	assert.Equal(t, 3725, sw.Elapsed())

	sw.Toggle()
	assert.True(t, sw.Active())

	sw.Reset()
	assert.False(t, sw.Active())
	assert.Equal(t, "00:00:00", sw.Display())
}
