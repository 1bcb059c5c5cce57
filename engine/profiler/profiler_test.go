package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTickBeforeIntervalDoesNotLog(t *testing.T) {
	p := NewProfiler(zap.NewNop())
	assert.False(t, p.Tick())
}

func TestTickAfterIntervalLogsAndResets(t *testing.T) {
	p := NewProfiler(zap.NewNop())
	p.lastTime = time.Now().Add(-2 * time.Second)

	assert.True(t, p.Tick())
	assert.Equal(t, 0, p.frameCount)
	assert.False(t, p.Tick())
}
