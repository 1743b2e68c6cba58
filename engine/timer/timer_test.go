package timer

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerSchedulerRunsUntilCancelled(t *testing.T) {
	var n atomic.Int32
	task := NewTickerScheduler(nil).Every(time.Millisecond, func() { n.Add(1) })

	require.Eventually(t, func() bool { return n.Load() >= 3 }, time.Second, time.Millisecond)

	task.Cancel()
	task.Cancel()
	after := n.Load()
	time.Sleep(20 * time.Millisecond)
	// One tick may have been mid-flight when Cancel ran.
	assert.LessOrEqual(t, n.Load(), after+1)
}

func TestTickerSchedulerPostsThroughQueue(t *testing.T) {
	q := input.NewQueue(8)
	defer q.Close()

	var n atomic.Int32
	task := NewTickerScheduler(q.Post).Every(time.Millisecond, func() { n.Add(1) })
	require.Eventually(t, func() bool { return n.Load() >= 2 }, time.Second, time.Millisecond)

	task.Cancel()
	q.Flush()
	settled := n.Load()
	time.Sleep(20 * time.Millisecond)
	q.Flush()
	assert.Equal(t, settled, n.Load())
}

func TestCancelFromInsideCallback(t *testing.T) {
	var task Task
	var n atomic.Int32
	ready := make(chan struct{})
	task = NewTickerScheduler(nil).Every(time.Millisecond, func() {
		<-ready
		n.Add(1)
		task.Cancel()
	})
	close(ready)

	require.Eventually(t, func() bool { return n.Load() >= 1 }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(1), n.Load())
}
