package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// manual is a Clock that only moves when slept on.
type manual struct {
	mu     sync.Mutex
	now    time.Time
	slices []time.Duration
}

func (m *manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *manual) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	m.slices = append(m.slices, d)
}

func TestSlice(t *testing.T) {
	assert.Equal(t, time.Millisecond, Slice(time.Second))
	assert.Equal(t, 500*time.Microsecond, Slice(time.Millisecond))
	assert.Equal(t, 50*time.Microsecond, Slice(100*time.Microsecond))
}

func TestSleepUntilCompletes(t *testing.T) {
	c := &manual{now: time.Unix(0, 0)}
	deadline := c.now.Add(10 * time.Millisecond)
	assert.True(t, SleepUntil(c, deadline, func() bool { return false }))
	assert.False(t, c.Now().Before(deadline))
	assert.False(t, c.Now().After(deadline), "must not overshoot on a manual clock")

	// Slices never grow as the deadline nears.
	for i := 1; i < len(c.slices); i++ {
		assert.LessOrEqual(t, c.slices[i], c.slices[i-1])
	}
}

func TestSleepUntilCancelled(t *testing.T) {
	c := &manual{now: time.Unix(0, 0)}
	calls := 0
	done := SleepUntil(c, c.now.Add(time.Second), func() bool {
		calls++
		return calls > 3
	})
	assert.False(t, done)
	assert.Equal(t, 3*time.Millisecond, c.Now().Sub(time.Unix(0, 0)))
}

func TestSleepUntilPastDeadline(t *testing.T) {
	c := &manual{now: time.Unix(5, 0)}
	assert.True(t, SleepUntil(c, time.Unix(4, 0), nil))
	assert.Empty(t, c.slices)
}

func TestSleepForReal(t *testing.T) {
	start := time.Now()
	assert.True(t, SleepFor(Real{}, 20*time.Millisecond, nil))
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, int64(elapsed), int64(20*time.Millisecond))
	assert.Less(t, int64(elapsed), int64(60*time.Millisecond))
}

func TestMillis(t *testing.T) {
	start := time.Unix(0, 0)
	assert.Equal(t, int64(800), Millis(start, start.Add(800*time.Millisecond+999*time.Microsecond)))
}
