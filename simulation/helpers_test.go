package simulation

import (
	"bufio"
	"bytes"
	"context"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nickng/philo/config"
	"github.com/stretchr/testify/require"
)

type line struct {
	ms  int64
	id  int
	msg string
}

func parseLog(t *testing.T, out string) []line {
	t.Helper()
	var lines []line
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		fields := strings.SplitN(sc.Text(), " ", 3)
		require.Len(t, fields, 3, "malformed line %q", sc.Text())
		ms, err := strconv.ParseInt(fields[0], 10, 64)
		require.NoError(t, err)
		id, err := strconv.Atoi(fields[1])
		require.NoError(t, err)
		lines = append(lines, line{ms: ms, id: id, msg: fields[2]})
	}
	return lines
}

// mealStarts returns the "is eating" timestamps of every diner.
func mealStarts(lines []line) map[int][]int64 {
	starts := make(map[int][]int64)
	for _, l := range lines {
		if l.msg == Eating.String() {
			starts[l.id] = append(starts[l.id], l.ms)
		}
	}
	return starts
}

func mustConfig(t *testing.T, args ...string) *config.Config {
	t.Helper()
	cfg, err := config.Parse(args)
	require.NoError(t, err)
	return cfg
}

// runFor runs a simulation to its end, or until limit.
func runFor(t *testing.T, cfg *config.Config, limit time.Duration, opts Options) (*Report, []line) {
	t.Helper()
	var out bytes.Buffer
	sim, err := New(cfg, &out, opts)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), limit)
	defer cancel()
	report, err := sim.Run(ctx)
	require.NoError(t, err)
	return report, parseLog(t, out.String())
}

// exclusion is a table.Probe counting concurrent holders per fork.
type exclusion struct {
	mu      sync.Mutex
	holders map[int]int
	maxSeen int
	takes   int
}

func (e *exclusion) Taken(fork, diner int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.holders == nil {
		e.holders = make(map[int]int)
	}
	e.holders[fork]++
	e.takes++
	if e.holders[fork] > e.maxSeen {
		e.maxSeen = e.holders[fork]
	}
}

func (e *exclusion) Dropped(fork, diner int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.holders[fork]--
}

// fixedClock never moves unless told to.
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Sleep(d time.Duration) {}

func (c *fixedClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
