package dashboard

import (
	"context"
	"sync"

	"simpleweather/internal/models"
	"simpleweather/internal/services/weather"
	"simpleweather/pkg/observe"
)

type State string

const (
	StatePending State = "pending"
	StateLoaded  State = "loaded"
	StateFailed  State = "failed"
)

// Fetcher starts the single asynchronous weather fetch.
type Fetcher interface {
	Start(ctx context.Context, coord models.Coordinate, onSuccess func(models.Snapshot)) *weather.FetchTask
}

// Controller owns the dashboard snapshot. Only the fetch continuation writes
// it; renders read a copy.
type Controller struct {
	fetcher Fetcher
	coord   models.Coordinate
	l       *observe.Logger

	mount sync.Once

	mu       sync.RWMutex
	snapshot models.Snapshot
	task     *weather.FetchTask
}

func NewController(fetcher Fetcher, coord models.Coordinate, l *observe.Logger) *Controller {
	return &Controller{
		fetcher: fetcher,
		coord:   coord,
		l:       l,
	}
}

// Mount starts the fetch the first time the dashboard becomes visible. Later
// calls return the same task without fetching again. ctx bounds the fetch,
// so it should outlive the request that triggered the mount.
func (c *Controller) Mount(ctx context.Context) *weather.FetchTask {
	c.mount.Do(func() {
		task := c.fetcher.Start(ctx, c.coord, c.apply)

		c.mu.Lock()
		c.task = task
		c.mu.Unlock()

		c.l.Info("dashboard mounted", map[string]any{
			"task": task.ID(),
			"lat":  c.coord.Latitude,
			"lon":  c.coord.Longitude,
		})
	})

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.task
}

// apply swaps in the whole snapshot at once so no render sees a partial update.
func (c *Controller) apply(s models.Snapshot) {
	c.mu.Lock()
	c.snapshot = s
	c.mu.Unlock()
}

func (c *Controller) Snapshot() models.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot.Clone()
}

func (c *Controller) State() State {
	c.mu.RLock()
	task := c.task
	c.mu.RUnlock()

	if task == nil {
		return StatePending
	}
	select {
	case <-task.Done():
	default:
		return StatePending
	}
	if task.Err() != nil {
		return StateFailed
	}
	return StateLoaded
}

// Settled reports whether the fetch has finished, successfully or not.
func (c *Controller) Settled() bool {
	return c.State() != StatePending
}

func (c *Controller) Layout() Layout {
	return Render(c.Snapshot())
}

// Close cancels an outstanding fetch.
func (c *Controller) Close() {
	c.mu.RLock()
	task := c.task
	c.mu.RUnlock()

	if task != nil {
		task.Cancel()
	}
}
