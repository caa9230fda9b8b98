package weather

import (
	"context"

	"github.com/google/uuid"

	"simpleweather/internal/models"
)

// FetchTask is a handle to one asynchronous weather fetch.
type FetchTask struct {
	id     string
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Start runs Fetch in the background. onSuccess is invoked exactly once if
// the fetch succeeds and never otherwise; it has returned by the time Done
// is closed.
func (s *WeatherService) Start(ctx context.Context, coord models.Coordinate, onSuccess func(models.Snapshot)) *FetchTask {
	ctx, cancel := context.WithCancel(ctx)

	t := &FetchTask{
		id:     uuid.NewString(),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(t.done)
		defer cancel()

		snapshot, err := s.Fetch(ctx, coord)
		if err != nil {
			t.err = err
			s.l.Error(err, map[string]any{
				"task": t.id,
				"lat":  coord.Latitude,
				"lon":  coord.Longitude,
			})
			return
		}

		if onSuccess != nil {
			onSuccess(snapshot)
		}
		s.l.Debug("fetch task finished", map[string]any{"task": t.id})
	}()

	return t
}

func (t *FetchTask) ID() string {
	return t.id
}

func (t *FetchTask) Done() <-chan struct{} {
	return t.done
}

// Err returns the fetch error once the task is done, and nil before that.
func (t *FetchTask) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Cancel aborts an outstanding fetch. It is safe to call at any time.
func (t *FetchTask) Cancel() {
	t.cancel()
}

// Wait blocks until the task is done or ctx ends.
func (t *FetchTask) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
