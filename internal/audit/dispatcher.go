package audit

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-booking/internal/session"
)

const (
	ActionLookup  = "appointment_lookup"
	ActionCreated = "appointment_created"
	ActionUpdated = "appointment_updated"
	ActionDeleted = "appointment_deleted"

	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

type Event struct {
	SessionID string
	Action    string
	Outcome   string
	Phone     string
	Metadata  any
}

// Sink persists audit events.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

// Dispatcher hands events to a sink on a background worker so the
// booking flow never waits on, or fails because of, the audit trail.
type Dispatcher struct {
	sink  Sink
	log   zerolog.Logger
	queue chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sink Sink, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

// Dispatch enqueues ev, taking the session id from ctx when unset.
// A full queue drops the event.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	if ev.SessionID == "" {
		ev.SessionID = session.IDFromContext(ctx)
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits until the queue is drained or
// ctx ends. Dispatch must not be called after Close.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.closeOnce.Do(func() { close(d.queue) })

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
