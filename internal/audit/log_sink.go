package audit

import (
	"context"

	"github.com/rs/zerolog"
)

// LogSink writes events to the process log. Used when no audit database
// is configured.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Log(_ context.Context, ev Event) error {
	s.log.Info().
		Str("session_id", ev.SessionID).
		Str("action", ev.Action).
		Str("outcome", ev.Outcome).
		Str("phone", ev.Phone).
		Interface("metadata", ev.Metadata).
		Msg("audit")
	return nil
}
