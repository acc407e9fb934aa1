package appointment

import (
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
)

// FormState is everything one visitor's booking form remembers between
// requests. It is owned by a single session.
type FormState struct {
	Phone  string               `json:"phone"`
	Lookup *models.LookupResult `json:"lookup,omitempty"`
	Draft  Draft                `json:"draft"`
	Mode   Mode                 `json:"mode"`
	Toasts []notify.Toast       `json:"toasts,omitempty"`
}

func NewFormState() *FormState {
	return &FormState{}
}

// ApplyLookup stores a lookup outcome and re-derives the mode. The draft
// starts over, pre-filled from the appointment when it can be edited.
func (s *FormState) ApplyLookup(phone string, res *models.LookupResult, dateOnly func(string) string) {
	s.Phone = phone
	s.Lookup = res
	s.Mode = ModeFor(res)
	s.Draft = Draft{}
	if s.Mode == ModeUpdateOrDelete {
		s.Draft = DraftFrom(res.Appointment, dateOnly)
	}
}

// Reset drops the lookup and draft after a completed write. The phone is
// kept so the input stays filled in.
func (s *FormState) Reset() {
	s.Lookup = nil
	s.Draft = Draft{}
	s.Mode = ModeNone
}

func (s *FormState) Notify(t notify.Toast) {
	s.Toasts = append(s.Toasts, t)
}

// TakeToasts returns pending toasts and forgets them.
func (s *FormState) TakeToasts() []notify.Toast {
	out := s.Toasts
	s.Toasts = nil
	return out
}

// Consistent reports whether the mode agrees with the held lookup.
func (s *FormState) Consistent() bool {
	switch s.Mode {
	case ModeUpdateOrDelete:
		return s.Lookup != nil && s.Lookup.Exists && !s.Lookup.PastAppointment
	case ModeCreate:
		return s.Lookup != nil
	case ModeNone:
		return true
	}
	return false
}
