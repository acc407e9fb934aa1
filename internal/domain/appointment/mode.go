package appointment

import "github.com/BruksfildServices01/salon-booking/internal/models"

// ===============================
// Form Mode
// ===============================

// Mode selects which branch of the booking form is shown.
type Mode string

const (
	ModeNone           Mode = ""
	ModeCreate         Mode = "create"
	ModeUpdateOrDelete Mode = "updateOrDelete"
)

// ModeFor derives the form branch from a lookup. Only an existing,
// upcoming appointment can be edited; anything else offers a new booking.
func ModeFor(res *models.LookupResult) Mode {
	if res == nil {
		return ModeNone
	}
	if res.Exists && !res.PastAppointment {
		return ModeUpdateOrDelete
	}
	return ModeCreate
}
