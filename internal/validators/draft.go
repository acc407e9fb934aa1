package validators

import (
	"strings"
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	MaxNameLen     = 100
	MaxRequestsLen = 500
)

// NormalizeDraft trims text fields and checks the draft against the
// constraints of the form inputs: required fields, date and time in the
// formats the browser's pickers submit, and a known service.
func NormalizeDraft(d domain.Draft) (domain.Draft, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Date = strings.TrimSpace(d.Date)
	d.Time = strings.TrimSpace(d.Time)
	d.SpecialRequests = strings.TrimSpace(d.SpecialRequests)

	switch {
	case d.Name == "":
		return d, invalid("Please enter a name.")
	case len(d.Name) > MaxNameLen:
		return d, invalid("Name is too long.")
	case !parses(DateLayout, d.Date):
		return d, invalid("Please pick a valid date.")
	case !parses(TimeLayout, d.Time):
		return d, invalid("Please pick a valid time.")
	case !d.Service.Valid():
		return d, invalid("Please select a service.")
	case len(d.SpecialRequests) > MaxRequestsLen:
		return d, invalid("Special requests are too long.")
	}
	return d, nil
}

func parses(layout, v string) bool {
	_, err := time.Parse(layout, v)
	return err == nil
}

func invalid(msg string) error {
	return httperr.ErrBusinessMsg("invalid_form", msg)
}
