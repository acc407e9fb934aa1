package appointment

import "github.com/BruksfildServices01/salon-booking/internal/models"

// Draft holds the editable create/update fields.
type Draft struct {
	Name            string  `json:"name"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Service         Service `json:"service"`
	SpecialRequests string  `json:"specialRequests"`
}

func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// Appointment builds the API payload. An empty phone is omitted, which is
// what the update call expects.
func (d Draft) Appointment(phone string) models.Appointment {
	return models.Appointment{
		Phone:           phone,
		Name:            d.Name,
		Date:            d.Date,
		Time:            d.Time,
		Service:         string(d.Service),
		SpecialRequests: d.SpecialRequests,
	}
}

// DraftFrom copies an existing appointment into an editable draft.
// dateOnly normalises whatever date representation the API returned.
func DraftFrom(ap *models.Appointment, dateOnly func(string) string) Draft {
	if ap == nil {
		return Draft{}
	}
	date := ap.Date
	if dateOnly != nil {
		date = dateOnly(date)
	}
	return Draft{
		Name:            ap.Name,
		Date:            date,
		Time:            ap.Time,
		Service:         Service(ap.Service),
		SpecialRequests: ap.SpecialRequests,
	}
}
