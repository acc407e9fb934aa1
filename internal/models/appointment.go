package models

// Appointment is the salon booking as exchanged with the appointment API.
// Phone is only sent on create; updates address the record by path.
type Appointment struct {
	Phone           string `json:"phone,omitempty"`
	Name            string `json:"name"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Service         string `json:"service"`
	SpecialRequests string `json:"specialRequests"`
}

type LookupResult struct {
	Exists          bool         `json:"exists"`
	PastAppointment bool         `json:"pastAppointment"`
	Appointment     *Appointment `json:"appointment,omitempty"`
}

// WriteResult is the body of a create or update response. A non-empty
// Message means the API refused the request even though it answered 2xx.
type WriteResult struct {
	Message string `json:"message,omitempty"`
}
