package appointment

import "strings"

// ===============================
// Salon Services
// ===============================

type Service string

const (
	ServiceFacial   Service = "facial"
	ServiceMassage  Service = "massage"
	ServiceHaircut  Service = "haircut"
	ServiceManicure Service = "manicure"
)

var services = []Service{
	ServiceFacial,
	ServiceMassage,
	ServiceHaircut,
	ServiceManicure,
}

// Services returns the bookable services in display order.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

func (s Service) Valid() bool {
	for _, v := range services {
		if s == v {
			return true
		}
	}
	return false
}

// Label capitalises the first letter for display.
func (s Service) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}
