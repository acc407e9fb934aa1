package dto

import domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"

type CheckForm struct {
	Phone string `form:"phone" json:"phone"`
}

type DraftForm struct {
	Name            string `form:"name" json:"name"`
	Date            string `form:"date" json:"date"`
	Time            string `form:"time" json:"time"`
	Service         string `form:"service" json:"service"`
	SpecialRequests string `form:"specialRequests" json:"specialRequests"`
}

func (f DraftForm) Draft() domain.Draft {
	return domain.Draft{
		Name:            f.Name,
		Date:            f.Date,
		Time:            f.Time,
		Service:         domain.Service(f.Service),
		SpecialRequests: f.SpecialRequests,
	}
}
