package dto

import (
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// FormStateDTO is the JSON view of a session's form. Toasts are left out
// so reading the state does not consume them.
type FormStateDTO struct {
	Phone  string               `json:"phone"`
	Mode   string               `json:"mode"`
	Lookup *models.LookupResult `json:"lookup"`
	Draft  domain.Draft         `json:"draft"`
}

func NewFormStateDTO(st *domain.FormState) FormStateDTO {
	mode := string(st.Mode)
	if mode == "" {
		mode = "none"
	}
	return FormStateDTO{
		Phone:  st.Phone,
		Mode:   mode,
		Lookup: st.Lookup,
		Draft:  st.Draft,
	}
}
