package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces the upcoming appointment held by the form.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	st *domain.FormState,
	draft domain.Draft,
) error {

	st.Draft = draft
	if err := requireMode(st, domain.ModeUpdateOrDelete); err != nil {
		return err
	}

	draft, err := validators.NormalizeDraft(draft)
	if err != nil {
		notifyInvalid(st, err)
		return err
	}
	st.Draft = draft

	err = uc.repo.Update(ctx, st.Phone, draft.Appointment(""))
	return finish(ctx, uc.audit, st, updateOutcome, err)
}
