package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute books a new appointment for the phone that was looked up.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	st *domain.FormState,
	draft domain.Draft,
) error {

	st.Draft = draft
	if err := requireMode(st, domain.ModeCreate); err != nil {
		return err
	}

	draft, err := validators.NormalizeDraft(draft)
	if err != nil {
		notifyInvalid(st, err)
		return err
	}
	st.Draft = draft

	err = uc.repo.Create(ctx, draft.Appointment(st.Phone))
	return finish(ctx, uc.audit, st, createOutcome, err)
}
