package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	st *domain.FormState,
) error {

	if err := requireMode(st, domain.ModeUpdateOrDelete); err != nil {
		return err
	}

	err := uc.repo.Delete(ctx, st.Phone)
	return finish(ctx, uc.audit, st, deleteOutcome, err)
}
