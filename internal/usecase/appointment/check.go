package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

type CheckAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCheckAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CheckAppointment {
	return &CheckAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// Execute looks up the appointment for phone and moves the form into the
// matching mode. On failure the state is left as it was.
func (uc *CheckAppointment) Execute(
	ctx context.Context,
	st *domain.FormState,
	phone string,
) error {

	phone, err := validators.NormalizePhone(phone)
	if err != nil {
		notifyInvalid(st, err)
		return err
	}

	res, err := uc.repo.Lookup(ctx, phone)
	if err != nil {
		st.Notify(notify.Error(notify.MsgCheckFailed))
		uc.audit.Dispatch(ctx, audit.Event{
			Action:   audit.ActionLookup,
			Outcome:  audit.OutcomeFailed,
			Phone:    phone,
			Metadata: map[string]string{"error": err.Error()},
		})
		return err
	}

	st.ApplyLookup(phone, res, timezone.DateOnly(uc.loc))

	switch {
	case !res.Exists:
		st.Notify(notify.Info(notify.MsgNotFound))
	case res.PastAppointment:
		st.Notify(notify.Warning(notify.MsgExpired))
	default:
		st.Notify(notify.Success(notify.MsgFound))
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:  audit.ActionLookup,
		Outcome: audit.OutcomeOK,
		Phone:   phone,
		Metadata: map[string]any{
			"exists": res.Exists,
			"past":   res.PastAppointment,
			"mode":   st.Mode,
		},
	})
	return nil
}
