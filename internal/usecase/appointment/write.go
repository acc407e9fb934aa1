package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
)

// outcome describes one write flavour for finish.
type outcome struct {
	action    string
	okMsg     string
	failedMsg string
}

var (
	createOutcome = outcome{audit.ActionCreated, notify.MsgCreated, notify.MsgCreateFailed}
	updateOutcome = outcome{audit.ActionUpdated, notify.MsgUpdated, notify.MsgUpdateFailed}
	deleteOutcome = outcome{audit.ActionDeleted, notify.MsgDeleted, notify.MsgDeleteFailed}
)

// requireMode refuses to act unless the last lookup put the form in want.
func requireMode(st *domain.FormState, want domain.Mode) error {
	if st.Mode != want || !st.Consistent() {
		st.Notify(notify.Error(notify.MsgCheckFirst))
		return httperr.ErrBusinessMsg("invalid_mode", notify.MsgCheckFirst)
	}
	return nil
}

func notifyInvalid(st *domain.FormState, err error) {
	if msg, ok := httperr.BusinessMessage(err); ok {
		st.Notify(notify.Error(msg))
		return
	}
	st.Notify(notify.Error(err.Error()))
}

// finish applies the result of a write to the form.
//
// A rejection (2xx with a message) is reported as an error and keeps the
// lookup and draft so the user can correct and resubmit. Only a confirmed
// write clears the form.
func finish(
	ctx context.Context,
	d *audit.Dispatcher,
	st *domain.FormState,
	o outcome,
	err error,
) error {

	ev := audit.Event{Action: o.action, Phone: st.Phone}

	switch msg, rejected := repository.RejectionMessage(err); {
	case err == nil:
		st.Reset()
		st.Notify(notify.Success(o.okMsg))
		ev.Outcome = audit.OutcomeOK
	case rejected:
		st.Notify(notify.Error(msg))
		ev.Outcome = audit.OutcomeRejected
		ev.Metadata = map[string]string{"message": msg}
	default:
		st.Notify(notify.Error(o.failedMsg))
		ev.Outcome = audit.OutcomeFailed
		ev.Metadata = map[string]string{"error": err.Error()}
	}

	d.Dispatch(ctx, ev)
	return err
}
