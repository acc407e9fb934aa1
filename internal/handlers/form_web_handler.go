package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
	ucAppointment "github.com/BruksfildServices01/salon-booking/internal/usecase/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/web"
)

// ======================================================
// HANDLER
// ======================================================

type FormWebHandler struct {
	check  *ucAppointment.CheckAppointment
	create *ucAppointment.CreateAppointment
	update *ucAppointment.UpdateAppointment
	remove *ucAppointment.DeleteAppointment
}

func NewFormWebHandler(
	check *ucAppointment.CheckAppointment,
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	remove *ucAppointment.DeleteAppointment,
) *FormWebHandler {
	return &FormWebHandler{
		check:  check,
		create: create,
		update: update,
		remove: remove,
	}
}

// ======================================================
// VIEW
// ======================================================

type PageView struct {
	HeroImage   string
	Phone       string
	Mode        domain.Mode
	Appointment *models.Appointment
	Draft       domain.Draft
	Services    []domain.Service
	Toasts      []notify.Toast
}

// ActionResponse answers JSON clients of the action endpoints.
type ActionResponse struct {
	State  dto.FormStateDTO   `json:"state"`
	Toasts []notify.Toast     `json:"toasts"`
	Error  *httperr.HTTPError `json:"error,omitempty"`
}

func (h *FormWebHandler) Page(c *gin.Context) {
	st, ok := middleware.FormState(c)
	if !ok {
		c.String(http.StatusInternalServerError, "Session unavailable.")
		return
	}

	view := PageView{
		HeroImage: web.HeroImage,
		Phone:     st.Phone,
		Mode:      st.Mode,
		Draft:     st.Draft,
		Services:  domain.Services(),
		Toasts:    st.TakeToasts(),
	}
	if st.Lookup != nil {
		view.Appointment = st.Lookup.Appointment
	}

	_ = middleware.SaveSession(c)
	c.HTML(http.StatusOK, "base", view)
}

// ======================================================
// ACTIONS
// ======================================================

func (h *FormWebHandler) Check(c *gin.Context) {
	var req dto.CheckForm
	h.run(c, &req, func(st *domain.FormState) error {
		return h.check.Execute(c.Request.Context(), st, req.Phone)
	})
}

func (h *FormWebHandler) Create(c *gin.Context) {
	var req dto.DraftForm
	h.run(c, &req, func(st *domain.FormState) error {
		return h.create.Execute(c.Request.Context(), st, req.Draft())
	})
}

func (h *FormWebHandler) Update(c *gin.Context) {
	var req dto.DraftForm
	h.run(c, &req, func(st *domain.FormState) error {
		return h.update.Execute(c.Request.Context(), st, req.Draft())
	})
}

func (h *FormWebHandler) Delete(c *gin.Context) {
	h.run(c, nil, func(st *domain.FormState) error {
		return h.remove.Execute(c.Request.Context(), st)
	})
}

// run binds the request, executes the action against the session's form,
// persists it and answers with a redirect to the page, or with the new
// state for JSON clients.
func (h *FormWebHandler) run(c *gin.Context, req any, action func(*domain.FormState) error) {
	st, ok := middleware.FormState(c)
	if !ok {
		httperr.Internal(c, "session_unavailable", "Session unavailable.")
		return
	}

	var err error
	if req != nil {
		if bindErr := c.ShouldBind(req); bindErr != nil {
			err = httperr.ErrBusinessMsg("invalid_request", "Invalid form submission.")
			st.Notify(notify.Error("Invalid form submission."))
		}
	}
	if err == nil {
		err = action(st)
	}

	if err != nil {
		logActionError(c, err)
	}

	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) != gin.MIMEJSON {
		_ = middleware.SaveSession(c)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	status, herr := classify(err)
	resp := ActionResponse{
		State:  dto.NewFormStateDTO(st),
		Toasts: st.TakeToasts(),
		Error:  herr,
	}
	_ = middleware.SaveSession(c)
	c.JSON(status, resp)
}

// ======================================================
// HELPERS
// ======================================================

func classify(err error) (int, *httperr.HTTPError) {
	if err == nil {
		return http.StatusOK, nil
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		return http.StatusBadRequest, &httperr.HTTPError{Code: be.Code, Message: be.Message}
	}
	if msg, ok := repository.RejectionMessage(err); ok {
		return http.StatusUnprocessableEntity, &httperr.HTTPError{Code: "rejected", Message: msg}
	}
	return http.StatusBadGateway, &httperr.HTTPError{Code: "appointment_api_unavailable", Message: "Appointment service unavailable."}
}

func logActionError(c *gin.Context, err error) {
	log := zerolog.Ctx(c.Request.Context())

	var be httperr.BusinessError
	if errors.As(err, &be) {
		log.Debug().Str("code", be.Code).Str("path", c.FullPath()).Msg("form action refused")
		return
	}
	if _, ok := repository.RejectionMessage(err); ok {
		log.Info().Err(err).Str("path", c.FullPath()).Msg("appointment api rejected request")
		return
	}
	log.Warn().Err(err).Str("path", c.FullPath()).Msg("appointment api call failed")
}
