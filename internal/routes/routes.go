package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/handlers"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-booking/internal/usecase/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/web"
)

// Deps are the long-lived collaborators built by main.
type Deps struct {
	Repo   domain.Repository
	Store  session.Store
	Audit  *audit.Dispatcher
	Logger zerolog.Logger
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	loc := timezone.Location(cfg.Timezone)
	r.SetHTMLTemplate(web.Templates(loc))

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	checkAppointmentUC := ucAppointment.NewCheckAppointment(
		deps.Repo,
		deps.Audit,
		loc,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		deps.Repo,
		deps.Audit,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		deps.Repo,
		deps.Audit,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		deps.Repo,
		deps.Audit,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	formWebHandler := handlers.NewFormWebHandler(
		checkAppointmentUC,
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
	)
	stateHandler := handlers.NewStateHandler()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "not_found", "Page not found.")
	})

	// ======================================================
	// 🍪 SESSION-BOUND ROUTES
	// ======================================================
	form := r.Group("/")
	form.Use(middleware.SessionMiddleware(middleware.SessionOptions{
		Codec:  session.NewCodec(cfg.SessionSecret),
		Store:  deps.Store,
		TTL:    cfg.SessionTTL,
		Secure: cfg.SessionCookieSecure,
	}))
	{
		form.GET("/", formWebHandler.Page)
		form.POST("/check", formWebHandler.Check)
		form.POST("/appointments/create", formWebHandler.Create)
		form.POST("/appointments/update", formWebHandler.Update)
		form.POST("/appointments/delete", formWebHandler.Delete)

		form.GET("/api/state", stateHandler.Get)
	}
}
