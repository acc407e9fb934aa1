package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
)

type StateHandler struct{}

func NewStateHandler() *StateHandler {
	return &StateHandler{}
}

func (h *StateHandler) Get(c *gin.Context) {
	st, ok := middleware.FormState(c)
	if !ok {
		httperr.Internal(c, "session_unavailable", "Session unavailable.")
		return
	}
	httpresp.OK(c, dto.NewFormStateDTO(st))
}
