package controllers

import (
	"net/http"

	"fitmanager-backend/models"
	"fitmanager-backend/services"
	"fitmanager-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AppointmentController struct {
	*CRUDController[models.Appointment, models.AppointmentCreate]
	svc *services.AppointmentService
}

func NewAppointmentController(svc *services.AppointmentService, logger *zap.Logger) *AppointmentController {
	return &AppointmentController{
		CRUDController: newCRUDController[models.Appointment, models.AppointmentCreate](svc, "Appointment", logger),
		svc:            svc,
	}
}

// ListByDate serves GET /appointments/date/:date.
func (h *AppointmentController) ListByDate(c *gin.Context) {
	date, ok := utils.ParseDateParam(c, "date")
	if !ok {
		return
	}

	appointments, err := h.svc.ListByDate(c.Request.Context(), date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}
