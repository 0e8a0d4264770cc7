package controllers

import (
	"net/http"

	"fitmanager-backend/models"
	"fitmanager-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentController struct {
	*CRUDController[models.Payment, models.PaymentCreate]
	svc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService, logger *zap.Logger) *PaymentController {
	return &PaymentController{
		CRUDController: newCRUDController[models.Payment, models.PaymentCreate](svc, "Payment", logger),
		svc:            svc,
	}
}

func (h *PaymentController) ListByCustomerPackage(c *gin.Context) {
	payments, err := h.svc.ListByCustomerPackage(c.Request.Context(), c.Param("customerPackageId"))
	if err != nil {
		respondError(c, h.logger, "Customer package", err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
