package controllers

import (
	"net/http"

	"fitmanager-backend/models"
	"fitmanager-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerPackageController struct {
	*CRUDController[models.CustomerPackage, models.CustomerPackageCreate]
	svc *services.CustomerPackageService
}

func NewCustomerPackageController(svc *services.CustomerPackageService, logger *zap.Logger) *CustomerPackageController {
	return &CustomerPackageController{
		CRUDController: newCRUDController[models.CustomerPackage, models.CustomerPackageCreate](svc, "Customer package", logger),
		svc:            svc,
	}
}

// ListByCustomer serves GET /customer-packages/customer/:customerId.
func (h *CustomerPackageController) ListByCustomer(c *gin.Context) {
	packages, err := h.svc.ListByCustomer(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		respondError(c, h.logger, "Customer", err)
		return
	}

	c.JSON(http.StatusOK, packages)
}
