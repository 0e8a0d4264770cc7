package controllers

import (
	"fitmanager-backend/models"
	"fitmanager-backend/services"

	"go.uber.org/zap"
)

type CustomerController struct {
	*CRUDController[models.Customer, models.CustomerCreate]
}

func NewCustomerController(svc *services.CustomerService, logger *zap.Logger) *CustomerController {
	return &CustomerController{newCRUDController[models.Customer, models.CustomerCreate](svc, "Customer", logger)}
}
