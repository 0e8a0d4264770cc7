package controllers

import (
	"fitmanager-backend/models"
	"fitmanager-backend/services"

	"go.uber.org/zap"
)

type PackageController struct {
	*CRUDController[models.Package, models.PackageCreate]
}

func NewPackageController(svc *services.PackageService, logger *zap.Logger) *PackageController {
	return &PackageController{newCRUDController[models.Package, models.PackageCreate](svc, "Package", logger)}
}
