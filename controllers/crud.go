package controllers

import (
	"context"
	"errors"
	"net/http"

	"fitmanager-backend/repositories"
	"fitmanager-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type crudService[T any, I any] interface {
	Create(ctx context.Context, in I) (T, error)
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, id string, in I) (T, error)
	Delete(ctx context.Context, id string) error
}

// CRUDController serves the five uniform endpoints of one entity.
type CRUDController[T any, I any] struct {
	svc    crudService[T, I]
	entity string // display name used in messages, e.g. "Customer"
	logger *zap.Logger
}

func newCRUDController[T any, I any](svc crudService[T, I], entity string, logger *zap.Logger) *CRUDController[T, I] {
	return &CRUDController[T, I]{svc: svc, entity: entity, logger: logger}
}

func (h *CRUDController[T, I]) Create(c *gin.Context) {
	var input I
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}

	entity, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *CRUDController[T, I]) List(c *gin.Context) {
	entities, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entities)
}

func (h *CRUDController[T, I]) Get(c *gin.Context) {
	entity, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

// Update replaces the whole entity; the body must be a complete create shape.
func (h *CRUDController[T, I]) Update(c *gin.Context) {
	var input I
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationError(c, err)
		return
	}

	entity, err := h.svc.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *CRUDController[T, I]) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": h.entity + " deleted successfully"})
}

func (h *CRUDController[T, I]) respondError(c *gin.Context, err error) {
	respondError(c, h.logger, h.entity, err)
}

// respondError maps service errors onto the HTTP taxonomy: not found is 404,
// anything else is logged and reported as a 500 without details.
func respondError(c *gin.Context, logger *zap.Logger, entity string, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		utils.RespondWithError(c, http.StatusNotFound, entity+" not found")
		return
	}
	_ = c.Error(err)
	logger.Error("Request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
}
