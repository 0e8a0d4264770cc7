package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string   `json:"name" binding:"required"`
	Price  *float64 `json:"price" binding:"required"`
	Date   string   `json:"date" binding:"required,datetime=2006-01-02"`
	Status string   `json:"status" binding:"omitempty,oneof=active expired"`
}

func bind(t *testing.T, body string) []FieldError {
	t.Helper()
	RegisterValidation()

	var fields []FieldError
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var in sample
		err := c.ShouldBindJSON(&in)
		require.Error(t, err)
		fields = ValidationErrors(err)
		RespondWithValidationError(c, err)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"Invalid input"`)
	return fields
}

func TestValidationErrorsUseJSONNames(t *testing.T) {
	fields := bind(t, `{"date":"15/01/2024","status":"frozen"}`)

	byField := map[string]string{}
	for _, f := range fields {
		byField[f.Field] = f.Message
	}
	assert.Equal(t, "is required", byField["name"])
	assert.Equal(t, "is required", byField["price"])
	assert.Equal(t, "must be a date in YYYY-MM-DD format", byField["date"])
	assert.Equal(t, "must be one of: active expired", byField["status"])
}

func TestValidationErrorsTypeMismatch(t *testing.T) {
	fields := bind(t, `{"name":"x","price":"cheap","date":"2024-01-01"}`)
	require.Len(t, fields, 1)
	assert.Equal(t, "price", fields[0].Field)
	assert.Equal(t, "must be of type number", fields[0].Message)
}

func TestValidationErrorsBody(t *testing.T) {
	assert.Equal(t, []FieldError{{Field: "body", Message: "malformed JSON"}}, bind(t, `{"name":`))
	assert.Equal(t, []FieldError{{Field: "body", Message: "request body is required"}}, bind(t, ``))
}
