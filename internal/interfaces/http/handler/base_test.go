package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcustomer "github.com/custdesk/backend/internal/application/customer"
	"github.com/custdesk/backend/internal/domain/shared"
	"github.com/custdesk/backend/internal/interfaces/http/dto"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBaseHandler_HandleError(t *testing.T) {
	h := &BaseHandler{}

	t.Run("host validation rejection maps to 400 with violations", func(t *testing.T) {
		c, w := testContext(t)

		h.HandleError(c, &appcustomer.ValidationError{
			Message:    "Validation failed",
			Violations: []string{"Tax ID is required"},
		}, "An error occurred while creating the customer")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "Host validation failed", resp.Message)
		assert.Equal(t, "Validation failed", resp.Error)
		assert.Equal(t, []string{"Tax ID is required"}, resp.Errors)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		c, w := testContext(t)

		h.HandleError(c, shared.ErrNotFound, "fallback")

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decode(t, w)
		assert.Equal(t, "Customer not found", resp.Message)
	})

	t.Run("already exists maps to 400", func(t *testing.T) {
		c, w := testContext(t)

		h.HandleError(c, shared.NewDomainError("ALREADY_EXISTS", "A customer with this Tax ID already exists in the system"), "fallback")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode(t, w)
		assert.Equal(t, "Tax ID already exists", resp.Message)
		assert.Equal(t, "A customer with this Tax ID already exists in the system", resp.Error)
	})

	t.Run("invalid input maps to 400 with violation list", func(t *testing.T) {
		c, w := testContext(t)

		h.HandleError(c, shared.NewDomainError("INVALID_INPUT", "Customer name is required"), "fallback")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode(t, w)
		assert.Equal(t, "Validation failed", resp.Message)
		assert.Equal(t, []string{"Customer name is required"}, resp.Errors)
	})

	t.Run("unexpected error maps to 500 with fallback message", func(t *testing.T) {
		c, w := testContext(t)

		h.HandleError(c, errors.New("dial tcp: connection refused"), "An error occurred while retrieving customers")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decode(t, w)
		assert.Equal(t, "An error occurred while retrieving customers", resp.Message)
		assert.Equal(t, "dial tcp: connection refused", resp.Error)
	})
}

func TestBaseHandler_BindJSON_ViolationMessages(t *testing.T) {
	h := &BaseHandler{}
	c, w := testContext(t)
	c.Request = httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"name":"A","phone":"","email":"not-an-email","address":"abc","taxId":"12ab"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req appcustomer.CreateCustomerRequest
	ok := h.BindJSON(c, &req)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Contains(t, resp.Errors, "Name must be at least 2 characters")
	assert.Contains(t, resp.Errors, "Email must be a valid email address")
	assert.Contains(t, resp.Errors, "Address must be at least 5 characters")
	assert.Contains(t, resp.Errors, "Tax ID must be exactly 11 characters")
}
