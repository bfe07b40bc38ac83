package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	appcustomer "github.com/custdesk/backend/internal/application/customer"
	"github.com/custdesk/backend/internal/domain/shared"
)

// CustomerHandler handles customer API endpoints
type CustomerHandler struct {
	BaseHandler
	service *appcustomer.Service
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(service *appcustomer.Service) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// RegisterRoutes registers customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.ListCustomers)
		customers.POST("", h.CreateCustomer)
		customers.GET("/:id", h.GetCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
		customers.GET("/validate-tax-id/:taxId", h.ValidateTaxID)
	}
}

// ListCustomers godoc
// @ID           listCustomers
// @Summary      List all customers
// @Description  Returns all customers ordered by name
// @Tags         customers
// @Produce      json
// @Success      200 {object} dto.Response{data=[]customer.CustomerResponse}
// @Failure      500 {object} dto.Response
// @Router       /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err, "An error occurred while retrieving customers")
		return
	}

	h.OK(c, "Customers retrieved successfully", customers)
}

// GetCustomer godoc
// @ID           getCustomer
// @Summary      Get a customer by ID
// @Description  Returns a single customer
// @Tags         customers
// @Produce      json
// @Param        id path int true "Customer ID"
// @Success      200 {object} dto.Response{data=customer.CustomerResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}

	cust, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.NotFound(c, "Customer not found", fmt.Sprintf("Customer with ID %d does not exist", id))
			return
		}
		h.HandleError(c, err, "An error occurred while retrieving the customer")
		return
	}

	h.OK(c, "Customer retrieved successfully", cust)
}

// CreateCustomer godoc
// @ID           createCustomer
// @Summary      Create a customer
// @Description  Validates the customer against the host system and stores it
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customer body customer.CreateCustomerRequest true "Customer to create"
// @Success      201 {object} dto.Response{data=customer.CustomerResponse}
// @Failure      400 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req appcustomer.CreateCustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cust, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err, "An error occurred while creating the customer")
		return
	}

	h.Created(c, "Customer created successfully", cust)
}

// UpdateCustomer godoc
// @ID           updateCustomer
// @Summary      Update a customer
// @Description  Replaces a customer's fields; the host system is not consulted
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path int true "Customer ID"
// @Param        customer body customer.UpdateCustomerRequest true "New customer fields"
// @Success      200 {object} dto.Response{data=customer.CustomerResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}

	var req appcustomer.UpdateCustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cust, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if isNotFound(err) {
			h.NotFound(c, "Customer not found", fmt.Sprintf("Customer with ID %d does not exist", id))
			return
		}
		h.HandleError(c, err, "An error occurred while updating the customer")
		return
	}

	h.OK(c, "Customer updated successfully", cust)
}

// DeleteCustomer godoc
// @ID           deleteCustomer
// @Summary      Delete a customer
// @Description  Removes a customer by ID
// @Tags         customers
// @Produce      json
// @Param        id path int true "Customer ID"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			h.NotFound(c, "Customer not found", fmt.Sprintf("Customer with ID %d does not exist", id))
			return
		}
		h.HandleError(c, err, "An error occurred while deleting the customer")
		return
	}

	h.OK(c, "Customer deleted successfully", nil)
}

// ValidateTaxID godoc
// @ID           validateTaxID
// @Summary      Validate a tax ID
// @Description  Reports whether a tax ID is well-formed and whether it is already in use
// @Tags         customers
// @Produce      json
// @Param        taxId path string true "Tax ID"
// @Success      200 {object} dto.Response{data=customer.TaxIDValidationResponse}
// @Failure      500 {object} dto.Response
// @Router       /customers/validate-tax-id/{taxId} [get]
func (h *CustomerHandler) ValidateTaxID(c *gin.Context) {
	taxID := c.Param("taxId")

	result, err := h.service.ValidateTaxID(c.Request.Context(), taxID)
	if err != nil {
		h.HandleError(c, err, "An error occurred while validating Tax ID")
		return
	}

	h.OK(c, "Tax ID validation completed", result)
}

// customerID parses the id path parameter, responding with 400 on failure.
func (h *CustomerHandler) customerID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID", "Customer ID must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

func isNotFound(err error) bool {
	var domainErr *shared.DomainError
	return errors.As(err, &domainErr) && domainErr.Code == "NOT_FOUND"
}
