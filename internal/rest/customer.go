package rest

import (
	"context"
	"net/http"
	"time"

	"stayInsights/domain"
	"stayInsights/pkg/logger"

	"github.com/labstack/echo/v4"
)

type CustomerReader interface {
	FindAll(ctx context.Context, tenantID string) ([]domain.CustomerRecord, error)
	FindByID(ctx context.Context, tenantID, id string) (domain.CustomerRecord, error)
}

type CustomerHandler struct {
	customerRepo CustomerReader
	timeout      time.Duration
}

func NewCustomerHandler(customerRepo CustomerReader) *CustomerHandler {
	return &CustomerHandler{
		customerRepo: customerRepo,
		timeout:      10 * time.Second,
	}
}

func (h *CustomerHandler) GetAllCustomers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customers, err := h.customerRepo.FindAll(ctx, tenantFromContext(c))
	if err != nil {
		logger.Error("Failed to find all customers", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "successfully get all customers",
		"customers": customers,
	})
}

func (h *CustomerHandler) GetCustomerByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customer, err := h.customerRepo.FindByID(ctx, tenantFromContext(c), c.Param("id"))
	if err != nil {
		if err.Error() == "customer not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully find customer by id",
		"customer": customer,
	})
}
