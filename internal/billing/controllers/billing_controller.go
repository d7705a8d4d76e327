package controllers

import (
	"net/http"
	"strconv"

	billingModels "github.com/c14220110/clinic-portal/internal/billing/models"
	"github.com/c14220110/clinic-portal/internal/billing/services"
	"github.com/c14220110/clinic-portal/internal/common/layout"
	"github.com/c14220110/clinic-portal/internal/common/middlewares"
	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/pkg/utils"
	"github.com/labstack/echo/v4"
)

type BillingController struct {
	Service *services.BillingService
}

func NewBillingController(service *services.BillingService) *BillingController {
	return &BillingController{Service: service}
}

// Billing GET /dashboard/billing?q=&status=
func (bc *BillingController) Billing(c echo.Context) error {
	data := bc.Service.Page(c.Request().Context(), middlewares.SessionContext(c), c.QueryParam("q"), c.QueryParam("status"))
	return utils.Page(c, "Billing", middlewares.Shell(c, layout.AreaStaff), data)
}

// CreateInvoice POST /dashboard/billing/invoices
func (bc *BillingController) CreateInvoice(c echo.Context) error {
	var req models.InvoiceCreate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequest(c, utils.ValidationMessage(err))
	}

	ctx, tokens := c.Request().Context(), middlewares.SessionContext(c)
	inv, err := bc.Service.CreateInvoice(ctx, tokens, req)
	if err != nil {
		return utils.ActionFailed(c, err, "Failed to create invoice")
	}
	return utils.JSON(c, http.StatusCreated, "Invoice created", map[string]interface{}{
		"invoice": inv,
		"page":    bc.Service.Page(ctx, tokens, "", ""),
	})
}

// Pay POST /dashboard/billing/invoices/:id/pay
func (bc *BillingController) Pay(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return utils.BadRequest(c, "Invalid invoice id")
	}
	var req billingModels.PayRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequest(c, utils.ValidationMessage(err))
	}

	ctx, tokens := c.Request().Context(), middlewares.SessionContext(c)
	inv, err := bc.Service.Pay(ctx, tokens, id, req.PaymentMethod)
	if err != nil {
		return utils.ActionFailed(c, err, "Payment failed")
	}
	return utils.JSON(c, http.StatusOK, "Payment successful", map[string]interface{}{
		"invoice": inv,
		"page":    bc.Service.Page(ctx, tokens, "", ""),
	})
}
