package controllers

import (
	"net/http"
	"strconv"

	"github.com/c14220110/clinic-portal/internal/common/layout"
	"github.com/c14220110/clinic-portal/internal/common/middlewares"
	"github.com/c14220110/clinic-portal/internal/common/models"
	patientModels "github.com/c14220110/clinic-portal/internal/patient/models"
	"github.com/c14220110/clinic-portal/internal/patient/services"
	"github.com/c14220110/clinic-portal/pkg/utils"
	"github.com/labstack/echo/v4"
)

// WalletController halaman wallet & billing pasien.
type WalletController struct {
	Service *services.WalletService
}

func NewWalletController(service *services.WalletService) *WalletController {
	return &WalletController{Service: service}
}

// Wallet GET /dashboard/patient/wallet
func (wc *WalletController) Wallet(c echo.Context) error {
	data := wc.Service.Wallet(c.Request().Context(), middlewares.SessionContext(c))
	return utils.Page(c, "Wallet & billing", middlewares.Shell(c, layout.AreaPatient), data)
}

// PayInvoice POST /dashboard/patient/wallet/invoices/:id/pay
func (wc *WalletController) PayInvoice(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return utils.BadRequest(c, "Invalid invoice id")
	}
	var req patientModels.PayInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequest(c, utils.ValidationMessage(err))
	}

	ctx, tokens := c.Request().Context(), middlewares.SessionContext(c)
	invoice, err := wc.Service.PayInvoice(ctx, tokens, id, req.PaymentMethod)
	if err != nil {
		return utils.ActionFailed(c, err, "Payment failed")
	}
	return utils.JSON(c, http.StatusOK, "Payment successful", map[string]interface{}{
		"invoice": invoice,
		"page":    wc.Service.Wallet(ctx, tokens),
	})
}

// Topup POST /dashboard/patient/wallet/topup
func (wc *WalletController) Topup(c echo.Context) error {
	var req models.WalletTopup
	if err := c.Bind(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequest(c, utils.ValidationMessage(err))
	}

	ctx, tokens := c.Request().Context(), middlewares.SessionContext(c)
	tx, err := wc.Service.Topup(ctx, tokens, req)
	if err != nil {
		return utils.ActionFailed(c, err, "Top-up failed")
	}
	return utils.JSON(c, http.StatusOK, "Top-up successful", map[string]interface{}{
		"transaction": tx,
		"page":        wc.Service.Wallet(ctx, tokens),
	})
}
