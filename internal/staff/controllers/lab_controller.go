package controllers

import (
	"net/http"

	"github.com/c14220110/clinic-portal/internal/common/middlewares"
	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/staff/services"
	"github.com/c14220110/clinic-portal/pkg/utils"
	"github.com/labstack/echo/v4"
)

type LabController struct {
	Service *services.LabService
}

func NewLabController(service *services.LabService) *LabController {
	return &LabController{Service: service}
}

// Requests GET /dashboard/laboratory
func (lc *LabController) Requests(c echo.Context) error {
	data := lc.Service.Requests(c.Request().Context(), middlewares.SessionContext(c))
	return page(c, "Laboratory", data)
}

// Order POST /dashboard/laboratory
func (lc *LabController) Order(c echo.Context) error {
	var req models.LabResultCreate
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	ctx, tokens := c.Request().Context(), middlewares.SessionContext(c)
	result, err := lc.Service.Order(ctx, tokens, req)
	if err != nil {
		return utils.ActionFailed(c, err, "Failed to create lab request")
	}
	return utils.JSON(c, http.StatusCreated, "Lab request created", map[string]interface{}{
		"result": result,
		"page":   lc.Service.Requests(ctx, tokens),
	})
}

// Record PUT /dashboard/laboratory/:id
func (lc *LabController) Record(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "Invalid lab request id")
	}
	var req models.LabResultUpdate
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	ctx, tokens := c.Request().Context(), middlewares.SessionContext(c)
	result, err := lc.Service.Record(ctx, tokens, id, req)
	if err != nil {
		return utils.ActionFailed(c, err, "Failed to save lab result")
	}
	return utils.JSON(c, http.StatusOK, "Lab result saved", map[string]interface{}{
		"result": result,
		"page":   lc.Service.Requests(ctx, tokens),
	})
}
