package controllers

import (
	"net/http"

	"github.com/c14220110/clinic-portal/internal/common/middlewares"
	staffModels "github.com/c14220110/clinic-portal/internal/staff/models"
	"github.com/c14220110/clinic-portal/internal/staff/services"
	"github.com/c14220110/clinic-portal/pkg/utils"
	"github.com/labstack/echo/v4"
)

type ConsultationController struct {
	Service *services.ConsultationService
}

func NewConsultationController(service *services.ConsultationService) *ConsultationController {
	return &ConsultationController{Service: service}
}

// Queue GET /dashboard/consultations
func (cc *ConsultationController) Queue(c echo.Context) error {
	data := cc.Service.Queue(c.Request().Context(), middlewares.SessionContext(c))
	return page(c, "Consultations", data)
}

// Detail GET /dashboard/consultations/:id
func (cc *ConsultationController) Detail(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "Invalid appointment id")
	}
	data := cc.Service.Detail(c.Request().Context(), middlewares.SessionContext(c), id)
	return page(c, "Consultation", data)
}

// Complete POST /dashboard/consultations/:id
func (cc *ConsultationController) Complete(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "Invalid appointment id")
	}
	var req staffModels.ConsultationRequest
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	result, err := cc.Service.Complete(c.Request().Context(), middlewares.SessionContext(c), id, req)
	if err != nil {
		return utils.ActionFailed(c, err, "Failed to save consultation")
	}
	return utils.JSON(c, http.StatusCreated, "Consultation completed", result)
}
