package controllers

import (
	"net/http"

	"github.com/c14220110/clinic-portal/internal/common/middlewares"
	"github.com/c14220110/clinic-portal/internal/common/models"
	staffModels "github.com/c14220110/clinic-portal/internal/staff/models"
	"github.com/c14220110/clinic-portal/internal/staff/services"
	"github.com/c14220110/clinic-portal/pkg/utils"
	"github.com/labstack/echo/v4"
)

type ScheduleController struct {
	Service *services.ScheduleService
}

func NewScheduleController(service *services.ScheduleService) *ScheduleController {
	return &ScheduleController{Service: service}
}

func scheduleFilter(c echo.Context) staffModels.ScheduleFilter {
	return staffModels.ScheduleFilter{
		Status: c.QueryParam("status"),
		Query:  c.QueryParam("q"),
		Date:   c.QueryParam("date"),
	}
}

// Appointments GET /dashboard/schedule/appointments?status=&q=&date=
func (sc *ScheduleController) Appointments(c echo.Context) error {
	data := sc.Service.Schedule(c.Request().Context(), middlewares.SessionContext(c), scheduleFilter(c))
	return page(c, "Appointments", data)
}

// Create POST /dashboard/schedule/appointments
func (sc *ScheduleController) Create(c echo.Context) error {
	var req models.AppointmentCreate
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	ctx, tokens := c.Request().Context(), middlewares.SessionContext(c)
	appt, err := sc.Service.Create(ctx, tokens, req)
	if err != nil {
		return utils.ActionFailed(c, err, "Failed to create appointment")
	}
	return utils.JSON(c, http.StatusCreated, "Appointment created", map[string]interface{}{
		"appointment": appt,
		"page":        sc.Service.Schedule(ctx, tokens, staffModels.ScheduleFilter{}),
	})
}

// Update PUT /dashboard/schedule/appointments/:id
func (sc *ScheduleController) Update(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "Invalid appointment id")
	}
	var req models.AppointmentUpdate
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	ctx, tokens := c.Request().Context(), middlewares.SessionContext(c)
	appt, err := sc.Service.Update(ctx, tokens, id, req)
	if err != nil {
		return utils.ActionFailed(c, err, "Failed to update appointment")
	}
	return utils.JSON(c, http.StatusOK, "Appointment updated", map[string]interface{}{
		"appointment": appt,
		"page":        sc.Service.Schedule(ctx, tokens, scheduleFilter(c)),
	})
}
