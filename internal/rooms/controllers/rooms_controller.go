package controllers

import (
	"net/http"
	"strconv"

	"github.com/c14220110/clinic-portal/internal/common/layout"
	"github.com/c14220110/clinic-portal/internal/common/middlewares"
	"github.com/c14220110/clinic-portal/internal/common/models"
	roomModels "github.com/c14220110/clinic-portal/internal/rooms/models"
	"github.com/c14220110/clinic-portal/internal/rooms/services"
	"github.com/c14220110/clinic-portal/pkg/utils"
	"github.com/labstack/echo/v4"
)

type RoomController struct {
	Service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{Service: service}
}

// Rooms GET /dashboard/rooms?q=&status=
func (rc *RoomController) Rooms(c echo.Context) error {
	data := rc.Service.Rooms(c.Request().Context(), middlewares.SessionContext(c), c.QueryParam("q"), c.QueryParam("status"))
	return utils.Page(c, "Rooms & beds", middlewares.Shell(c, layout.AreaStaff), data)
}

// CreateBed POST /dashboard/rooms
func (rc *RoomController) CreateBed(c echo.Context) error {
	var req models.BedCreate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequest(c, utils.ValidationMessage(err))
	}

	ctx, tokens := c.Request().Context(), middlewares.SessionContext(c)
	bed, err := rc.Service.CreateBed(ctx, tokens, req)
	if err != nil {
		return utils.ActionFailed(c, err, "Failed to create bed")
	}
	return utils.JSON(c, http.StatusCreated, "Bed created", map[string]interface{}{
		"bed":  bed,
		"page": rc.Service.Rooms(ctx, tokens, "", ""),
	})
}

// Admit POST /dashboard/rooms/:id/admit
func (rc *RoomController) Admit(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return utils.BadRequest(c, "Invalid bed id")
	}
	var req roomModels.AdmitRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequest(c, utils.ValidationMessage(err))
	}

	ctx, tokens := c.Request().Context(), middlewares.SessionContext(c)
	bed, err := rc.Service.Admit(ctx, tokens, id, req.PatientID)
	if err != nil {
		return utils.ActionFailed(c, err, "Failed to admit patient")
	}
	return utils.JSON(c, http.StatusOK, "Patient admitted", map[string]interface{}{
		"bed":  bed,
		"page": rc.Service.Rooms(ctx, tokens, "", ""),
	})
}

// Discharge POST /dashboard/rooms/:id/discharge
func (rc *RoomController) Discharge(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return utils.BadRequest(c, "Invalid bed id")
	}

	ctx, tokens := c.Request().Context(), middlewares.SessionContext(c)
	bed, err := rc.Service.Discharge(ctx, tokens, id)
	if err != nil {
		return utils.ActionFailed(c, err, "Failed to discharge patient")
	}
	return utils.JSON(c, http.StatusOK, "Patient discharged", map[string]interface{}{
		"bed":  bed,
		"page": rc.Service.Rooms(ctx, tokens, "", ""),
	})
}
