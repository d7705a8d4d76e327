package controllers

import (
	"strconv"

	"github.com/c14220110/clinic-portal/internal/common/layout"
	"github.com/c14220110/clinic-portal/internal/common/middlewares"
	"github.com/c14220110/clinic-portal/internal/pharmacy/services"
	"github.com/c14220110/clinic-portal/pkg/utils"
	"github.com/labstack/echo/v4"
)

type PharmacyController struct {
	Service *services.PharmacyService
}

func NewPharmacyController(service *services.PharmacyService) *PharmacyController {
	return &PharmacyController{Service: service}
}

// Dashboard GET /dashboard/pharmacy
func (pc *PharmacyController) Dashboard(c echo.Context) error {
	data := pc.Service.Dashboard(c.Request().Context(), middlewares.SessionContext(c))
	return utils.Page(c, "Pharmacy", middlewares.Shell(c, layout.AreaStaff), data)
}

// Inventory GET /dashboard/pharmacy/inventory?q=&category=
func (pc *PharmacyController) Inventory(c echo.Context) error {
	data := pc.Service.Inventory(c.Request().Context(), middlewares.SessionContext(c),
		c.QueryParam("q"), c.QueryParam("category"))
	return utils.Page(c, "Inventory", middlewares.Shell(c, layout.AreaStaff), data)
}

// Prescriptions GET /dashboard/pharmacy/prescriptions?status=
func (pc *PharmacyController) Prescriptions(c echo.Context) error {
	data := pc.Service.Prescriptions(c.Request().Context(), middlewares.SessionContext(c), c.QueryParam("status"))
	return utils.Page(c, "Prescription fulfillment", middlewares.Shell(c, layout.AreaStaff), data)
}

// Prescription GET /dashboard/pharmacy/prescriptions/:id
func (pc *PharmacyController) Prescription(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return utils.BadRequest(c, "Invalid prescription id")
	}
	data := pc.Service.Prescription(c.Request().Context(), middlewares.SessionContext(c), id)
	return utils.Page(c, "Prescription", middlewares.Shell(c, layout.AreaStaff), data)
}
