package controllers

import (
	"net/http"
	"strconv"

	"github.com/c14220110/clinic-portal/internal/common/layout"
	"github.com/c14220110/clinic-portal/internal/common/middlewares"
	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/patient/services"
	"github.com/c14220110/clinic-portal/pkg/utils"
	"github.com/labstack/echo/v4"
)

// PatientController halaman-halaman area pasien.
type PatientController struct {
	Service *services.PatientService
}

func NewPatientController(service *services.PatientService) *PatientController {
	return &PatientController{Service: service}
}

func (pc *PatientController) page(c echo.Context, message string, data interface{}) error {
	return utils.Page(c, message, middlewares.Shell(c, layout.AreaPatient), data)
}

// Dashboard GET /dashboard/patient
func (pc *PatientController) Dashboard(c echo.Context) error {
	data := pc.Service.Dashboard(c.Request().Context(), middlewares.SessionContext(c))
	return pc.page(c, "Patient dashboard", data)
}

// Appointments GET /dashboard/patient/appointments
func (pc *PatientController) Appointments(c echo.Context) error {
	data := pc.Service.Appointments(c.Request().Context(), middlewares.SessionContext(c))
	return pc.page(c, "Appointments", data)
}

// BookAppointment POST /dashboard/patient/appointments
func (pc *PatientController) BookAppointment(c echo.Context) error {
	var req models.AppointmentCreate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequest(c, utils.ValidationMessage(err))
	}

	ctx, tokens := c.Request().Context(), middlewares.SessionContext(c)
	appt, err := pc.Service.BookAppointment(ctx, tokens, req)
	if err != nil {
		return utils.ActionFailed(c, err, "Failed to book appointment")
	}
	return utils.JSON(c, http.StatusCreated, "Appointment booked", map[string]interface{}{
		"appointment": appt,
		"page":        pc.Service.Appointments(ctx, tokens),
	})
}

// Records GET /dashboard/patient/records
func (pc *PatientController) Records(c echo.Context) error {
	data := pc.Service.Records(c.Request().Context(), middlewares.SessionContext(c))
	return pc.page(c, "Medical records", data)
}

// Consultation GET /dashboard/patient/records/:id
func (pc *PatientController) Consultation(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return utils.BadRequest(c, "Invalid consultation id")
	}
	data := pc.Service.Consultation(c.Request().Context(), middlewares.SessionContext(c), id)
	return pc.page(c, "Consultation", data)
}

// Visits GET /dashboard/patient/records/visits
func (pc *PatientController) Visits(c echo.Context) error {
	data := pc.Service.Visits(c.Request().Context(), middlewares.SessionContext(c))
	return pc.page(c, "Visit history", data)
}

// Prescriptions GET /dashboard/patient/records/prescriptions?q=
func (pc *PatientController) Prescriptions(c echo.Context) error {
	data := pc.Service.Prescriptions(c.Request().Context(), middlewares.SessionContext(c), c.QueryParam("q"))
	return pc.page(c, "Prescriptions", data)
}

// Labs GET /dashboard/patient/records/labs
func (pc *PatientController) Labs(c echo.Context) error {
	data := pc.Service.Labs(c.Request().Context(), middlewares.SessionContext(c))
	return pc.page(c, "Lab results", data)
}

// Vitals GET /dashboard/patient/vitals
func (pc *PatientController) Vitals(c echo.Context) error {
	data := pc.Service.Vitals(c.Request().Context(), middlewares.SessionContext(c))
	return pc.page(c, "Vitals & health", data)
}

// Messages GET /dashboard/patient/messages
func (pc *PatientController) Messages(c echo.Context) error {
	data := pc.Service.Messages(c.Request().Context(), middlewares.SessionContext(c))
	return pc.page(c, "Messages", data)
}
