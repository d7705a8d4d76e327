package controllers

import (
	"net/http"
	"strconv"

	"github.com/c14220110/clinic-portal/internal/common/layout"
	"github.com/c14220110/clinic-portal/internal/common/middlewares"
	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/staff/services"
	"github.com/c14220110/clinic-portal/pkg/utils"
	"github.com/labstack/echo/v4"
)

func page(c echo.Context, message string, data interface{}) error {
	return utils.Page(c, message, middlewares.Shell(c, layout.AreaStaff), data)
}

// paramID membaca :id positif.
func paramID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	return id, err == nil && id > 0
}

// bindValid bind + validate; false berarti response 400 sudah dikirim.
func bindValid(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, utils.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return false, utils.BadRequest(c, utils.ValidationMessage(err))
	}
	return true, nil
}

type StaffController struct {
	Service *services.StaffService
}

func NewStaffController(service *services.StaffService) *StaffController {
	return &StaffController{Service: service}
}

// Dashboard GET /dashboard
func (sc *StaffController) Dashboard(c echo.Context) error {
	data := sc.Service.Dashboard(c.Request().Context(), middlewares.SessionContext(c))
	return page(c, "Staff dashboard", data)
}

// Overview GET /dashboard/overview
func (sc *StaffController) Overview(c echo.Context) error {
	data := sc.Service.Overview(c.Request().Context(), middlewares.SessionContext(c))
	return page(c, "Overview", data)
}

// Patients GET /dashboard/patients?q=&status=
func (sc *StaffController) Patients(c echo.Context) error {
	var viewer models.User
	if sess := middlewares.CurrentSession(c); sess != nil {
		viewer = sess.User
	}
	data := sc.Service.Patients(c.Request().Context(), middlewares.SessionContext(c), viewer,
		c.QueryParam("q"), c.QueryParam("status"))
	return page(c, "Patients", data)
}

// Records GET /dashboard/records?q=
func (sc *StaffController) Records(c echo.Context) error {
	data := sc.Service.Records(c.Request().Context(), middlewares.SessionContext(c), c.QueryParam("q"))
	return page(c, "Medical records", data)
}

// Record GET /dashboard/records/:id
func (sc *StaffController) Record(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "Invalid record id")
	}
	data := sc.Service.Record(c.Request().Context(), middlewares.SessionContext(c), id)
	return page(c, "Medical record", data)
}

// CreateRecord POST /dashboard/records
func (sc *StaffController) CreateRecord(c echo.Context) error {
	var req models.MedicalRecordCreate
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	ctx, tokens := c.Request().Context(), middlewares.SessionContext(c)
	record, err := sc.Service.CreateRecord(ctx, tokens, req)
	if err != nil {
		return utils.ActionFailed(c, err, "Failed to save medical record")
	}
	return utils.JSON(c, http.StatusCreated, "Medical record saved", map[string]interface{}{
		"record": record,
		"page":   sc.Service.Records(ctx, tokens, ""),
	})
}

// Doctor GET /dashboard/doctor?q=
func (sc *StaffController) Doctor(c echo.Context) error {
	data := sc.Service.Doctor(c.Request().Context(), middlewares.SessionContext(c), c.QueryParam("q"))
	return page(c, "Doctor workspace", data)
}

// Nurse GET /dashboard/nurse
func (sc *StaffController) Nurse(c echo.Context) error {
	data := sc.Service.Nurse(c.Request().Context(), middlewares.SessionContext(c))
	return page(c, "Nurse station", data)
}

// RecordVitals POST /dashboard/nurse/vitals
func (sc *StaffController) RecordVitals(c echo.Context) error {
	var req models.VitalsCreate
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	ctx, tokens := c.Request().Context(), middlewares.SessionContext(c)
	vitals, err := sc.Service.RecordVitals(ctx, tokens, req)
	if err != nil {
		return utils.ActionFailed(c, err, "Failed to record vitals")
	}
	return utils.JSON(c, http.StatusCreated, "Vitals recorded", map[string]interface{}{
		"vitals": vitals,
		"page":   sc.Service.Nurse(ctx, tokens),
	})
}

// Referrals GET /dashboard/referrals
func (sc *StaffController) Referrals(c echo.Context) error {
	data := sc.Service.Referrals(c.Request().Context(), middlewares.SessionContext(c))
	return page(c, "Referrals", data)
}

// CreateReferral POST /dashboard/referrals
func (sc *StaffController) CreateReferral(c echo.Context) error {
	var req models.ReferralCreate
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	ctx, tokens := c.Request().Context(), middlewares.SessionContext(c)
	ref, err := sc.Service.CreateReferral(ctx, tokens, req)
	if err != nil {
		return utils.ActionFailed(c, err, "Failed to create referral")
	}
	return utils.JSON(c, http.StatusCreated, "Referral created", map[string]interface{}{
		"referral": ref,
		"page":     sc.Service.Referrals(ctx, tokens),
	})
}

// AcceptReferral POST /dashboard/referrals/:id/accept
func (sc *StaffController) AcceptReferral(c echo.Context) error {
	return sc.respondReferral(c, true)
}

// RejectReferral POST /dashboard/referrals/:id/reject
func (sc *StaffController) RejectReferral(c echo.Context) error {
	return sc.respondReferral(c, false)
}

func (sc *StaffController) respondReferral(c echo.Context, accept bool) error {
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "Invalid referral id")
	}

	ctx, tokens := c.Request().Context(), middlewares.SessionContext(c)
	ref, err := sc.Service.RespondReferral(ctx, tokens, id, accept)
	if err != nil {
		return utils.ActionFailed(c, err, "Failed to update referral")
	}
	message := "Referral rejected"
	if accept {
		message = "Referral accepted"
	}
	return utils.JSON(c, http.StatusOK, message, map[string]interface{}{
		"referral": ref,
		"page":     sc.Service.Referrals(ctx, tokens),
	})
}

// Attendance GET /dashboard/attendance
func (sc *StaffController) Attendance(c echo.Context) error {
	data := sc.Service.Attendance(c.Request().Context(), middlewares.SessionContext(c))
	return page(c, "Attendance", data)
}

// CheckIn POST /dashboard/attendance/check-in
func (sc *StaffController) CheckIn(c echo.Context) error {
	return sc.clock(c, true)
}

// CheckOut POST /dashboard/attendance/check-out
func (sc *StaffController) CheckOut(c echo.Context) error {
	return sc.clock(c, false)
}

func (sc *StaffController) clock(c echo.Context, in bool) error {
	ctx, tokens := c.Request().Context(), middlewares.SessionContext(c)
	log, err := sc.Service.Clock(ctx, tokens, in)
	if err != nil {
		if in {
			return utils.ActionFailed(c, err, "Check-in failed")
		}
		return utils.ActionFailed(c, err, "Check-out failed")
	}
	message := "Checked out"
	if in {
		message = "Checked in"
	}
	return utils.JSON(c, http.StatusOK, message, map[string]interface{}{
		"attendance": log,
		"page":       sc.Service.Attendance(ctx, tokens),
	})
}
