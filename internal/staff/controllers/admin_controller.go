package controllers

import (
	"net/http"

	"github.com/c14220110/clinic-portal/internal/common/middlewares"
	staffModels "github.com/c14220110/clinic-portal/internal/staff/models"
	"github.com/c14220110/clinic-portal/internal/staff/services"
	"github.com/c14220110/clinic-portal/pkg/utils"
	"github.com/labstack/echo/v4"
)

type AdminController struct {
	Service *services.AdminService
}

func NewAdminController(service *services.AdminService) *AdminController {
	return &AdminController{Service: service}
}

// Overview GET /dashboard/admin
func (ac *AdminController) Overview(c echo.Context) error {
	data := ac.Service.Overview(c.Request().Context(), middlewares.SessionContext(c))
	return page(c, "Administration", data)
}

// CreateUser POST /dashboard/admin/users
func (ac *AdminController) CreateUser(c echo.Context) error {
	var req staffModels.CreateUserRequest
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	user, err := ac.Service.CreateUser(c.Request().Context(), middlewares.SessionContext(c), req)
	if err != nil {
		return utils.ActionFailed(c, err, "Failed to create user")
	}
	return utils.JSON(c, http.StatusCreated, "User created", user)
}
