package utils

import (
	"errors"
	"net/http"

	"github.com/c14220110/clinic-portal/internal/apiclient"
	"github.com/labstack/echo/v4"
)

// Response adalah envelope standar: { "status", "message", "layout", "data" }.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Layout  interface{} `json:"layout,omitempty"`
	Data    interface{} `json:"data"`
}

func JSON(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Response{Status: status, Message: message, Data: data})
}

// Page mengirim data halaman beserta shell layout area.
func Page(c echo.Context, message string, layout interface{}, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Status:  http.StatusOK,
		Message: message,
		Layout:  layout,
		Data:    data,
	})
}

func BadRequest(c echo.Context, message string) error {
	return JSON(c, http.StatusBadRequest, message, nil)
}

func Unauthorized(c echo.Context, message string) error {
	return JSON(c, http.StatusUnauthorized, message, nil)
}

// ActionFailed envelope untuk aksi yang gagal: detail dari backend bila ada,
// selain itu fallback. Status 4xx backend diteruskan, selain itu 502.
func ActionFailed(c echo.Context, err error, fallback string) error {
	status := http.StatusBadGateway
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		status = apiErr.StatusCode
	}
	return JSON(c, status, apiclient.ErrorDetail(err, fallback), nil)
}
