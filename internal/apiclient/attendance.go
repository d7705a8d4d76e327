package apiclient

import (
	"context"

	"github.com/c14220110/clinic-portal/internal/common/models"
)

func (c *Client) CheckIn(ctx context.Context) (*models.AttendanceLog, error) {
	var out models.AttendanceLog
	if err := c.post(ctx, "/attendance/check-in", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CheckOut(ctx context.Context) (*models.AttendanceLog, error) {
	var out models.AttendanceLog
	if err := c.post(ctx, "/attendance/check-out", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetAttendanceHistory(ctx context.Context) ([]models.AttendanceLog, error) {
	var out []models.AttendanceLog
	if err := c.get(ctx, "/attendance/my-history", &out); err != nil {
		return nil, err
	}
	return out, nil
}
