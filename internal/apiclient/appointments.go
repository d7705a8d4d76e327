package apiclient

import (
	"context"
	"strconv"

	"github.com/c14220110/clinic-portal/internal/common/models"
)

func (c *Client) GetMyAppointments(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	if err := c.get(ctx, "/appointments/my-appointments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAppointment(ctx context.Context, in models.AppointmentCreate) (*models.Appointment, error) {
	var out models.Appointment
	if err := c.post(ctx, "/appointments/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id int, in models.AppointmentUpdate) (*models.Appointment, error) {
	var out models.Appointment
	if err := c.put(ctx, "/appointments/"+strconv.Itoa(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetAppointment(ctx context.Context, id int) (*models.Appointment, error) {
	var out models.Appointment
	if err := c.get(ctx, "/appointments/"+strconv.Itoa(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
