package apiclient

import (
	"context"

	"github.com/c14220110/clinic-portal/internal/common/models"
)

func (c *Client) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := c.get(ctx, "/dashboard/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPatients seluruh pasien untuk tabel staf.
func (c *Client) GetPatients(ctx context.Context) ([]models.PatientSummary, error) {
	var out []models.PatientSummary
	if err := c.get(ctx, "/dashboard/patients", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMyPatients pasien yang pernah ditangani dokter pemilik token.
func (c *Client) GetMyPatients(ctx context.Context) ([]models.PatientSummary, error) {
	var out []models.PatientSummary
	if err := c.get(ctx, "/users/patients/my", &out); err != nil {
		return nil, err
	}
	return out, nil
}
