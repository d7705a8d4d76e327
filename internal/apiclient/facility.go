package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/c14220110/clinic-portal/internal/common/models"
)

func (c *Client) GetBeds(ctx context.Context) ([]models.Bed, error) {
	var out []models.Bed
	if err := c.get(ctx, "/beds/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBed(ctx context.Context, in models.BedCreate) (*models.Bed, error) {
	var out models.Bed
	if err := c.post(ctx, "/beds/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdmitPatient POST /beds/{id}/admit?patient_id=<patientID>.
func (c *Client) AdmitPatient(ctx context.Context, bedID, patientID int) (*models.Bed, error) {
	query := url.Values{}
	query.Set("patient_id", strconv.Itoa(patientID))

	var out models.Bed
	if err := c.send(ctx, http.MethodPost, fmt.Sprintf("/beds/%d/admit", bedID), query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DischargePatient(ctx context.Context, bedID int) (*models.Bed, error) {
	var out models.Bed
	if err := c.post(ctx, fmt.Sprintf("/beds/%d/discharge", bedID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateReferral(ctx context.Context, in models.ReferralCreate) (*models.Referral, error) {
	var out models.Referral
	if err := c.post(ctx, "/referrals/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReceivedReferrals rujukan yang ditujukan ke dokter pemilik token.
func (c *Client) GetReceivedReferrals(ctx context.Context) ([]models.Referral, error) {
	var out []models.Referral
	if err := c.get(ctx, "/referrals/received", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AcceptReferral(ctx context.Context, id int) (*models.Referral, error) {
	var out models.Referral
	if err := c.post(ctx, fmt.Sprintf("/referrals/%d/accept", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RejectReferral(ctx context.Context, id int) (*models.Referral, error) {
	var out models.Referral
	if err := c.post(ctx, fmt.Sprintf("/referrals/%d/reject", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
