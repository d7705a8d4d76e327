package apiclient

import (
	"context"
	"strconv"

	"github.com/c14220110/clinic-portal/internal/common/models"
)

func (c *Client) GetPrescriptions(ctx context.Context) ([]models.Prescription, error) {
	var out []models.Prescription
	if err := c.get(ctx, "/prescriptions/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPrescription(ctx context.Context, id int) (*models.Prescription, error) {
	var out models.Prescription
	if err := c.get(ctx, "/prescriptions/"+strconv.Itoa(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePrescription(ctx context.Context, in models.PrescriptionCreate) (*models.Prescription, error) {
	var out models.Prescription
	if err := c.post(ctx, "/prescriptions/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetMedicalRecords(ctx context.Context) ([]models.MedicalRecord, error) {
	var out []models.MedicalRecord
	if err := c.get(ctx, "/medical-records/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMedicalRecord(ctx context.Context, id int) (*models.MedicalRecord, error) {
	var out models.MedicalRecord
	if err := c.get(ctx, "/medical-records/"+strconv.Itoa(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMedicalRecord(ctx context.Context, in models.MedicalRecordCreate) (*models.MedicalRecord, error) {
	var out models.MedicalRecord
	if err := c.post(ctx, "/medical-records/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetVitals(ctx context.Context) ([]models.Vitals, error) {
	var out []models.Vitals
	if err := c.get(ctx, "/vitals/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateVitals(ctx context.Context, in models.VitalsCreate) (*models.Vitals, error) {
	var out models.Vitals
	if err := c.post(ctx, "/vitals/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetLabResults(ctx context.Context) ([]models.LabResult, error) {
	var out []models.LabResult
	if err := c.get(ctx, "/labs/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateLabResult(ctx context.Context, in models.LabResultCreate) (*models.LabResult, error) {
	var out models.LabResult
	if err := c.post(ctx, "/labs/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateLabResult(ctx context.Context, id int, in models.LabResultUpdate) (*models.LabResult, error) {
	var out models.LabResult
	if err := c.put(ctx, "/labs/"+strconv.Itoa(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateConsultation(ctx context.Context, in models.ConsultationCreate) (*models.Consultation, error) {
	var out models.Consultation
	if err := c.post(ctx, "/consultations/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetConsultation(ctx context.Context, id int) (*models.Consultation, error) {
	var out models.Consultation
	if err := c.get(ctx, "/consultations/"+strconv.Itoa(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetConsultationByAppointment(ctx context.Context, appointmentID int) (*models.Consultation, error) {
	var out models.Consultation
	if err := c.get(ctx, "/consultations/appointment/"+strconv.Itoa(appointmentID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMyConsultationHistory riwayat konsultasi pasien pemilik token.
func (c *Client) GetMyConsultationHistory(ctx context.Context) ([]models.Consultation, error) {
	var out []models.Consultation
	if err := c.get(ctx, "/consultations/history/my", &out); err != nil {
		return nil, err
	}
	return out, nil
}
