package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/c14220110/clinic-portal/internal/apiclient"
	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/pagefetch"
	staffModels "github.com/c14220110/clinic-portal/internal/staff/models"
	"go.uber.org/zap"
)

// ErrAppointmentUnavailable janji temu tidak bisa dimuat sebelum konsultasi disimpan.
var ErrAppointmentUnavailable = errors.New("appointment unavailable")

// ConsultationService antrean dan penyelesaian konsultasi dokter.
type ConsultationService struct {
	API *apiclient.Client
	Log *zap.Logger
}

func NewConsultationService(api *apiclient.Client, logger *zap.Logger) *ConsultationService {
	return &ConsultationService{API: api, Log: logger}
}

func (s *ConsultationService) Queue(ctx context.Context, tokens apiclient.TokenSource) staffModels.ConsultationsPage {
	api := s.API.WithTokens(tokens)
	var page staffModels.ConsultationsPage

	var all []models.Appointment
	g := pagefetch.New(s.Log)
	g.Go("appointments", func() (err error) {
		all, err = api.GetMyAppointments(ctx)
		return err
	})
	page.Failed = g.Wait()
	page.Queue = staffModels.ConsultationQueue(all)
	return page
}

// Detail memuat appointment, inventory, dan me bersamaan.
func (s *ConsultationService) Detail(ctx context.Context, tokens apiclient.TokenSource, appointmentID int) staffModels.ConsultationDetailPage {
	api := s.API.WithTokens(tokens)
	var page staffModels.ConsultationDetailPage

	g := pagefetch.New(s.Log)
	g.Go("appointment", func() (err error) {
		page.Appointment, err = api.GetAppointment(ctx, appointmentID)
		return err
	})
	g.Go("inventory", func() (err error) {
		page.Inventory, err = api.GetInventory(ctx)
		return err
	})
	g.Go("me", func() (err error) {
		page.Me, err = api.GetMe(ctx)
		return err
	})
	g.Go("existing_consultation", func() error {
		existing, err := api.GetConsultationByAppointment(ctx, appointmentID)
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return nil
		}
		page.Existing = existing
		return err
	})
	page.Failed = g.Wait()
	return page
}

// Complete menyimpan konsultasi lalu resep-resepnya secara berurutan.
// Resep yang gagal menghentikan proses; konsultasi yang sudah tersimpan tetap ada.
func (s *ConsultationService) Complete(ctx context.Context, tokens apiclient.TokenSource, appointmentID int, req staffModels.ConsultationRequest) (*staffModels.ConsultationResult, error) {
	api := s.API.WithTokens(tokens)

	appt, err := api.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	doctorID := appt.DoctorID
	if me, err := api.GetMe(ctx); err == nil && me.DoctorProfile != nil && me.DoctorProfile.ID > 0 {
		doctorID = me.DoctorProfile.ID
	}
	if appt.PatientID == 0 || doctorID == 0 {
		return nil, ErrAppointmentUnavailable
	}

	consultation, err := api.CreateConsultation(ctx, models.ConsultationCreate{
		AppointmentID: appointmentID,
		DoctorID:      doctorID,
		PatientID:     appt.PatientID,
		Symptoms:      req.Symptoms,
		Diagnosis:     req.Diagnosis,
		Notes:         req.Notes,
		FollowUpDate:  req.FollowUpDate,
		IsAdmitted:    req.IsAdmitted,
	})
	if err != nil {
		return nil, err
	}

	result := &staffModels.ConsultationResult{
		Consultation:  consultation,
		Prescriptions: make([]models.Prescription, 0, len(req.Prescriptions)),
		Redirect:      "/dashboard/schedule/appointments",
	}
	for i, item := range req.Prescriptions {
		consultationID := consultation.ID
		p, err := api.CreatePrescription(ctx, models.PrescriptionCreate{
			PatientID:      appt.PatientID,
			DoctorID:       doctorID,
			ConsultationID: &consultationID,
			Medication:     item.Medication,
			Dosage:         item.Dosage,
			Frequency:      item.Frequency,
			Duration:       item.Duration,
			Instructions:   item.Instructions,
		})
		if err != nil {
			s.Log.Error("prescription save failed",
				zap.Int("consultation_id", consultation.ID),
				zap.Int("item", i),
				zap.Error(err),
			)
			return result, fmt.Errorf("save prescription %d: %w", i+1, err)
		}
		result.Prescriptions = append(result.Prescriptions, *p)
	}
	return result, nil
}
