package services

import (
	"context"
	"time"

	"github.com/c14220110/clinic-portal/internal/apiclient"
	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/pagefetch"
	patientModels "github.com/c14220110/clinic-portal/internal/patient/models"
	"go.uber.org/zap"
)

// PatientService memuat data halaman area pasien.
type PatientService struct {
	API *apiclient.Client
	Log *zap.Logger
	Now func() time.Time
}

func NewPatientService(api *apiclient.Client, logger *zap.Logger) *PatientService {
	return &PatientService{API: api, Log: logger, Now: time.Now}
}

// Dashboard memuat me, appointments, dan medical records bersamaan.
func (s *PatientService) Dashboard(ctx context.Context, tokens apiclient.TokenSource) patientModels.DashboardPage {
	api := s.API.WithTokens(tokens)
	var page patientModels.DashboardPage

	g := pagefetch.New(s.Log)
	g.Go("me", func() (err error) {
		page.Me, err = api.GetMe(ctx)
		return err
	})
	g.Go("appointments", func() (err error) {
		page.Appointments, err = api.GetMyAppointments(ctx)
		return err
	})
	g.Go("medical_records", func() (err error) {
		page.MedicalRecords, err = api.GetMedicalRecords(ctx)
		return err
	})
	page.Failed = g.Wait()

	page.NextAppointment = patientModels.NextAppointment(page.Appointments, s.Now())
	return page
}

func (s *PatientService) Appointments(ctx context.Context, tokens apiclient.TokenSource) patientModels.AppointmentsPage {
	api := s.API.WithTokens(tokens)
	var page patientModels.AppointmentsPage

	g := pagefetch.New(s.Log)
	g.Go("appointments", func() (err error) {
		page.Appointments, err = api.GetMyAppointments(ctx)
		return err
	})
	page.Failed = g.Wait()
	page.Upcoming = patientModels.CountUpcoming(page.Appointments, s.Now())
	return page
}

// BookAppointment membuat janji temu baru.
func (s *PatientService) BookAppointment(ctx context.Context, tokens apiclient.TokenSource, in models.AppointmentCreate) (*models.Appointment, error) {
	if in.Type == "" {
		in.Type = models.AppointmentOffline
	}
	return s.API.WithTokens(tokens).CreateAppointment(ctx, in)
}

// Records riwayat konsultasi.
func (s *PatientService) Records(ctx context.Context, tokens apiclient.TokenSource) patientModels.RecordsPage {
	api := s.API.WithTokens(tokens)
	var page patientModels.RecordsPage

	g := pagefetch.New(s.Log)
	g.Go("consultations", func() (err error) {
		page.Consultations, err = api.GetMyConsultationHistory(ctx)
		return err
	})
	page.Failed = g.Wait()
	return page
}

func (s *PatientService) Consultation(ctx context.Context, tokens apiclient.TokenSource, id int) patientModels.ConsultationPage {
	api := s.API.WithTokens(tokens)
	var page patientModels.ConsultationPage

	g := pagefetch.New(s.Log)
	g.Go("consultation", func() (err error) {
		page.Consultation, err = api.GetConsultation(ctx, id)
		return err
	})
	page.Failed = g.Wait()
	return page
}

func (s *PatientService) Visits(ctx context.Context, tokens apiclient.TokenSource) patientModels.VisitsPage {
	api := s.API.WithTokens(tokens)
	var page patientModels.VisitsPage

	g := pagefetch.New(s.Log)
	g.Go("medical_records", func() (err error) {
		page.Visits, err = api.GetMedicalRecords(ctx)
		return err
	})
	page.Failed = g.Wait()
	return page
}

// Prescriptions daftar resep, disaring query di sisi portal.
func (s *PatientService) Prescriptions(ctx context.Context, tokens apiclient.TokenSource, query string) patientModels.PrescriptionsPage {
	api := s.API.WithTokens(tokens)
	page := patientModels.PrescriptionsPage{Query: query}

	var all []models.Prescription
	g := pagefetch.New(s.Log)
	g.Go("prescriptions", func() (err error) {
		all, err = api.GetPrescriptions(ctx)
		return err
	})
	page.Failed = g.Wait()

	page.Total = len(all)
	page.Prescriptions = patientModels.FilterPrescriptions(all, query)
	return page
}

func (s *PatientService) Labs(ctx context.Context, tokens apiclient.TokenSource) patientModels.LabsPage {
	api := s.API.WithTokens(tokens)
	var page patientModels.LabsPage

	g := pagefetch.New(s.Log)
	g.Go("labs", func() (err error) {
		page.LabResults, err = api.GetLabResults(ctx)
		return err
	})
	page.Failed = g.Wait()
	page.Pending, page.Completed = patientModels.CountLabs(page.LabResults)
	return page
}

// Vitals memuat riwayat vitals dan profil bersamaan.
func (s *PatientService) Vitals(ctx context.Context, tokens apiclient.TokenSource) patientModels.VitalsPage {
	api := s.API.WithTokens(tokens)
	var page patientModels.VitalsPage

	g := pagefetch.New(s.Log)
	g.Go("vitals", func() (err error) {
		page.Vitals, err = api.GetVitals(ctx)
		return err
	})
	g.Go("me", func() (err error) {
		page.Me, err = api.GetMe(ctx)
		return err
	})
	page.Failed = g.Wait()
	page.Latest = patientModels.LatestVitals(page.Vitals)
	return page
}

func (s *PatientService) Messages(ctx context.Context, tokens apiclient.TokenSource) patientModels.MessagesPage {
	api := s.API.WithTokens(tokens)
	var page patientModels.MessagesPage

	g := pagefetch.New(s.Log)
	g.Go("me", func() (err error) {
		page.Me, err = api.GetMe(ctx)
		return err
	})
	page.Failed = g.Wait()
	return page
}
