package services

import (
	"context"
	"time"

	"github.com/c14220110/clinic-portal/internal/apiclient"
	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/pagefetch"
	staffModels "github.com/c14220110/clinic-portal/internal/staff/models"
	"go.uber.org/zap"
)

// StaffService memuat halaman umum area staf.
type StaffService struct {
	API *apiclient.Client
	Log *zap.Logger
	Now func() time.Time
}

func NewStaffService(api *apiclient.Client, logger *zap.Logger) *StaffService {
	return &StaffService{API: api, Log: logger, Now: time.Now}
}

// Dashboard memuat stats, appointments, dan me bersamaan.
func (s *StaffService) Dashboard(ctx context.Context, tokens apiclient.TokenSource) staffModels.DashboardPage {
	api := s.API.WithTokens(tokens)
	var page staffModels.DashboardPage

	g := pagefetch.New(s.Log)
	g.Go("stats", func() (err error) {
		page.Stats, err = api.GetDashboardStats(ctx)
		return err
	})
	g.Go("appointments", func() (err error) {
		page.Appointments, err = api.GetMyAppointments(ctx)
		return err
	})
	g.Go("me", func() (err error) {
		page.Me, err = api.GetMe(ctx)
		return err
	})
	page.Failed = g.Wait()
	page.Tiles = staffModels.StatTiles(page.Stats)
	return page
}

func (s *StaffService) Overview(ctx context.Context, tokens apiclient.TokenSource) staffModels.OverviewPage {
	api := s.API.WithTokens(tokens)
	var page staffModels.OverviewPage

	g := pagefetch.New(s.Log)
	g.Go("stats", func() (err error) {
		page.Stats, err = api.GetDashboardStats(ctx)
		return err
	})
	page.Failed = g.Wait()
	page.Tiles = staffModels.StatTiles(page.Stats)
	return page
}

// Patients: dokter melihat pasiennya sendiri, role lain melihat semua pasien.
func (s *StaffService) Patients(ctx context.Context, tokens apiclient.TokenSource, viewer models.User, query, status string) staffModels.PatientsPage {
	api := s.API.WithTokens(tokens)
	page := staffModels.PatientsPage{Query: query, Status: status}

	var all []models.PatientSummary
	g := pagefetch.New(s.Log)
	if viewer.HasRole(models.RoleDoctor) {
		g.Go("my_patients", func() (err error) {
			all, err = api.GetMyPatients(ctx)
			return err
		})
	} else {
		g.Go("patients", func() (err error) {
			all, err = api.GetPatients(ctx)
			return err
		})
	}
	page.Failed = g.Wait()

	page.Total = len(all)
	page.Active, page.FollowUp = staffModels.CountPatients(all)
	page.Patients = staffModels.FilterPatients(all, query, status)
	return page
}

func (s *StaffService) Records(ctx context.Context, tokens apiclient.TokenSource, query string) staffModels.RecordsPage {
	api := s.API.WithTokens(tokens)
	page := staffModels.RecordsPage{Query: query}

	var all []models.MedicalRecord
	g := pagefetch.New(s.Log)
	g.Go("medical_records", func() (err error) {
		all, err = api.GetMedicalRecords(ctx)
		return err
	})
	page.Failed = g.Wait()
	page.Records = staffModels.FilterRecords(all, query)
	return page
}

func (s *StaffService) Record(ctx context.Context, tokens apiclient.TokenSource, id int) staffModels.RecordPage {
	api := s.API.WithTokens(tokens)
	var page staffModels.RecordPage

	g := pagefetch.New(s.Log)
	g.Go("medical_record", func() (err error) {
		page.Record, err = api.GetMedicalRecord(ctx, id)
		return err
	})
	page.Failed = g.Wait()
	return page
}

func (s *StaffService) CreateRecord(ctx context.Context, tokens apiclient.TokenSource, in models.MedicalRecordCreate) (*models.MedicalRecord, error) {
	if in.VisitDate == nil {
		now := s.Now()
		in.VisitDate = &now
	}
	return s.API.WithTokens(tokens).CreateMedicalRecord(ctx, in)
}

// Doctor janji temu mendatang milik dokter.
func (s *StaffService) Doctor(ctx context.Context, tokens apiclient.TokenSource, query string) staffModels.DoctorPage {
	api := s.API.WithTokens(tokens)
	page := staffModels.DoctorPage{Query: query}

	var all []models.Appointment
	g := pagefetch.New(s.Log)
	g.Go("appointments", func() (err error) {
		all, err = api.GetMyAppointments(ctx)
		return err
	})
	page.Failed = g.Wait()
	page.Upcoming = staffModels.UpcomingAppointments(all, s.Now(), query)
	return page
}

// Nurse antrean pasien yang menunggu pemeriksaan vitals.
func (s *StaffService) Nurse(ctx context.Context, tokens apiclient.TokenSource) staffModels.NursePage {
	api := s.API.WithTokens(tokens)
	var page staffModels.NursePage

	var all []models.Appointment
	g := pagefetch.New(s.Log)
	g.Go("appointments", func() (err error) {
		all, err = api.GetMyAppointments(ctx)
		return err
	})
	page.Failed = g.Wait()
	page.Queue = staffModels.WaitingForVitals(all)
	page.Waiting = len(page.Queue)
	return page
}

func (s *StaffService) RecordVitals(ctx context.Context, tokens apiclient.TokenSource, in models.VitalsCreate) (*models.Vitals, error) {
	return s.API.WithTokens(tokens).CreateVitals(ctx, in)
}

func (s *StaffService) Referrals(ctx context.Context, tokens apiclient.TokenSource) staffModels.ReferralsPage {
	api := s.API.WithTokens(tokens)
	var page staffModels.ReferralsPage

	g := pagefetch.New(s.Log)
	g.Go("referrals", func() (err error) {
		page.Received, err = api.GetReceivedReferrals(ctx)
		return err
	})
	page.Failed = g.Wait()
	page.Pending = staffModels.CountReferrals(page.Received)
	return page
}

func (s *StaffService) CreateReferral(ctx context.Context, tokens apiclient.TokenSource, in models.ReferralCreate) (*models.Referral, error) {
	if in.Urgency == "" {
		in.Urgency = "routine"
	}
	return s.API.WithTokens(tokens).CreateReferral(ctx, in)
}

// RespondReferral menerima (accept=true) atau menolak rujukan.
func (s *StaffService) RespondReferral(ctx context.Context, tokens apiclient.TokenSource, id int, accept bool) (*models.Referral, error) {
	api := s.API.WithTokens(tokens)
	if accept {
		return api.AcceptReferral(ctx, id)
	}
	return api.RejectReferral(ctx, id)
}

func (s *StaffService) Attendance(ctx context.Context, tokens apiclient.TokenSource) staffModels.AttendancePage {
	api := s.API.WithTokens(tokens)
	var page staffModels.AttendancePage

	g := pagefetch.New(s.Log)
	g.Go("attendance", func() (err error) {
		page.History, err = api.GetAttendanceHistory(ctx)
		return err
	})
	page.Failed = g.Wait()
	page.CheckedIn = staffModels.IsCheckedIn(page.History)
	return page
}

// Clock check-in (in=true) atau check-out.
func (s *StaffService) Clock(ctx context.Context, tokens apiclient.TokenSource, in bool) (*models.AttendanceLog, error) {
	api := s.API.WithTokens(tokens)
	if in {
		return api.CheckIn(ctx)
	}
	return api.CheckOut(ctx)
}
