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

// ScheduleService tabel janji temu untuk resepsionis dan dokter.
type ScheduleService struct {
	API      *apiclient.Client
	Log      *zap.Logger
	Location *time.Location
}

func NewScheduleService(api *apiclient.Client, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{API: api, Log: logger, Location: time.Local}
}

// Schedule memuat appointments dan patients bersamaan lalu menerapkan filter.
func (s *ScheduleService) Schedule(ctx context.Context, tokens apiclient.TokenSource, filter staffModels.ScheduleFilter) staffModels.SchedulePage {
	api := s.API.WithTokens(tokens)
	page := staffModels.SchedulePage{Filter: filter}

	var all []models.Appointment
	g := pagefetch.New(s.Log)
	g.Go("appointments", func() (err error) {
		all, err = api.GetMyAppointments(ctx)
		return err
	})
	g.Go("patients", func() (err error) {
		page.Patients, err = api.GetPatients(ctx)
		return err
	})
	page.Failed = g.Wait()

	page.Counts = staffModels.CountByStatus(all)
	page.Appointments = staffModels.FilterAppointments(all, filter, s.Location)
	return page
}

func (s *ScheduleService) Create(ctx context.Context, tokens apiclient.TokenSource, in models.AppointmentCreate) (*models.Appointment, error) {
	if in.Type == "" {
		in.Type = models.AppointmentOffline
	}
	return s.API.WithTokens(tokens).CreateAppointment(ctx, in)
}

func (s *ScheduleService) Update(ctx context.Context, tokens apiclient.TokenSource, id int, in models.AppointmentUpdate) (*models.Appointment, error) {
	return s.API.WithTokens(tokens).UpdateAppointment(ctx, id, in)
}
