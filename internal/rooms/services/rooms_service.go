package services

import (
	"context"

	"github.com/c14220110/clinic-portal/internal/apiclient"
	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/pagefetch"
	roomModels "github.com/c14220110/clinic-portal/internal/rooms/models"
	"go.uber.org/zap"
)

// RoomService bed rawat inap: daftar, tambah, admit, discharge.
type RoomService struct {
	API *apiclient.Client
	Log *zap.Logger
}

func NewRoomService(api *apiclient.Client, logger *zap.Logger) *RoomService {
	return &RoomService{API: api, Log: logger}
}

func (s *RoomService) Rooms(ctx context.Context, tokens apiclient.TokenSource, query, status string) roomModels.RoomsPage {
	api := s.API.WithTokens(tokens)
	page := roomModels.RoomsPage{Query: query, Status: status}

	var all []models.Bed
	g := pagefetch.New(s.Log)
	g.Go("beds", func() (err error) {
		all, err = api.GetBeds(ctx)
		return err
	})
	page.Failed = g.Wait()

	page.Stats = roomModels.ComputeStats(all)
	page.Tiles = roomModels.Tiles(page.Stats)
	page.Beds = roomModels.FilterBeds(all, query, status)
	return page
}

func (s *RoomService) CreateBed(ctx context.Context, tokens apiclient.TokenSource, in models.BedCreate) (*models.Bed, error) {
	if in.Status == "" {
		in.Status = models.BedAvailable
	}
	return s.API.WithTokens(tokens).CreateBed(ctx, in)
}

func (s *RoomService) Admit(ctx context.Context, tokens apiclient.TokenSource, bedID, patientID int) (*models.Bed, error) {
	bed, err := s.API.WithTokens(tokens).AdmitPatient(ctx, bedID, patientID)
	if err != nil {
		return nil, err
	}
	s.Log.Info("patient admitted", zap.Int("bed_id", bedID), zap.Int("patient_id", patientID))
	return bed, nil
}

func (s *RoomService) Discharge(ctx context.Context, tokens apiclient.TokenSource, bedID int) (*models.Bed, error) {
	bed, err := s.API.WithTokens(tokens).DischargePatient(ctx, bedID)
	if err != nil {
		return nil, err
	}
	s.Log.Info("patient discharged", zap.Int("bed_id", bedID))
	return bed, nil
}
