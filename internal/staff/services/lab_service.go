package services

import (
	"context"

	"github.com/c14220110/clinic-portal/internal/apiclient"
	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/pagefetch"
	staffModels "github.com/c14220110/clinic-portal/internal/staff/models"
	"go.uber.org/zap"
)

// LabService daftar permintaan lab dan pengisian hasilnya.
type LabService struct {
	API *apiclient.Client
	Log *zap.Logger
}

func NewLabService(api *apiclient.Client, logger *zap.Logger) *LabService {
	return &LabService{API: api, Log: logger}
}

func (s *LabService) Requests(ctx context.Context, tokens apiclient.TokenSource) staffModels.LaboratoryPage {
	api := s.API.WithTokens(tokens)
	var page staffModels.LaboratoryPage

	g := pagefetch.New(s.Log)
	g.Go("lab_results", func() (err error) {
		page.Requests, err = api.GetLabResults(ctx)
		return err
	})
	page.Failed = g.Wait()
	page.Pending, page.Completed = staffModels.CountLabs(page.Requests)
	return page
}

// Order membuat permintaan lab baru dengan status pending.
func (s *LabService) Order(ctx context.Context, tokens apiclient.TokenSource, in models.LabResultCreate) (*models.LabResult, error) {
	if in.Status == "" {
		in.Status = models.LabPending
	}
	return s.API.WithTokens(tokens).CreateLabResult(ctx, in)
}

// Record mengisi hasil; status default completed bila hasil diisi.
func (s *LabService) Record(ctx context.Context, tokens apiclient.TokenSource, id int, in models.LabResultUpdate) (*models.LabResult, error) {
	if in.Status == "" && in.Result != "" {
		in.Status = models.LabCompleted
	}
	return s.API.WithTokens(tokens).UpdateLabResult(ctx, id, in)
}
