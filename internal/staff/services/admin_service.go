package services

import (
	"context"

	"github.com/c14220110/clinic-portal/internal/apiclient"
	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/pagefetch"
	staffModels "github.com/c14220110/clinic-portal/internal/staff/models"
	"go.uber.org/zap"
)

type AdminService struct {
	API *apiclient.Client
	Log *zap.Logger
}

func NewAdminService(api *apiclient.Client, logger *zap.Logger) *AdminService {
	return &AdminService{API: api, Log: logger}
}

func (s *AdminService) Overview(ctx context.Context, tokens apiclient.TokenSource) staffModels.AdminPage {
	api := s.API.WithTokens(tokens)
	var page staffModels.AdminPage

	g := pagefetch.New(s.Log)
	g.Go("stats", func() (err error) {
		page.Stats, err = api.GetDashboardStats(ctx)
		return err
	})
	page.Failed = g.Wait()
	page.Tiles = staffModels.StatTiles(page.Stats)
	return page
}

// CreateUser mendaftarkan akun dengan role pilihan admin.
func (s *AdminService) CreateUser(ctx context.Context, tokens apiclient.TokenSource, in staffModels.CreateUserRequest) (*models.User, error) {
	user, err := s.API.WithTokens(tokens).Register(ctx, models.UserCreate{
		Email:    in.Email,
		Password: in.Password,
		FullName: in.FullName,
		Role:     in.Role,
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info("user created", zap.Int("user_id", user.ID), zap.String("role", user.Role))
	return user, nil
}
