package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/c14220110/clinic-portal/internal/apiclient"
	authModels "github.com/c14220110/clinic-portal/internal/auth/models"
	"github.com/c14220110/clinic-portal/internal/common/guard"
	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/session"
	"github.com/c14220110/clinic-portal/pkg/utils"
	"go.uber.org/zap"
)

const (
	PatientHome = "/dashboard/patient"
	StaffHome   = "/dashboard"
)

var (
	// ErrInvalidCredentials login gagal karena alasan apa pun.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrPasswordMismatch konfirmasi password berbeda.
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// AuthService menangani login, logout, dan registrasi lewat backend.
type AuthService struct {
	API *apiclient.Client
	Log *zap.Logger
}

func NewAuthService(api *apiclient.Client, logger *zap.Logger) *AuthService {
	return &AuthService{API: api, Log: logger}
}

// HomeFor halaman awal sesuai role.
func HomeFor(role string) string {
	if (models.User{Role: role}).HasRole(models.RolePatient) {
		return PatientHome
	}
	return StaffHome
}

// Login: token disimpan dulu, lalu profil /users/me, lalu keduanya menjadi sesi.
// Bila salah satu langkah gagal storage dikosongkan.
func (s *AuthService) Login(ctx context.Context, sc *session.Context, email, password string) (*authModels.LoginResult, error) {
	token, err := s.API.Login(ctx, email, password)
	if err != nil {
		s.Log.Info("login rejected", zap.String("email", email), zap.Error(err))
		return nil, ErrInvalidCredentials
	}

	if err := sc.SetToken(ctx, token.AccessToken); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}

	me, err := s.API.WithTokens(sc).GetMe(ctx)
	if err != nil {
		s.Log.Warn("login profile fetch failed", zap.String("email", email), zap.Error(err))
		_ = sc.End(ctx)
		return nil, ErrInvalidCredentials
	}
	if me.Role == "" {
		_ = sc.End(ctx)
		return nil, ErrInvalidCredentials
	}

	if err := sc.Begin(ctx, token.AccessToken, *me); err != nil {
		_ = sc.End(ctx)
		return nil, fmt.Errorf("begin session: %w", err)
	}
	s.Log.Info("session started",
		zap.Int("user_id", me.ID),
		zap.String("role", me.Role),
		zap.Duration("token_ttl", utils.TokenTTL(token.AccessToken, time.Now(), 0)),
	)
	return &authModels.LoginResult{Redirect: HomeFor(me.Role), User: *me}, nil
}

// Logout mengosongkan storage. Backend tidak dihubungi.
func (s *AuthService) Logout(ctx context.Context, sc *session.Context) error {
	return sc.End(ctx)
}

// CurrentPage dipakai GET /login: sesi yang masih valid diarahkan ke home.
func (s *AuthService) CurrentPage(ctx context.Context, sc *session.Context) authModels.LoginPage {
	sess, err := sc.Load(ctx)
	if err != nil || !guard.RoleAllowed(sess.User.Role, guard.AnyRole()) {
		return authModels.LoginPage{}
	}
	return authModels.LoginPage{SignedIn: true, Redirect: HomeFor(sess.User.Role)}
}

// Register mendaftarkan akun pasien.
func (s *AuthService) Register(ctx context.Context, req authModels.RegisterRequest) (*models.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	return s.API.Register(ctx, models.UserCreate{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     models.RolePatient,
	})
}
