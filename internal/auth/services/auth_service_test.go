package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/c14220110/clinic-portal/internal/apiclient"
	authModels "github.com/c14220110/clinic-portal/internal/auth/models"
	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/session"
)

// backend: password "secret" menghasilkan token "tok"; meStatus mengatur /users/me.
func newService(t *testing.T, me models.User, meStatus int) (*AuthService, *[]string) {
	var registered []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login":
			_ = r.ParseForm()
			if r.PostForm.Get("password") != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"detail":"Incorrect username or password"}`))
				return
			}
			_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"bearer"}`))
		case "/users/me":
			if r.Header.Get("Authorization") != "Bearer tok" || meStatus != http.StatusOK {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"detail":"Not authenticated"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(me)
		case "/users/":
			var in models.UserCreate
			_ = json.NewDecoder(r.Body).Decode(&in)
			registered = append(registered, in.Role)
			if in.Email == "taken@clinic.test" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"detail":"Email already registered"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(models.User{ID: 9, Email: in.Email, Role: in.Role})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return NewAuthService(apiclient.New(srv.URL, zap.NewNop()), zap.NewNop()), &registered
}

func newSession() *session.Context {
	return session.NewContext(session.NewLocalStorage(session.NewMemoryStore(), "test"))
}

func TestHomeFor(t *testing.T) {
	assert.Equal(t, PatientHome, HomeFor("Patient"))
	assert.Equal(t, StaffHome, HomeFor("doctor"))
	assert.Equal(t, StaffHome, HomeFor("lab_tech"))
}

func TestLogin_StoresSession(t *testing.T) {
	svc, _ := newService(t, models.User{ID: 1, Role: "patient", FullName: "Budi"}, http.StatusOK)
	sc := newSession()
	ctx := context.Background()

	result, err := svc.Login(ctx, sc, "budi@clinic.test", "secret")
	require.NoError(t, err)
	assert.Equal(t, PatientHome, result.Redirect)

	sess, err := sc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", sess.Token)
	assert.Equal(t, "Budi", sess.User.FullName)

	page := svc.CurrentPage(ctx, sc)
	assert.True(t, page.SignedIn)
	assert.Equal(t, PatientHome, page.Redirect)

	require.NoError(t, svc.Logout(ctx, sc))
	assert.False(t, svc.CurrentPage(ctx, sc).SignedIn)
}

func TestCurrentPage_UnknownRoleNotSignedIn(t *testing.T) {
	svc, _ := newService(t, models.User{Role: "patient"}, http.StatusOK)
	sc := newSession()
	ctx := context.Background()
	require.NoError(t, sc.Storage.SetItem(ctx, session.KeyToken, "tok"))
	require.NoError(t, sc.Storage.SetItem(ctx, session.KeyUser, `{"role":""}`))

	assert.False(t, svc.CurrentPage(ctx, sc).SignedIn)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newService(t, models.User{Role: "patient"}, http.StatusOK)
	sc := newSession()

	_, err := svc.Login(context.Background(), sc, "budi@clinic.test", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = sc.Load(context.Background())
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestLogin_ProfileFailureClearsToken(t *testing.T) {
	svc, _ := newService(t, models.User{Role: "patient"}, http.StatusUnauthorized)
	sc := newSession()
	ctx := context.Background()

	_, err := svc.Login(ctx, sc, "budi@clinic.test", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	token, err := sc.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestLogin_MissingRoleRejected(t *testing.T) {
	svc, _ := newService(t, models.User{ID: 1}, http.StatusOK)
	_, err := svc.Login(context.Background(), newSession(), "budi@clinic.test", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister(t *testing.T) {
	svc, registered := newService(t, models.User{}, http.StatusOK)
	ctx := context.Background()

	_, err := svc.Register(ctx, authModels.RegisterRequest{
		FullName: "Siti", Email: "siti@clinic.test", Password: "secret1", ConfirmPassword: "other",
	})
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Empty(t, *registered)

	user, err := svc.Register(ctx, authModels.RegisterRequest{
		FullName: "Siti", Email: "siti@clinic.test", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RolePatient, user.Role)

	_, err = svc.Register(ctx, authModels.RegisterRequest{
		FullName: "X", Email: "taken@clinic.test", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.Error(t, err)
	assert.Equal(t, "Email already registered", apiclient.ErrorDetail(err, "Registration failed. Please try again."))
	assert.Equal(t, []string{"patient", "patient"}, *registered)
}
