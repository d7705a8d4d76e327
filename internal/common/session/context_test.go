package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_BeginLoadEnd(t *testing.T) {
	ctx := context.Background()
	sc := NewContext(NewLocalStorage(NewMemoryStore(), "ns"))

	_, err := sc.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	user := models.User{ID: 7, Email: "dr@clinic.test", FullName: "Dr. Ada", Role: "doctor"}
	require.NoError(t, sc.Begin(ctx, "tok-1", user))

	s, err := sc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", s.Token)
	assert.Equal(t, user.FullName, s.User.FullName)
	assert.Equal(t, "doctor", s.User.Role)

	token, err := sc.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	require.NoError(t, sc.End(ctx))
	_, err = sc.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	token, err = sc.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestContext_BeginRejectsEmptyToken(t *testing.T) {
	sc := NewContext(NewLocalStorage(NewMemoryStore(), "ns"))
	err := sc.Begin(context.Background(), "", models.User{Role: "admin"})
	assert.Error(t, err)
}

func TestParseUser(t *testing.T) {
	u, err := ParseUser(`{"role":"Admin","full_name":"Root","unknown":[1,2]}`)
	require.NoError(t, err)
	assert.Equal(t, "Admin", u.Role)
	assert.Equal(t, "Root", u.FullName)

	for _, raw := range []string{`[`, `null`, `{}`, `{"role":null}`, `{"role":7}`, `[]`} {
		_, err := ParseUser(raw)
		assert.True(t, errors.Is(err, ErrMalformedUser), raw)
	}

	for _, raw := range []string{`{"role":""}`, `{"role":"  "}`} {
		u, err := ParseUser(raw)
		require.NoError(t, err, raw)
		assert.Empty(t, strings.TrimSpace(u.Role))
	}
}

type failingStore struct{ MemoryStore }

func (f *failingStore) Get(context.Context, string, string) (string, bool, error) {
	return "", false, errors.New("store down")
}

func TestContext_LoadStorageError(t *testing.T) {
	sc := NewContext(NewLocalStorage(&failingStore{}, "ns"))
	_, err := sc.Load(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoSession))
	assert.False(t, errors.Is(err, ErrMalformedUser))
}

func TestSession_UserID(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "17"}).SignedString([]byte("k"))
	require.NoError(t, err)

	assert.Equal(t, 5, (&Session{Token: token, User: models.User{ID: 5}}).UserID())
	assert.Equal(t, 17, (&Session{Token: token, User: models.User{Role: "doctor"}}).UserID())
	assert.Equal(t, 0, (&Session{Token: "opaque", User: models.User{Role: "doctor"}}).UserID())
}
