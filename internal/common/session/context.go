package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/pkg/utils"
	"github.com/goccy/go-json"
)

var (
	// ErrNoSession token atau user tidak ada di storage.
	ErrNoSession = errors.New("no session in local storage")
	// ErrMalformedUser record user tidak bisa diparse atau tidak punya role.
	ErrMalformedUser = errors.New("stored user record is malformed")
)

// Session adalah pasangan {token, user} milik aktor yang sedang login.
type Session struct {
	Token     string
	User      models.User
	ExpiresAt time.Time
}

// UserID id user; bila record user tidak membawa id, dipakai sub token
// yang numerik. 0 berarti tidak diketahui.
func (s *Session) UserID() int {
	if s.User.ID > 0 {
		return s.User.ID
	}
	if info, err := utils.InspectToken(s.Token); err == nil {
		if id, ok := info.SubjectID(); ok {
			return id
		}
	}
	return 0
}

// Context satu-satunya pintu akses sesi ke local storage: Begin saat login,
// Load di setiap navigasi/request, End saat logout.
type Context struct {
	Storage LocalStorage
}

func NewContext(storage LocalStorage) *Context {
	return &Context{Storage: storage}
}

// Begin menyimpan token lalu record user (JSON) ke storage.
func (c *Context) Begin(ctx context.Context, token string, user models.User) error {
	if token == "" {
		return fmt.Errorf("begin session: empty token")
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("begin session: encode user: %w", err)
	}
	if err := c.Storage.SetItem(ctx, KeyToken, token); err != nil {
		return fmt.Errorf("begin session: store token: %w", err)
	}
	if err := c.Storage.SetItem(ctx, KeyUser, string(raw)); err != nil {
		return fmt.Errorf("begin session: store user: %w", err)
	}
	return nil
}

// Load membaca sesi. Mengembalikan ErrNoSession bila token/user kosong dan
// ErrMalformedUser bila record user rusak. Storage tidak diubah.
func (c *Context) Load(ctx context.Context) (*Session, error) {
	token, ok, err := c.Storage.GetItem(ctx, KeyToken)
	if err != nil {
		return nil, fmt.Errorf("load session token: %w", err)
	}
	if !ok || token == "" {
		return nil, ErrNoSession
	}
	rawUser, ok, err := c.Storage.GetItem(ctx, KeyUser)
	if err != nil {
		return nil, fmt.Errorf("load session user: %w", err)
	}
	if !ok || rawUser == "" {
		return nil, ErrNoSession
	}

	user, err := ParseUser(rawUser)
	if err != nil {
		return nil, err
	}

	s := &Session{Token: token, User: *user}
	if info, err := utils.InspectToken(token); err == nil {
		s.ExpiresAt = info.ExpiresAt
	}
	return s, nil
}

// End menghapus seluruh isi storage (logout).
func (c *Context) End(ctx context.Context) error {
	return c.Storage.Clear(ctx)
}

// Token dipakai API client sebagai sumber bearer token; string kosong
// berarti tidak ada token.
func (c *Context) Token(ctx context.Context) (string, error) {
	token, ok, err := c.Storage.GetItem(ctx, KeyToken)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

// SetToken menyimpan token saja; dipakai di antara login dan GET /users/me.
func (c *Context) SetToken(ctx context.Context, token string) error {
	return c.Storage.SetItem(ctx, KeyToken, token)
}

// ParseUser mengurai record user. Role yang tidak ada, null, atau bukan
// string membuat record dianggap rusak; role kosong tetap valid dan nanti
// ditolak guard.
func ParseUser(raw string) (*models.User, error) {
	var probe struct {
		Role *string `json:"role"`
	}
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedUser, err)
	}
	if probe.Role == nil {
		return nil, fmt.Errorf("%w: missing role", ErrMalformedUser)
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedUser, err)
	}
	return &user, nil
}
