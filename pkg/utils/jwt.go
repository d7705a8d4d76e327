package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenClaims adalah klaim access token yang diterbitkan backend klinik.
// Portal tidak memegang secret backend, jadi token hanya dibaca, tidak diverifikasi.
type TokenClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenInfo ringkasan token untuk keperluan sesi.
type TokenInfo struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

var ErrTokenUnreadable = errors.New("access token cannot be decoded")

// InspectToken membaca klaim token tanpa memeriksa tanda tangan.
func InspectToken(tokenString string) (*TokenInfo, error) {
	claims := &TokenClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenUnreadable, err)
	}

	info := &TokenInfo{Subject: claims.Subject, Role: claims.Role}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

// TokenTTL menghitung sisa umur token terhadap now; fallback dipakai bila token
// tidak punya exp atau tidak terbaca.
func TokenTTL(tokenString string, now time.Time, fallback time.Duration) time.Duration {
	info, err := InspectToken(tokenString)
	if err != nil || info.ExpiresAt.IsZero() {
		return fallback
	}
	ttl := info.ExpiresAt.Sub(now)
	if ttl <= 0 {
		return fallback
	}
	return ttl
}

// SubjectID mengembalikan sub sebagai angka bila backend memakai id numerik.
func (t *TokenInfo) SubjectID() (int, bool) {
	n, err := strconv.Atoi(t.Subject)
	if err != nil {
		return 0, false
	}
	return n, true
}
