// Package session menyimpan sesi portal ({token, user}) dengan semantik
// localStorage: key/value string per namespace (satu namespace per browser
// atau per pengguna CLI).
package session

import (
	"context"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Key yang dipakai di local storage.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Store adalah backend penyimpanan key/value per namespace.
type Store interface {
	Get(ctx context.Context, ns, key string) (string, bool, error)
	Set(ctx context.Context, ns, key, value string) error
	Remove(ctx context.Context, ns, key string) error
	Clear(ctx context.Context, ns string) error
}

// LocalStorage adalah Store yang sudah terikat ke satu namespace.
type LocalStorage struct {
	store Store
	ns    string
}

func NewLocalStorage(store Store, ns string) LocalStorage {
	return LocalStorage{store: store, ns: ns}
}

func (l LocalStorage) Namespace() string {
	return l.ns
}

func (l LocalStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	return l.store.Get(ctx, l.ns, key)
}

func (l LocalStorage) SetItem(ctx context.Context, key, value string) error {
	return l.store.Set(ctx, l.ns, key, value)
}

func (l LocalStorage) RemoveItem(ctx context.Context, key string) error {
	return l.store.Remove(ctx, l.ns, key)
}

func (l LocalStorage) Clear(ctx context.Context) error {
	return l.store.Clear(ctx, l.ns)
}

// NamespaceFor menurunkan namespace penyimpanan dari nilai cookie sehingga
// isi store tidak memuat id cookie yang bisa dipakai ulang.
func NamespaceFor(cookieValue string) string {
	sum := blake2b.Sum256([]byte(cookieValue))
	return hex.EncodeToString(sum[:])
}
