// Package pagefetch menjalankan beberapa panggilan API independen untuk satu
// halaman secara bersamaan. Kegagalan satu panggilan hanya dicatat; field
// milik panggilan itu dibiarkan kosong dan halaman tetap dirender.
package pagefetch

import (
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Group struct {
	g   errgroup.Group
	log *zap.Logger

	mu     sync.Mutex
	failed []string
}

func New(logger *zap.Logger) *Group {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Group{log: logger}
}

// Go menjalankan fn di goroutine sendiri. name dipakai di log.
func (p *Group) Go(name string, fn func() error) {
	p.g.Go(func() error {
		err := fn()
		if err == nil {
			return nil
		}
		p.log.Error("page fetch failed", zap.String("fetch", name), zap.Error(err))
		p.mu.Lock()
		p.failed = append(p.failed, name)
		p.mu.Unlock()
		return err
	})
}

// Wait menunggu semua fetch selesai lalu mengembalikan nama fetch yang gagal,
// terurut.
func (p *Group) Wait() []string {
	_ = p.g.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	sort.Strings(p.failed)
	return p.failed
}
