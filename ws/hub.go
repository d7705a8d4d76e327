package ws

// Hub bertanggung jawab untuk:
// - mencatat relay yang sedang hidup,
// - menutup semua relay saat server berhenti.

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Relay memasangkan satu socket browser dengan satu socket backend.
type Relay struct {
	Kind string

	browser  *websocket.Conn
	upstream *Notifier

	writeMu   sync.Mutex
	closeOnce sync.Once
	done      chan struct{}
}

func newRelay(kind string, browser *websocket.Conn) *Relay {
	return &Relay{Kind: kind, browser: browser, done: make(chan struct{})}
}

// writeBrowser menulis satu frame teks ke browser.
func (r *Relay) writeBrowser(data []byte) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()
	_ = r.browser.SetWriteDeadline(time.Now().Add(writeWait))
	return r.browser.WriteMessage(websocket.TextMessage, data)
}

// attach memasang socket backend. Bila relay sudah tertutup, socket
// backend langsung ditutup dan hasilnya false.
func (r *Relay) attach(n *Notifier) bool {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()
	select {
	case <-r.done:
		_ = n.Close()
		return false
	default:
		r.upstream = n
		return true
	}
}

// Close menutup kedua sisi. Aman dipanggil dari goroutine mana pun.
func (r *Relay) Close() {
	r.closeOnce.Do(func() {
		r.writeMu.Lock()
		up := r.upstream
		_ = r.browser.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeWait))
		close(r.done)
		r.writeMu.Unlock()

		if up != nil {
			_ = up.Close()
		}
		_ = r.browser.Close()
	})
}

// Done tertutup setelah Close.
func (r *Relay) Done() <-chan struct{} {
	return r.done
}

// Hub mengelola semua relay yang terhubung
type Hub struct {
	relays     map[*Relay]bool
	Register   chan *Relay
	Unregister chan *Relay
	count      chan chan int
	stopped    chan struct{}
	log        *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		relays:     make(map[*Relay]bool),
		Register:   make(chan *Relay),
		Unregister: make(chan *Relay),
		count:      make(chan chan int),
		stopped:    make(chan struct{}),
		log:        logger,
	}
}

// Run loop utama hub. Saat ctx selesai semua relay ditutup.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.stopped)
	for {
		select {
		case relay := <-h.Register:
			h.relays[relay] = true
			h.log.Debug("relay registered", zap.String("kind", relay.Kind), zap.Int("live", len(h.relays)))
		case relay := <-h.Unregister:
			if _, ok := h.relays[relay]; ok {
				delete(h.relays, relay)
				h.log.Debug("relay unregistered", zap.String("kind", relay.Kind), zap.Int("live", len(h.relays)))
			}
		case reply := <-h.count:
			reply <- len(h.relays)
		case <-ctx.Done():
			for relay := range h.relays {
				relay.Close()
				delete(h.relays, relay)
			}
			h.log.Info("hub stopped, all relays closed")
			return
		}
	}
}

// add mendaftarkan relay; false bila hub sudah berhenti.
func (h *Hub) add(r *Relay) bool {
	select {
	case h.Register <- r:
		return true
	case <-h.stopped:
		return false
	}
}

func (h *Hub) remove(r *Relay) {
	select {
	case h.Unregister <- r:
	case <-h.stopped:
	}
}

// Count jumlah relay yang hidup; 0 bila hub sudah berhenti.
func (h *Hub) Count() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.stopped:
		return 0
	}
}

// Stopped tertutup setelah Run selesai.
func (h *Hub) Stopped() <-chan struct{} {
	return h.stopped
}
