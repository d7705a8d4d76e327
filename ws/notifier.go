package ws

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// Dialer dipakai Subscribe; handshake tidak membawa header Authorization.
var Dialer = websocket.DefaultDialer

// Message satu frame dari backend. JSON terisi hanya bila frame valid JSON.
type Message struct {
	Raw    []byte
	JSON   interface{}
	IsJSON bool
}

// Text isi frame sebagai string.
func (m Message) Text() string {
	return string(m.Raw)
}

// ParseMessage mencoba parse JSON dan jatuh ke teks mentah bila gagal.
func ParseMessage(data []byte) Message {
	m := Message{Raw: data}
	var v interface{}
	if err := json.Unmarshal(data, &v); err == nil {
		m.JSON = v
		m.IsJSON = true
	}
	return m
}

// Notifier satu koneksi websocket ke backend dengan satu read loop.
// Tidak ada reconnect; setelah Done tertutup pemanggil harus Subscribe ulang.
type Notifier struct {
	conn *websocket.Conn

	writeMu   sync.Mutex
	closeOnce sync.Once
	done      chan struct{}
	err       error
}

// Subscribe membuka socket ke url lalu meneruskan setiap frame ke onMessage
// sesuai urutan kedatangan. Koneksi ditutup saat ctx selesai atau Close dipanggil.
func Subscribe(ctx context.Context, url string, onMessage func(Message)) (*Notifier, error) {
	conn, _, err := Dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	n := &Notifier{conn: conn, done: make(chan struct{})}

	go n.readLoop(onMessage)
	go func() {
		select {
		case <-ctx.Done():
			n.Close()
		case <-n.done:
		}
	}()
	return n, nil
}

func (n *Notifier) readLoop(onMessage func(Message)) {
	defer close(n.done)
	for {
		_, data, err := n.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				n.err = err
			}
			n.conn.Close()
			return
		}
		if onMessage != nil {
			onMessage(ParseMessage(data))
		}
	}
}

// Done tertutup ketika read loop berhenti.
func (n *Notifier) Done() <-chan struct{} {
	return n.done
}

// Err error baca terakhir; nil untuk penutupan normal. Valid setelah Done.
func (n *Notifier) Err() error {
	select {
	case <-n.done:
		return n.err
	default:
		return nil
	}
}

// Close mengirim close frame lalu menutup koneksi. Aman dipanggil berkali-kali.
func (n *Notifier) Close() error {
	var err error
	n.closeOnce.Do(func() {
		n.writeMu.Lock()
		_ = n.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeWait))
		n.writeMu.Unlock()
		err = n.conn.Close()
	})
	return err
}

// SendText menulis satu frame teks ke backend.
func (n *Notifier) SendText(data []byte) error {
	n.writeMu.Lock()
	defer n.writeMu.Unlock()
	_ = n.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return n.conn.WriteMessage(websocket.TextMessage, data)
}

// SendJSON encode v lalu mengirimnya sebagai frame teks.
func (n *Notifier) SendJSON(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return n.SendText(data)
}

// ErrInvalidRoom id konsultasi kosong atau bukan angka positif.
var ErrInvalidRoom = errors.New("invalid consultation id")

// NotificationsURL socket notifikasi global: <base>/ws.
func NotificationsURL(base string) string {
	return strings.TrimRight(base, "/") + "/ws"
}

// ChatURL socket chat per konsultasi: <base>/ws/consultations/<id>.
func ChatURL(base, consultationID string) (string, error) {
	id, err := strconv.Atoi(consultationID)
	if err != nil || id <= 0 {
		return "", ErrInvalidRoom
	}
	return strings.TrimRight(base, "/") + "/ws/consultations/" + strconv.Itoa(id), nil
}
