package ws

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// UnknownSender nama pengirim untuk frame yang bukan JSON chat.
const UnknownSender = "Unknown"

// ErrEmptyMessage pesan kosong setelah di-trim tidak dikirim.
var ErrEmptyMessage = errors.New("empty chat message")

// ChatMessage format pesan di room konsultasi.
type ChatMessage struct {
	SenderID   string `json:"senderId,omitempty"`
	SenderName string `json:"senderName"`
	Text       string `json:"text"`
}

// ChatIdentity identitas pengguna yang sedang chat.
type ChatIdentity struct {
	ID   string
	Name string
}

// IdentityFor membangun identitas dari id numerik user.
func IdentityFor(userID int, name string) ChatIdentity {
	id := ""
	if userID > 0 {
		id = strconv.Itoa(userID)
	}
	return ChatIdentity{ID: id, Name: name}
}

type wireChat struct {
	SenderID   json.RawMessage `json:"senderId"`
	SenderName *string         `json:"senderName"`
	Text       *string         `json:"text"`
}

// ParseChatMessage mengurai frame room. Frame non-JSON atau JSON yang bukan
// objek menjadi pesan dari "Unknown" dengan teks mentah.
func ParseChatMessage(m Message) ChatMessage {
	fallback := ChatMessage{SenderName: UnknownSender, Text: m.Text()}
	if !m.IsJSON {
		return fallback
	}
	if _, ok := m.JSON.(map[string]interface{}); !ok {
		return fallback
	}

	var w wireChat
	if err := json.Unmarshal(m.Raw, &w); err != nil {
		return fallback
	}
	out := ChatMessage{SenderName: UnknownSender, SenderID: senderID(w.SenderID)}
	if w.SenderName != nil && *w.SenderName != "" {
		out.SenderName = *w.SenderName
	}
	if w.Text != nil {
		out.Text = *w.Text
	}
	return out
}

// senderID menerima id berupa angka maupun string.
func senderID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// IsFrom true bila pesan adalah echo milik self. Id dipakai bila kedua sisi
// punya id, selain itu dibandingkan nama.
func (m ChatMessage) IsFrom(self ChatIdentity) bool {
	if m.SenderID != "" && self.ID != "" {
		return m.SenderID == self.ID
	}
	return m.SenderName == self.Name
}

// NewChatMessage pesan keluar dari self; teks di-trim.
func NewChatMessage(self ChatIdentity, text string) (ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ChatMessage{}, ErrEmptyMessage
	}
	return ChatMessage{SenderID: self.ID, SenderName: self.Name, Text: text}, nil
}

// ChatRoom koneksi ke satu room konsultasi yang menyaring echo milik sendiri.
type ChatRoom struct {
	*Notifier
	Self ChatIdentity
}

// JoinChat membuka socket room dan memanggil onMessage untuk pesan dari
// peserta lain saja.
func JoinChat(ctx context.Context, url string, self ChatIdentity, onMessage func(ChatMessage)) (*ChatRoom, error) {
	n, err := Subscribe(ctx, url, func(m Message) {
		msg := ParseChatMessage(m)
		if msg.IsFrom(self) {
			return
		}
		if onMessage != nil {
			onMessage(msg)
		}
	})
	if err != nil {
		return nil, err
	}
	return &ChatRoom{Notifier: n, Self: self}, nil
}

// Send mengirim teks sebagai pesan JSON dari Self.
func (r *ChatRoom) Send(text string) (ChatMessage, error) {
	msg, err := NewChatMessage(r.Self, text)
	if err != nil {
		return ChatMessage{}, err
	}
	return msg, r.SendJSON(msg)
}
