package ws

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Sesuaikan policy CORS jika diperlukan
		return true
	},
}

// IdentityFunc mengambil identitas chat dari sesi request.
type IdentityFunc func(c echo.Context) ChatIdentity

// ServeNotifications relay notifikasi global: setiap koneksi browser membuka
// socket backend sendiri dan menerima frame apa adanya.
func ServeNotifications(hub *Hub, upstreamURL string, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			return err
		}
		relay := newRelay("notifications", conn)

		n, err := Subscribe(c.Request().Context(), upstreamURL, func(m Message) {
			if err := relay.writeBrowser(m.Raw); err != nil {
				relay.Close()
			}
		})
		if err != nil {
			logger.Error("notification upstream unavailable", zap.String("url", upstreamURL), zap.Error(err))
			relay.Close()
			return nil
		}
		if !relay.attach(n) {
			return nil
		}

		serveRelay(hub, relay, n, logger, nil)
		return nil
	}
}

// ServeConsultationChat relay room chat. Frame browser dibungkus menjadi
// ChatMessage atas nama pengguna sesi; echo milik sendiri tidak diteruskan.
func ServeConsultationChat(hub *Hub, wsBase string, identify IdentityFunc, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		upstreamURL, err := ChatURL(wsBase, c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":  http.StatusBadRequest,
				"message": "Invalid consultation id",
			})
		}
		self := identify(c)

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			return err
		}
		relay := newRelay("chat", conn)

		n, err := Subscribe(c.Request().Context(), upstreamURL, func(m Message) {
			msg := ParseChatMessage(m)
			if msg.IsFrom(self) {
				return
			}
			data, err := json.Marshal(msg)
			if err != nil {
				return
			}
			if err := relay.writeBrowser(data); err != nil {
				relay.Close()
			}
		})
		if err != nil {
			logger.Error("chat upstream unavailable", zap.String("url", upstreamURL), zap.Error(err))
			relay.Close()
			return nil
		}
		if !relay.attach(n) {
			return nil
		}

		serveRelay(hub, relay, n, logger, func(data []byte) error {
			msg, err := NewChatMessage(self, browserText(data))
			if err != nil {
				return nil
			}
			return n.SendJSON(msg)
		})
		return nil
	}
}

// serveRelay membaca frame browser sampai salah satu sisi tertutup.
// onBrowser nil berarti frame dari browser diabaikan.
func serveRelay(hub *Hub, relay *Relay, upstream *Notifier, logger *zap.Logger, onBrowser func([]byte) error) {
	if !hub.add(relay) {
		relay.Close()
		return
	}
	defer hub.remove(relay)
	defer relay.Close()

	go func() {
		select {
		case <-upstream.Done():
			relay.Close()
		case <-relay.done:
		}
	}()

	for {
		_, data, err := relay.browser.ReadMessage()
		if err != nil {
			return
		}
		if onBrowser == nil {
			continue
		}
		if err := onBrowser(data); err != nil {
			logger.Warn("relay upstream write failed", zap.String("kind", relay.Kind), zap.Error(err))
			return
		}
	}
}

// browserText isi pesan dari browser: field "text" bila frame berupa objek
// JSON, selain itu frame mentah.
func browserText(data []byte) string {
	m := ParseMessage(data)
	if obj, ok := m.JSON.(map[string]interface{}); ok {
		if text, ok := obj["text"].(string); ok {
			return text
		}
	}
	return string(data)
}
