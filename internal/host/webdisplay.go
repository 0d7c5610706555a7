package host

import (
	"encoding/binary"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WebDisplay broadcasts finished frames to any number of connected
// websocket clients, for running the core headless on a machine with no
// attached GPU/window surface and viewing it from a browser.
type WebDisplay struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
}

func NewWebDisplay() *WebDisplay {
	return &WebDisplay{clients: make(map[*websocket.Conn]chan []byte)}
}

// Handler upgrades incoming HTTP connections to websockets and registers
// them to receive frames.
func (w *WebDisplay) Handler() http.HandlerFunc {
	return func(wr http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(wr, r, nil)
		if err != nil {
			return
		}
		out := make(chan []byte, 4)
		w.mu.Lock()
		w.clients[conn] = out
		w.mu.Unlock()

		go func() {
			defer func() {
				w.mu.Lock()
				delete(w.clients, conn)
				w.mu.Unlock()
				conn.Close()
			}()
			for frame := range out {
				if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
					return
				}
			}
		}()
	}
}

// Broadcast encodes a frame as a flat width*height*3 byte payload
// (prefixed with a 4-byte header: big-endian uint16 width, then height)
// and fans it out to every connected client, dropping the frame for any client whose send queue
// is still full rather than blocking the emulation loop on a slow peer.
func (w *WebDisplay) Broadcast(frame [144][160][3]uint8) {
	payload := make([]byte, 4+160*144*3)
	binary.BigEndian.PutUint16(payload[0:2], 160)
	binary.BigEndian.PutUint16(payload[2:4], 144)
	i := 4
	for y := 0; y < 144; y++ {
		for x := 0; x < 160; x++ {
			px := frame[y][x]
			payload[i], payload[i+1], payload[i+2] = px[0], px[1], px[2]
			i += 3
		}
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ch := range w.clients {
		select {
		case ch <- payload:
		default:
		}
	}
}
