package events

import (
	"net/http"
	"time"
)

const (
	// Time between keepalive comments
	pingPeriod = 30 * time.Second

	// Buffer size for outgoing messages
	sendBufferSize = 64
)

type client struct {
	remoteAddr  string
	connectedAt time.Time
	send        chan []byte
}

// serve streams the snapshot, then every published event, until the client
// goes away or the hub closes
func serve(w http.ResponseWriter, r *http.Request, hub *Hub, snapshot func() []Event) {
	rc := http.NewResponseController(w)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	// Streams outlive the server's write timeout
	_ = rc.SetWriteDeadline(time.Time{})

	c := &client{
		remoteAddr:  r.RemoteAddr,
		connectedAt: time.Now(),
		send:        make(chan []byte, sendBufferSize),
	}
	if !hub.add(c) {
		http.Error(w, "event stream closed", http.StatusServiceUnavailable)
		return
	}
	defer hub.remove(c)

	// Registered before the snapshot is written, so later changes are
	// queued behind it
	for _, e := range snapshot() {
		msg, err := formatEvent(e)
		if err != nil {
			continue
		}
		if _, err := w.Write(msg); err != nil {
			return
		}
	}
	if err := rc.Flush(); err != nil {
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				return
			}
			if _, err := w.Write(message); err != nil {
				return
			}
			_ = rc.Flush()

		case <-ticker.C:
			if _, err := w.Write([]byte(": keepalive\n\n")); err != nil {
				return
			}
			_ = rc.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
