package api

import (
	"net/http"

	xhttp "GoldView/pkg/http"
	xlogger "GoldView/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard is served from arbitrary origins in dev setups.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LiveStream pushes quote updates to a websocket client as the poller
// produces them. The connection closes when the client goes away or the
// subscription channel is drained and closed.
func (h *ViewEchoHandler) LiveStream(c echo.Context) error {
	if h.poller == nil {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundError("live polling disabled"))
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	sub := h.poller.Subscribe()
	defer h.poller.Unsubscribe(sub)

	// Send the current quote immediately so the client doesn't wait a
	// full poll interval for its first tick.
	if q, ok := h.poller.Last(); ok {
		if err := conn.WriteJSON(q); err != nil {
			return nil
		}
	}

	// Read loop only detects client close; inbound frames are ignored.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return nil
		case q, ok := <-sub:
			if !ok {
				return nil
			}
			if err := conn.WriteJSON(q); err != nil {
				h.logger.Warn("live stream write failed", xlogger.Error(err))
				return nil
			}
		}
	}
}
