// Package ws delivers relay events to UI windows over WebSocket.
//
// Hub implements the relay's event emitter: each event is encoded once and
// queued for every subscriber. Handler upgrades GET /events and streams the
// subscriber's queue to the window.
//
// Frame (Server → Client):
//
//	{"event": "new_message", "payload": "...", "timestamp": 1718000000000}
//
// Events:
//   - middleware-connected: target address after a successful connect
//   - first_word, new_message, stream-completed: chat relay
//   - download-progress, download-completed: model download relay
//   - upload-progress, upload-completed: file upload relay
//
// A window that stops reading is dropped once its queue fills; the UI is
// expected to reconnect.
//
// Example Usage:
//
//	hub := ws.NewHub(logger, metrics, cfg.Events.BufferSize)
//	handler := ws.NewHandler(hub, logger, cfg.Server.AllowedOrigins, cfg.Events.WriteTimeout)
//	router.GET("/events", handler.HandleConnection)
package ws
