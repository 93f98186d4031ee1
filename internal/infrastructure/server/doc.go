// Package server assembles the shell: the middleware handle, the relay,
// the event hub, the command handlers and the HTTP router.
//
// Routes:
//   - GET  /                 liveness
//   - GET  /health           middleware connectivity and runtime info
//   - POST /commands/:name   command surface
//   - GET  /events           WebSocket event stream
//   - GET  /metrics          Prometheus metrics
package server
