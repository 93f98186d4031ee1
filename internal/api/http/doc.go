// Package http provides the command surface the desktop UI calls.
//
// Every command is POST /commands/:name with a JSON object of arguments
// (an empty body means no arguments). Responses share one envelope:
//
//	{"success": true,  "data": <value>}
//	{"success": false, "error": "<message>"}
//
// Status codes:
//   - 200: command succeeded
//   - 400: malformed or missing arguments
//   - 404: unknown command or model
//   - 502: the middleware call or stream failed
//   - 503: no middleware connection (connect_client first)
//
// Streaming commands (chat, download_file, upload_files) answer once the
// stream ends; their progress arrives as events on GET /events.
//
// Example Usage:
//
//	handlers := http.NewHandlers(relaySvc, hubClient, systemProvider, metrics, logger)
//	router.POST("/commands/:name", handlers.Command)
//	router.GET("/health", handlers.Health)
package http
