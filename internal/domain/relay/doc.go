// Package relay forwards UI commands to the middleware and turns stream
// items into UI events.
//
// Unary commands lease the shared client, issue exactly one RPC and return
// its primary payload. Streaming commands (chat, download, upload) pump one
// server stream on one goroutine, so events for a single invocation are
// emitted in arrival order. When a chat or upload stream fails the relay
// asks the middleware to stop through the companion stop RPC before
// emitting the terminal event. Nothing here retries.
package relay
