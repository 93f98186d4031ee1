// Package main is the entry point for the CoreUI desktop shell backend.
//
// The shell sits between the desktop UI and the SuperBuilder middleware:
//
//	Desktop UI → HTTP commands / WebSocket events → Shell → gRPC → Middleware
//
// Configuration:
//   - Environment variables, optionally seeded from a dotenv file
//   - YAML config file (overrides env vars)
//   - CLI flags (override both)
//
// Usage:
//
//	./server -port 8000 -middleware 127.0.0.1:5006 -autoconnect
//
//	# Settings from a file and a dotenv file
//	./server -config shell.yaml -env-file .env.local
//
//	# Development mode (console logs, debug level)
//	./server -dev -log-level debug
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
