// Package middleware provides the HTTP middleware of the shell backend.
//
// Middleware stack includes:
//   - CORS: exact-match origins, including the desktop webview's tauri:// origin
//   - RateLimit: per-IP token bucket rate limiting
//   - GlobalRateLimit: one bucket shared by every client
//
// Rate Limiting:
//   - Per-IP tracking; clients idle for three minutes are forgotten
//   - Token bucket algorithm (golang.org/x/time/rate)
//   - Rejections answer 429 with the command error envelope
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.Server.AllowedOrigins...)))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
