/*
Package monitoring provides Prometheus metrics for the desktop shell.

# Overview

Metrics live on a dedicated registry owned by Metrics, so tests can build as
many collectors as they like. The server exposes that registry on /metrics.

# Features

- HTTP request metrics (latency, throughput, size)
- UI command metrics (per command name and outcome)
- gRPC client metrics for middleware calls (latency, status codes)
- Stream relay metrics (active streams, outcomes, stop handshakes)
- UI event and WebSocket metrics
- Outbound service call metrics

# Usage

	metrics := monitoring.NewMetrics(nil)

	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	handle := superbuilder.NewHandle(superbuilder.WithDialOptions(
		grpc.WithChainUnaryInterceptor(monitoring.UnaryClientInterceptor(metrics)),
		grpc.WithChainStreamInterceptor(monitoring.StreamClientInterceptor(metrics)),
	))

	timer := monitoring.NewTimer(metrics, "hub", "model_info")
	// ... perform operation ...
	timer.Stop("success")
*/
package monitoring
