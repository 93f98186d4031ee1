// Package hub fetches model metadata from a Hugging Face compatible model
// hub for the model download screen.
//
// Built on go-resty/resty over a hashicorp/go-retryablehttp transport, with
// a per-client rate limiter and circuit breaker.
//
// Example Usage:
//
//	client := hub.NewClient(cfg.Hub, hub.WithMetrics(metrics), hub.WithLogger(logger))
//	info, err := client.ModelInfo(ctx, "microsoft/phi-2")
package hub
