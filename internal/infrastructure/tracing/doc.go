/*
Package tracing provides lightweight request tracing for the shell.

# Overview

A UI command enters over HTTP, becomes one or more gRPC calls to the
middleware and, for streaming commands, a run of UI events. Tracing ties
these together: the HTTP middleware starts a span per command and the gRPC
client interceptors continue the trace, forwarding it to the middleware as
x-trace-id / x-span-id metadata.

Spans are written to the structured log by a background collector.

# Usage

	tracer := tracing.New("coreui", logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	handle := superbuilder.NewHandle(superbuilder.WithDialOptions(
		grpc.WithChainUnaryInterceptor(tracing.GRPCClientInterceptor(tracer)),
		grpc.WithChainStreamInterceptor(tracing.GRPCStreamClientInterceptor(tracer)),
	))

	span, ctx := tracer.StartSpan(ctx, "operation")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()

# Trace Format

Traces use HTTP headers for propagation:
- X-Trace-ID: identifier for the entire command flow
- X-Span-ID: identifier for the current operation

# Performance

Spans are buffered (1000) and processed asynchronously. A full buffer drops
spans instead of blocking the request.
*/
package tracing
