// Package superbuilder provides generated Protocol Buffer types and gRPC
// clients for the SuperBuilder middleware.
//
// Generated from: proto/superbuilder.proto
//
// This package contains:
//   - SuperBuilderClient: gRPC client for middleware operations
//   - Unary request/response types (config, models, sessions, files)
//   - Server-streaming types for Chat, DownloadFiles and AddFiles
//
// Usage:
//
//	This package is wrapped by internal/grpc/superbuilder
//	for lease-based access and typed errors.
//
// Note: This is generated code. Do not edit manually.
// Regenerate from the repository root with:
//
//	protoc --go_out=. --go_opt=module=github.com/superbuilder/coreui/backend \
//	  --go-grpc_out=. --go-grpc_opt=module=github.com/superbuilder/coreui/backend \
//	  proto/superbuilder.proto
package superbuilder
