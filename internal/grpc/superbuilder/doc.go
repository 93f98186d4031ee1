/*
Package superbuilder is the gRPC client side of the SuperBuilder middleware.

# Overview

The desktop shell owns exactly one channel to the middleware. It lives in a
Handle that starts empty and is filled by an explicit Connect command; there
is no automatic reconnect. Every other command takes a lease on the current
Client, runs its RPC without holding the handle lock, and releases the lease.

# Reconnect

Connecting again swaps the current client atomically. Calls already holding
a lease finish against the old channel, which is closed when its last lease
is released. Calls that start after the swap use the new channel.

# Errors

	ErrNotInitialized        no successful Connect yet
	ErrConnection            dial failed (cause is logged, not returned)
	*RPCError                a unary call or stream open failed
	*StreamError             a stream failed mid-flight
	*DecodeError             a stream item carried a malformed payload
	*IncompleteDownloadError a download stream ended before 100%

# Usage

	handle := superbuilder.NewHandle(superbuilder.WithLogger(logger.Logger))
	if err := handle.Connect(ctx, "127.0.0.1:5006"); err != nil {
		return err
	}

	client, release, err := handle.Acquire()
	if err != nil {
		return err
	}
	defer release()

	history, err := client.GetChatHistory(ctx)
*/
package superbuilder
