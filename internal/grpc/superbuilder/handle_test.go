package superbuilder_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/status"

	"github.com/superbuilder/coreui/backend/internal/grpc/superbuilder"
	"github.com/superbuilder/coreui/backend/internal/testutil"
)

func newHandle(net *testutil.Network) *superbuilder.Handle {
	return superbuilder.NewHandle(
		superbuilder.WithDialOptions(net.Dialer()),
		superbuilder.WithConnectTimeout(2*time.Second),
	)
}

func TestAcquireBeforeConnect(t *testing.T) {
	h := superbuilder.NewHandle()

	client, release, err := h.Acquire()
	assert.ErrorIs(t, err, superbuilder.ErrNotInitialized)
	assert.Nil(t, client)
	assert.Nil(t, release)
	assert.False(t, h.Connected())
	assert.Empty(t, h.Target())
}

func TestConnectAndCall(t *testing.T) {
	net := testutil.NewNetwork()
	fake := testutil.NewFakeMiddleware()
	target := net.Serve(t, "primary", fake)

	h := newHandle(net)
	defer h.Close()

	require.NoError(t, h.Connect(context.Background(), target))
	assert.True(t, h.Connected())
	assert.Equal(t, target, h.Target())

	client, release, err := h.Acquire()
	require.NoError(t, err)
	defer release()

	msg, err := client.SayHello(context.Background(), "CoreUI")
	require.NoError(t, err)
	assert.Equal(t, "Hello CoreUI", msg)
	assert.Equal(t, connectivity.Ready, client.State())
}

func TestConnectFailureKeepsPreviousClient(t *testing.T) {
	net := testutil.NewNetwork()
	target := net.Serve(t, "primary", testutil.NewFakeMiddleware())

	h := newHandle(net)
	defer h.Close()

	require.NoError(t, h.Connect(context.Background(), target))

	err := h.Connect(context.Background(), testutil.Target("missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, superbuilder.ErrConnection)
	assert.Equal(t, "failed to connect to middleware", err.Error())

	assert.Equal(t, target, h.Target())
	client, release, err := h.Acquire()
	require.NoError(t, err)
	defer release()
	_, err = client.LoadModels(context.Background())
	assert.NoError(t, err)
}

func TestConnectFailureOnEmptyHandle(t *testing.T) {
	h := newHandle(testutil.NewNetwork())

	err := h.Connect(context.Background(), testutil.Target("missing"))
	assert.ErrorIs(t, err, superbuilder.ErrConnection)
	assert.False(t, h.Connected())
}

func TestReconnectRetiresClientAfterLastLease(t *testing.T) {
	net := testutil.NewNetwork()
	first := testutil.NewFakeMiddleware()
	second := testutil.NewFakeMiddleware()
	second.SetReplies(testutil.Replies{Hello: "Hello from second"})

	h := newHandle(net)
	defer h.Close()

	require.NoError(t, h.Connect(context.Background(), net.Serve(t, "first", first)))

	old, release, err := h.Acquire()
	require.NoError(t, err)

	require.NoError(t, h.Connect(context.Background(), net.Serve(t, "second", second)))

	// The leased client still talks to the first middleware.
	msg, err := old.SayHello(context.Background(), "CoreUI")
	require.NoError(t, err)
	assert.Equal(t, "Hello CoreUI", msg)
	assert.Equal(t, 1, first.Calls("SayHelloPyllm"))

	current, releaseCurrent, err := h.Acquire()
	require.NoError(t, err)
	defer releaseCurrent()
	msg, err = current.SayHello(context.Background(), "CoreUI")
	require.NoError(t, err)
	assert.Equal(t, "Hello from second", msg)

	release()
	release()
	assert.Equal(t, connectivity.Shutdown, old.State())
	assert.NotEqual(t, connectivity.Shutdown, current.State())
}

func TestReconnectClosesIdleClient(t *testing.T) {
	net := testutil.NewNetwork()

	h := newHandle(net)
	defer h.Close()

	require.NoError(t, h.Connect(context.Background(), net.Serve(t, "first", testutil.NewFakeMiddleware())))
	old, release, err := h.Acquire()
	require.NoError(t, err)
	release()

	require.NoError(t, h.Connect(context.Background(), net.Serve(t, "second", testutil.NewFakeMiddleware())))
	assert.Equal(t, connectivity.Shutdown, old.State())
}

func TestInFlightCallSurvivesReconnect(t *testing.T) {
	net := testutil.NewNetwork()
	first := testutil.NewFakeMiddleware()

	entered := make(chan struct{})
	unblock := make(chan struct{})
	first.OnCall("GetChatHistory", func(context.Context) {
		close(entered)
		<-unblock
	})

	h := newHandle(net)
	defer h.Close()
	require.NoError(t, h.Connect(context.Background(), net.Serve(t, "first", first)))

	var (
		wg      sync.WaitGroup
		history string
		callErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		client, release, err := h.Acquire()
		if err != nil {
			callErr = err
			return
		}
		defer release()
		history, callErr = client.GetChatHistory(context.Background())
	}()

	<-entered
	require.NoError(t, h.Connect(context.Background(), net.Serve(t, "second", testutil.NewFakeMiddleware())))
	close(unblock)
	wg.Wait()

	require.NoError(t, callErr)
	assert.Equal(t, "[]", history)
	assert.Equal(t, testutil.Target("second"), h.Target())
}

func TestRPCErrorWrapsStatus(t *testing.T) {
	net := testutil.NewNetwork()
	fake := testutil.NewFakeMiddleware()
	fake.Fail("RemoveSession", status.Error(codes.NotFound, "no such session"))

	h := newHandle(net)
	defer h.Close()
	require.NoError(t, h.Connect(context.Background(), net.Serve(t, "primary", fake)))

	client, release, err := h.Acquire()
	require.NoError(t, err)
	defer release()

	_, err = client.RemoveSession(context.Background(), 7)
	require.Error(t, err)

	var rpcErr *superbuilder.RPCError
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, "RemoveSession", rpcErr.Op)
	assert.Equal(t, codes.NotFound, status.Code(rpcErr.Err))
	assert.Contains(t, err.Error(), "no such session")
	assert.True(t, superbuilder.IsStatusError(err))
}

func TestCloseEmptiesHandle(t *testing.T) {
	net := testutil.NewNetwork()
	h := newHandle(net)
	require.NoError(t, h.Connect(context.Background(), net.Serve(t, "primary", testutil.NewFakeMiddleware())))

	require.NoError(t, h.Close())
	assert.False(t, h.Connected())

	_, _, err := h.Acquire()
	assert.ErrorIs(t, err, superbuilder.ErrNotInitialized)
}
