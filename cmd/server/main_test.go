package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubServer struct {
	closed chan struct{}
	worker *stubWorker

	workerRunningAtShutdown bool
}

func (s *stubServer) ListenAndServe() error {
	<-s.closed
	return http.ErrServerClosed
}

func (s *stubServer) Shutdown(context.Context) error {
	s.workerRunningAtShutdown = s.worker.ctx.Err() == nil
	close(s.closed)
	return nil
}

type stubWorker struct {
	started chan struct{}
	ctx     context.Context
	err     error
}

func (w *stubWorker) Run(ctx context.Context) error {
	w.ctx = ctx
	close(w.started)
	if w.err != nil {
		return w.err
	}
	<-ctx.Done()
	return ctx.Err()
}

func newStubs() (*stubServer, *stubWorker) {
	w := &stubWorker{started: make(chan struct{})}
	return &stubServer{closed: make(chan struct{}), worker: w}, w
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServeKeepsWorkerRunningThroughShutdown(t *testing.T) {
	srv, worker := newStubs()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, worker, discardLogger()) }()

	<-worker.started
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancellation")
	}
	assert.True(t, srv.workerRunningAtShutdown, "worker stopped before the server finished draining")
	assert.ErrorIs(t, worker.ctx.Err(), context.Canceled)
}

func TestServeStopsWhenWorkerFails(t *testing.T) {
	srv, worker := newStubs()
	boom := errors.New("store gone")
	worker.err = boom

	err := serve(context.Background(), srv, worker, discardLogger())
	assert.ErrorIs(t, err, boom)
}
