package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestServerRunStopsOnContextCancel(t *testing.T) {
	server := NewServer(
		WithAddress("127.0.0.1:0"),
		WithMount("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})),
	)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)

	go func() {
		done <- server.Run(ctx)
	}()

	// Let the listener come up before asking for shutdown
	time.Sleep(100 * time.Millisecond)

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not shut down after context cancellation")
	}
}
