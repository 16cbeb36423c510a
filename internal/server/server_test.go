package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	srv := New(Config{Port: 0})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx)
	}()

	// Give the listener a moment to come up, then cancel.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	srv := New(Config{})
	assert.Equal(t, int64(defaultMaxUpload), srv.maxUpload)
	assert.NotNil(t, srv.logger)
}
