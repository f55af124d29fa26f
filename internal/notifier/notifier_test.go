package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type countingNotifier struct {
	calls int
	err   error
}

func (c *countingNotifier) Send(context.Context, string, string) error {
	c.calls++
	return c.err
}

func TestSendWithRetry_FirstAttemptSucceeds(t *testing.T) {
	n := &countingNotifier{}
	err := SendWithRetry(context.Background(), n, "subject", "body", 3)
	assert.NoError(t, err)
	assert.Equal(t, 1, n.calls)
}

func TestSendWithRetry_NoBackoffAfterLastAttempt(t *testing.T) {
	n := &countingNotifier{err: errors.New("smtp down")}

	start := time.Now()
	err := SendWithRetry(context.Background(), n, "subject", "body", 1)

	assert.Error(t, err)
	assert.Equal(t, 1, n.calls)
	assert.Less(t, time.Since(start), time.Second, "exhausted retries must return without sleeping")
}

func TestSendWithRetry_CancelledContextStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := &countingNotifier{err: errors.New("smtp down")}
	err := SendWithRetry(ctx, n, "subject", "body", 3)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, n.calls, "no further attempts after cancellation")
}

func TestLogNotifier(t *testing.T) {
	n := NewLogNotifier(zerolog.Nop())
	assert.NoError(t, n.Send(context.Background(), "subject", "body"))
}
