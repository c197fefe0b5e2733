package shutdown

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/honeycarbs/jobshop/pkg/logging"
)

func TestStopAllRunsEveryStoppableInOrder(t *testing.T) {
	var order []string
	boom := errors.New("boom")

	err := StopAll(context.Background(), time.Second, logging.Nop(),
		Func(func(context.Context) error {
			order = append(order, "http")
			return boom
		}),
		nil,
		Func(func(context.Context) error {
			order = append(order, "neo4j")
			return nil
		}),
	)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"http", "neo4j"}, order)
}

func TestStopAllSharesDeadline(t *testing.T) {
	var deadline time.Time

	err := StopAll(context.Background(), time.Minute, logging.Nop(),
		Func(func(ctx context.Context) error {
			deadline, _ = ctx.Deadline()
			return nil
		}),
	)

	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestGracefulReturnsWhenParentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stopped := false
	cancel()

	err := Graceful(ctx, []os.Signal{syscall.SIGUSR1}, time.Second, logging.Nop(),
		Func(func(context.Context) error {
			stopped = true
			return nil
		}),
	)

	assert.NoError(t, err)
	assert.True(t, stopped)
}
