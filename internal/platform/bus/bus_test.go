package bus

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDelivers(t *testing.T) {
	b := NewMemory(8, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, b.Publish(ctx, "ignored", "k", map[string]string{"a": "0"}))
	require.NoError(t, b.Publish(ctx, "save", "k", map[string]string{"a": "1"}))
	require.NoError(t, b.Publish(ctx, "save", "k", map[string]string{"a": "2"}))

	var (
		mu  sync.Mutex
		got []string
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = b.Subscribe(ctx, []string{"save"}, func(_ context.Context, topic string, payload []byte) error {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, string(payload))
			if len(got) == 1 {
				return errors.New("handler errors do not stop delivery")
			}
			return nil
		})
	}()

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	}, time.Second, 10*time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, []string{`{"a":"1"}`, `{"a":"2"}`}, got)
}

func TestMemoryClosed(t *testing.T) {
	b := NewMemory(1, nil)
	b.Close()
	assert.Error(t, b.Publish(context.Background(), "save", "k", 1))
}

func TestMemoryFullBufferHonoursContext(t *testing.T) {
	b := NewMemory(1, nil)
	require.NoError(t, b.Publish(context.Background(), "save", "k", 1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, b.Publish(ctx, "save", "k", 2), context.DeadlineExceeded)
}
