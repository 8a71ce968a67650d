package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipYearKey(t *testing.T) {
	assert.Equal(t, "cb:R001:2024", ShipYearKey("R001", 2024))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, normalize([]string{"c", "a", "b", "a"}))
	assert.Empty(t, normalize(nil))
}

func TestLocal_MutualExclusion(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Lock(ctx, "cb:1:2024")
			if !assert.NoError(t, err) {
				return
			}
			defer release()
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Empty(t, l.locks)
}

func TestLocal_ContextCancelWhileHeld(t *testing.T) {
	l := NewLocal()
	release, err := l.Lock(context.Background(), "a", "b")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "b", "c")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	free, err := l.Lock(context.Background(), "c")
	require.NoError(t, err)
	free()

	release()
	release()

	again, err := l.Lock(context.Background(), "a", "b")
	require.NoError(t, err)
	again()
	assert.Empty(t, l.locks)
}

func TestLocal_OverlappingSetsDoNotDeadlock(t *testing.T) {
	l := NewLocal()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		keys := []string{"x", "y"}
		if i%2 == 1 {
			keys = []string{"y", "x"}
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Lock(ctx, keys...)
			if assert.NoError(t, err) {
				release()
			}
		}()
	}
	wg.Wait()
}
