package txmanager

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Do(t *testing.T) {
	m := NewTransactionManager()

	t.Run("runs fn and returns its error", func(t *testing.T) {
		sentinel := errors.New("boom")

		err := m.Do(context.Background(), func(ctx context.Context) error {
			return sentinel
		})
		require.ErrorIs(t, err, sentinel)

		err = m.Do(context.Background(), func(ctx context.Context) error {
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("cancelled context short-circuits", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := m.Do(ctx, func(ctx context.Context) error {
			called = true
			return nil
		})
		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}

func TestTransactionManager_SerializesCheckThenAct(t *testing.T) {
	m := NewTransactionManager()

	// Классический check-then-act: без сериализации инкремент с проверкой
	// лимита пропустил бы лишние записи
	const workers = 32
	const limit = 1

	taken := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.DoSerializable(context.Background(), func(ctx context.Context) error {
				if taken >= limit {
					return errors.New("taken")
				}
				taken++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, limit, taken)
}
