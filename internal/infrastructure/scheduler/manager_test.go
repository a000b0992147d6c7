package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skylink/internal/shared/logger"
)

func TestValidateSpec(t *testing.T) {
	assert.NoError(t, ValidateSpec("*/5 * * * *"))
	assert.NoError(t, ValidateSpec("@every 30s"))
	assert.Error(t, ValidateSpec("every minute"))
	assert.Error(t, ValidateSpec(""))
}

func TestSchedulerManager_RunsAndStops(t *testing.T) {
	m := NewSchedulerManager(logger.NewNopLogger())

	var runs atomic.Int32
	id, err := m.Register("refresh", "@every 1s", func(ctx context.Context) error {
		runs.Add(1)
		return errors.New("backend down")
	})
	require.NoError(t, err)

	m.Start()
	assert.False(t, m.NextRun(id).IsZero())

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, m.Stop(ctx))
}

func TestSchedulerManager_RegisterRejectsBadSpec(t *testing.T) {
	m := NewSchedulerManager(logger.NewNopLogger())

	_, err := m.Register("bad", "61 * * * *", func(context.Context) error { return nil })

	assert.Error(t, err)
}
