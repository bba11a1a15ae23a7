package camunda

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cogni-recommender/internal/common/config"
	"cogni-recommender/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() *RetryConfig {
	return &RetryConfig{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
}

func TestMapZeebeError(t *testing.T) {
	tests := []struct {
		msg  string
		want errors.ErrorCode
	}{
		{"rpc error: code = Unavailable desc = connection refused", errors.ErrCodeExternalService},
		{"context deadline exceeded", errors.ErrCodeTimeout},
		{"job with key 1 not found", errors.ErrCodeNotFound},
		{"process already exists", errors.ErrCodeBusinessRule},
		{"permission denied", errors.ErrCodeAuthentication},
		{"something odd", errors.ErrCodeExternalService},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			err := mapZeebeError(fmt.Errorf("%s", tt.msg), "complete-job", 0)
			assert.Equal(t, tt.want, errors.CodeOf(err))
		})
	}
}

func TestRetry_RetriesTransientErrors(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastRetry(), "complete-job", func(context.Context) error {
		calls++
		if calls < 3 {
			return fmt.Errorf("connection reset by peer")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_GivesUp(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastRetry(), "complete-job", func(context.Context) error {
		calls++
		return fmt.Errorf("unavailable")
	})

	assert.Equal(t, 3, calls)
	assert.True(t, errors.IsCode(err, errors.ErrCodeExternalService))
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestRetry_PermanentErrorIsNotRetried(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastRetry(), "throw-error", func(context.Context) error {
		calls++
		return fmt.Errorf("job not found")
	})

	assert.Equal(t, 1, calls)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	slow := &RetryConfig{MaxRetries: 5, BaseDelay: time.Hour, MaxDelay: time.Hour}
	err := Retry(ctx, slow, "complete-job", func(context.Context) error {
		return fmt.Errorf("timeout")
	})
	assert.True(t, errors.IsCode(err, errors.ErrCodeTimeout))
}

func TestConfigFrom(t *testing.T) {
	cc := ConfigFrom(config.CamundaConfig{BrokerAddress: "zeebe:26500", RequestTimeout: 2500})

	assert.Equal(t, "zeebe:26500", cc.GatewayAddress)
	assert.True(t, cc.UsePlaintextConnection)
	assert.Equal(t, 2500*time.Millisecond, cc.RequestTimeout)
	assert.Same(t, DefaultRetryConfig, cc.RetryConfig)
}
