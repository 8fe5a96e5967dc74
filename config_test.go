package treekv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "http://localhost:4001", config.BaseURL)
	assert.Equal(t, 5*time.Second, config.Timeout)
	assert.Equal(t, 100*time.Millisecond, config.SwapRetryDelay)
	assert.Equal(t, 100, config.TransportConfig.MaxIdleConns)
	assert.Equal(t, 10, config.TransportConfig.MaxConnsPerHost)
	assert.IsType(t, &NoopObserver{}, config.Observer)
}

func TestConfigBuilders(t *testing.T) {
	obs := NewMetricsCollector()
	config := DefaultConfig().
		WithBaseURL("https://store.example.com:4001").
		WithTimeout(10 * time.Second).
		WithSwapRetryDelay(50 * time.Millisecond).
		WithHeader("X-Auth-Token", "secret").
		WithObserver(obs)

	assert.Equal(t, "https://store.example.com:4001", config.BaseURL)
	assert.Equal(t, 10*time.Second, config.Timeout)
	assert.Equal(t, 50*time.Millisecond, config.SwapRetryDelay)
	assert.Equal(t, "secret", config.Headers["X-Auth-Token"])
	assert.Same(t, obs, config.Observer.(*MetricsCollector))
}

func TestConfigValidate_FillsDefaults(t *testing.T) {
	config := &Config{BaseURL: "http://localhost:4001"}
	require.NoError(t, config.Validate())

	assert.Equal(t, 5*time.Second, config.Timeout)
	assert.Equal(t, 100*time.Millisecond, config.SwapRetryDelay)
	assert.Equal(t, 100, config.TransportConfig.MaxIdleConns)
	assert.Equal(t, 10, config.TransportConfig.MaxConnsPerHost)
	assert.Equal(t, 90*time.Second, config.TransportConfig.IdleConnTimeout)
	assert.NotNil(t, config.Observer)
}

func TestConfigValidate_MissingBaseURL(t *testing.T) {
	config := &Config{}
	assert.ErrorIs(t, config.Validate(), ErrInvalidConfig)
}

func TestConfigWithHeader_NilMap(t *testing.T) {
	config := &Config{BaseURL: "http://localhost:4001"}
	config.WithHeader("a", "1").WithHeader("b", "2")
	assert.Equal(t, "1", config.Headers["a"])
	assert.Equal(t, "2", config.Headers["b"])
}
