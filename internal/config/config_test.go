package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Empty(t, cfg.Server.PublicBaseURL)
	assert.Equal(t, 15, cfg.Mock.RecordCount)
	assert.Equal(t, 500, cfg.Mock.RequestLogCapacity)
	assert.False(t, cfg.AI.Enabled())
	require.NotNil(t, cfg.AI.Temperature)
	assert.InDelta(t, 0.7, *cfg.AI.Temperature, 0.001)
	require.NotNil(t, cfg.AI.MaxTokens)
	assert.Equal(t, 2048, *cfg.AI.MaxTokens)
}

func TestLoadPortVariants(t *testing.T) {
	cases := map[string]string{
		"3000":           ":3000",
		":9090":          ":9090",
		"127.0.0.1:8081": "127.0.0.1:8081",
	}
	for port, wantAddr := range cases {
		t.Setenv("PORT", port)
		cfg, err := Load()
		require.NoError(t, err, "port %q", port)
		assert.Equal(t, wantAddr, cfg.Server.Addr)
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("PORT", "80 80")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadPublicBaseURL(t *testing.T) {
	t.Setenv("PUBLIC_BASE_URL", "https://mocks.example.com")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://mocks.example.com", cfg.Server.PublicBaseURL)
}

func TestLoadMockOverrides(t *testing.T) {
	t.Setenv("MOCK_RECORD_COUNT", "25")
	t.Setenv("REQUEST_LOG_CAPACITY", "50")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Mock.RecordCount)
	assert.Equal(t, 50, cfg.Mock.RequestLogCapacity)
}

func TestLoadClampsRecordCount(t *testing.T) {
	t.Setenv("MOCK_RECORD_COUNT", "0")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Mock.RecordCount)
}

func TestLoadRejectsInvalidRecordCount(t *testing.T) {
	t.Setenv("MOCK_RECORD_COUNT", "many")
	_, err := Load()
	assert.Error(t, err)
}

func TestAIEnabled(t *testing.T) {
	assert.False(t, AIConfig{Model: "doubao-pro"}.Enabled())
	assert.False(t, AIConfig{APIKey: "key"}.Enabled())
	assert.True(t, AIConfig{Model: "doubao-pro", APIKey: "key"}.Enabled())
	assert.True(t, AIConfig{Model: "doubao-pro", AccessKey: "ak", SecretKey: "sk"}.Enabled())
	assert.False(t, AIConfig{Model: "doubao-pro", AccessKey: "ak"}.Enabled())
}

func TestAISamplingOverrides(t *testing.T) {
	t.Setenv("ARK_TEMPERATURE", "0.2")
	t.Setenv("ARK_TOP_P", "0.9")
	t.Setenv("ARK_MAX_TOKENS", "512")
	cfg, err := Load()
	require.NoError(t, err)

	require.NotNil(t, cfg.AI.Temperature)
	assert.InDelta(t, 0.2, *cfg.AI.Temperature, 0.001)
	require.NotNil(t, cfg.AI.TopP)
	assert.InDelta(t, 0.9, *cfg.AI.TopP, 0.001)
	require.NotNil(t, cfg.AI.MaxTokens)
	assert.Equal(t, 512, *cfg.AI.MaxTokens)
}

func TestAIRejectsInvalidTemperature(t *testing.T) {
	t.Setenv("ARK_TEMPERATURE", "hot")
	_, err := Load()
	assert.Error(t, err)
}
