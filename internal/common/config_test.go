package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_URL", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg := LoadConfig()
	assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
	assert.Equal(t, "./uploads", cfg.Server.UploadDir)
	assert.Equal(t, 12*time.Hour, cfg.Server.SessionTTL)
	assert.Equal(t, 64, cfg.OCR.MinCharsPerPage)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	assert.Equal(t, 3, cfg.LLM.MaxAttempts)
	assert.Equal(t, 2, cfg.Pipeline.Workers)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("GEMINI_MAX_ATTEMPTS", "5")
	t.Setenv("PDF_MIN_CHARS_PER_PAGE", "100")

	cfg := LoadConfig()
	assert.Equal(t, ":9000", cfg.Server.HTTPAddr)
	assert.Equal(t, 30*time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, 5, cfg.LLM.MaxAttempts)
	assert.Equal(t, 100, cfg.OCR.MinCharsPerPage)
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{DSN: "file:test.db"},
			Server:   ServerConfig{HTTPAddr: ":8080"},
			LLM:      LLMConfig{APIKey: "key", MaxAttempts: 3},
		}
	}

	require.NoError(t, valid().Validate())

	c := valid()
	c.Database.DSN = ""
	assert.Error(t, c.Validate())

	c = valid()
	c.LLM.APIKey = ""
	assert.Error(t, c.Validate())

	c = valid()
	c.LLM.MaxAttempts = 0
	assert.Error(t, c.Validate())
}
