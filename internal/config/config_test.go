package config_test

import (
	"correcthorse/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, uint64(0), cfg.Seed)
	require.Equal(t, "/usr/share/correcthorse", cfg.Wordlist.Dir)
	require.False(t, cfg.Wordlist.DisableBuiltin)
	require.Equal(t, 12, cfg.Defaults.Chars)
	require.Equal(t, 4, cfg.Defaults.Words)
	require.Equal(t, []string{"english"}, cfg.Defaults.Lists)
	require.Empty(t, cfg.Defaults.Sep)
	require.False(t, cfg.Defaults.CamelCase)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 100, cfg.HTTP.MaxCount)
	require.Equal(t, 64, cfg.HTTP.MaxWords)
	require.Equal(t, 512, cfg.HTTP.MaxChars)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CORRECTHORSE_WORDS", "6")
	t.Setenv("CORRECTHORSE_LISTS", "english,german")
	t.Setenv("CORRECTHORSE_SEED", "1234")
	t.Setenv("CORRECTHORSE_SEP", "-")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, 6, cfg.Defaults.Words)
	require.Equal(t, []string{"english", "german"}, cfg.Defaults.Lists)
	require.Equal(t, uint64(1234), cfg.Seed)
	require.Equal(t, "-", cfg.Defaults.Sep)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
wordlist:
  dir: /opt/words
defaults:
  chars: 20
  lists: [diceware]
  camelCase: true
http:
  addr: ":9090"
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "/opt/words", cfg.Wordlist.Dir)
	require.Equal(t, 20, cfg.Defaults.Chars)
	require.Equal(t, 4, cfg.Defaults.Words)
	require.Equal(t, []string{"diceware"}, cfg.Defaults.Lists)
	require.True(t, cfg.Defaults.CamelCase)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
