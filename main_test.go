package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"Flagger/internal/config"
	"Flagger/internal/filter"
	flagview "Flagger/internal/flag"
)

func TestRunTextWithFilter(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Format.ShowUnicodeFlags = false
	cfg.Filter = &filter.Criteria{
		IncludeContinents: []string{"asia"},
		Text:              flagview.SelectionYes,
	}

	var out bytes.Buffer
	require.NoError(t, run(cfg, OutputText, "", &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "SA")
	require.Contains(t, lines[0], "Saudi Arabia")
	require.Contains(t, lines[0], "text=Yes")
}

func TestRunJSONSingleCountry(t *testing.T) {
	cfg := config.DefaultConfig()

	var out bytes.Buffer
	require.NoError(t, run(cfg, OutputJSON, "jp", &out))

	var views []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &views))
	require.Len(t, views, 1)
	require.Equal(t, "jp", views[0]["image_name"])
	require.Equal(t, "no", views[0]["text"])

	country := views[0]["country"].(map[string]any)
	require.Equal(t, "Japan", country["name"])
	require.Equal(t, "JP", country["iso_code"])
}

func TestRunDiscord(t *testing.T) {
	cfg := config.DefaultConfig()

	var out bytes.Buffer
	require.NoError(t, run(cfg, OutputDiscord, "", &out))

	var payloads []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &payloads))
	require.NotEmpty(t, payloads)
	require.LessOrEqual(t, len(payloads[0]["embeds"].([]any)), 10)
}

func TestRunUnknownCountry(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, run(config.DefaultConfig(), OutputText, "xx", &out))
}

func TestRunMissingDataDir(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataDir = filepath.Join(t.TempDir(), "missing")

	var out bytes.Buffer
	require.Error(t, run(cfg, OutputText, "", &out))
}

func TestRenderUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, render(&out, "xml", nil, &config.DefaultConfig().Format))
}

func TestResolveDataDir(t *testing.T) {
	t.Setenv("DATA_DIR", "")

	got, err := resolveDataDir("", "")
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = resolveDataDir("", "bundle")
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(got))

	env := t.TempDir()
	t.Setenv("DATA_DIR", env)
	got, err = resolveDataDir("", "bundle")
	require.NoError(t, err)
	require.Equal(t, env, got)

	flagDir := t.TempDir()
	got, err = resolveDataDir(flagDir, "bundle")
	require.NoError(t, err)
	require.Equal(t, flagDir, got)
}
