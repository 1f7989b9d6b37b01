package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigCommand(t *testing.T) {
	t.Run("set then get", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config", "search.max_results", "5")
		env.contains(out, "search.max_results = 5 (global)")

		out = env.run("config", "search.max_results")
		env.contains(out, "5")
	})

	t.Run("list shows all keys", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config")
		env.contains(out, "catalog.path:")
		env.contains(out, "search.max_results:")
		env.contains(out, "search.fuzzy:")
	})

	t.Run("set affects search", func(t *testing.T) {
		env := newTestEnv(t)

		env.run("config", "search.max_results", "1")
		out := env.run("search", "gloss")
		env.contains(out, "Berry Lip Gloss")
		env.notContains(out, "Rose Lip Gloss")
	})

	t.Run("local scope", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config", "--local", "search.fuzzy", "false")
		env.contains(out, "search.fuzzy = false (local)")

		if _, err := os.Stat(filepath.Join(env.dir, ".glint", "config.yaml")); err != nil {
			t.Errorf("local config file not written: %v", err)
		}

		// Local takes precedence over global on subsequent loads.
		out = env.run("config", "search.fuzzy")
		env.contains(out, "false")
	})

	t.Run("unknown key", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("config", "no.such.key")
		if err == nil {
			t.Error("config get unknown key = nil, want error")
		}
		env.contains(out, "unknown config key")
	})

	t.Run("invalid value", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("config", "search.max_results", "0")
		if err == nil {
			t.Error("config set out-of-range = nil, want error")
		}
		env.contains(out, "invalid config value")
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config", "-o", "json", "search.min_query_length")
		env.contains(out, `{"search.min_query_length":"2"}`)
	})
}
