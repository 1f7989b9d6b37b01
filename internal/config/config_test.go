package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnl-au/glint/internal/config"
	"github.com/mnl-au/glint/internal/search"
)

// setGlintDir points the global scope at a temp directory for the test.
func setGlintDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("GLINT_DIR", dir)
	return dir
}

func TestDefaults(t *testing.T) {
	setGlintDir(t)

	cfg, err := config.LoadScope(config.ScopeGlobal)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.MaxResults())
	assert.Equal(t, 2, cfg.MinQueryLength())
	assert.Equal(t, 300, cfg.DebounceMs())
	assert.True(t, cfg.Fuzzy())
	assert.Empty(t, cfg.CatalogPath())
	assert.Equal(t, search.DefaultConfig().Fields, cfg.Fields())
}

func TestSearchConfigAssembly(t *testing.T) {
	setGlintDir(t)

	cfg, err := config.LoadScope(config.ScopeGlobal)
	require.NoError(t, err)
	require.NoError(t, cfg.Set("search.max_results", "5"))
	require.NoError(t, cfg.Set("search.debounce_ms", "50"))
	require.NoError(t, cfg.Set("search.fuzzy", "false"))
	require.NoError(t, cfg.Set("search.fields", "name, category"))

	sc := cfg.SearchConfig()
	assert.Equal(t, 5, sc.MaxResults)
	assert.Equal(t, 2, sc.MinQueryLength)
	assert.Equal(t, 50*time.Millisecond, sc.Debounce)
	assert.False(t, sc.EnableFuzzy)
	assert.Equal(t, []search.Field{search.FieldName, search.FieldCategory}, sc.Fields)
	assert.NoError(t, sc.Validate())
}

func TestSaveAndReload(t *testing.T) {
	dir := setGlintDir(t)

	cfg, err := config.LoadScope(config.ScopeGlobal)
	require.NoError(t, err)
	require.NoError(t, cfg.Set("catalog.path", "products.json"))
	require.NoError(t, cfg.Set("search.max_results", "7"))
	require.NoError(t, cfg.Save())

	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	loaded, err := config.LoadScope(config.ScopeGlobal)
	require.NoError(t, err)
	assert.Equal(t, "products.json", loaded.CatalogPath())
	assert.Equal(t, 7, loaded.MaxResults())
	assert.Equal(t, 300, loaded.DebounceMs(), "unset keys keep their defaults")
	assert.True(t, loaded.IsSet("search.max_results"))
	assert.False(t, loaded.IsSet("search.debounce_ms"))
}

func TestLocalOverridesGlobal(t *testing.T) {
	setGlintDir(t)

	work := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	global, err := config.LoadScope(config.ScopeGlobal)
	require.NoError(t, err)
	require.NoError(t, global.Set("search.max_results", "7"))
	require.NoError(t, global.Save())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.ScopeGlobal, cfg.Scope())
	assert.Equal(t, 7, cfg.MaxResults())

	local, err := config.LoadScope(config.ScopeLocal)
	require.NoError(t, err)
	require.NoError(t, local.Set("search.max_results", "3"))
	require.NoError(t, local.Save())

	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.ScopeLocal, cfg.Scope())
	assert.Equal(t, 3, cfg.MaxResults())
}

func TestMalformedConfigRejected(t *testing.T) {
	dir := setGlintDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0644))

	_, err := config.LoadScope(config.ScopeGlobal)
	assert.Error(t, err)
}

func TestOutOfBoundsRejected(t *testing.T) {
	dir := setGlintDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("search:\n  max_results: 0\n"), 0644))

	_, err := config.LoadScope(config.ScopeGlobal)
	assert.ErrorIs(t, err, config.ErrInvalidValue)
}

func TestKeyAccess(t *testing.T) {
	setGlintDir(t)

	cfg, err := config.LoadScope(config.ScopeGlobal)
	require.NoError(t, err)

	_, err = cfg.Get("bogus.key")
	assert.ErrorIs(t, err, config.ErrUnknownKey)
	assert.ErrorIs(t, cfg.Set("bogus.key", "x"), config.ErrUnknownKey)
	assert.ErrorIs(t, cfg.Set("search.fuzzy", "maybe"), config.ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("search.fields", "sku"), config.ErrInvalidValue)

	require.NoError(t, cfg.Set("search.fuzzy", "false"))
	got, err := cfg.Get("search.fuzzy")
	require.NoError(t, err)
	assert.Equal(t, "false", got)

	all := cfg.All()
	assert.Len(t, all, len(config.ValidKeys()))
	for _, key := range config.ValidKeys() {
		assert.Contains(t, all, key)
	}
}
