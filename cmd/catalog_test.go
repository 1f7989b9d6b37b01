package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCatalog(t *testing.T) {
	t.Run("lists all products", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("catalog")
		for _, name := range []string{"Rose Lip Gloss", "Berry Lip Gloss", "Cleansing Balm", "Vitamin C Serum", "Clay Mask"} {
			env.contains(out, name)
		}
		env.contains(out, "[best seller]")
		env.contains(out, "[new]")
	})

	t.Run("category filter", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("catalog", "-c", "lips")
		env.contains(out, "Rose Lip Gloss")
		env.contains(out, "Berry Lip Gloss")
		env.notContains(out, "Clay Mask")
	})

	t.Run("categories listing", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("catalog", "--categories")
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 2 || lines[0] != "Face" || lines[1] != "Lips" {
			t.Errorf("catalog --categories = %v, want [Face Lips]", lines)
		}
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		env := newTestEnv(t)

		dup := filepath.Join(env.dir, "dup.json")
		if err := os.WriteFile(dup, []byte(`[
  {"id": "x1", "name": "First"},
  {"id": "x1", "name": "Second"}
]`), 0644); err != nil {
			t.Fatalf("writing catalog fixture: %v", err)
		}

		out, err := env.runErr("catalog", "--catalog", dup)
		if err == nil {
			t.Error("catalog with duplicate ids = nil, want error")
		}
		env.contains(out, `duplicate product id "x1"`)
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("catalog", "-o", "json")
		var products []struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal([]byte(out), &products); err != nil {
			t.Fatalf("catalog JSON output: %v\noutput: %s", err, out)
		}
		if len(products) != 5 {
			t.Errorf("catalog JSON = %d products, want 5", len(products))
		}
	})
}
