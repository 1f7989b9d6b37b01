package cmd

import (
	"encoding/json"
	"testing"
)

func TestExact(t *testing.T) {
	t.Run("case and whitespace insensitive", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("exact", "  VITAMIN c   Serum ")
		env.contains(out, "Vitamin C Serum")
		env.contains(out, "s1")
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("exact", "-o", "json", "Clay Mask")
		var p struct {
			ID       string `json:"id"`
			Category string `json:"category"`
		}
		if err := json.Unmarshal([]byte(out), &p); err != nil {
			t.Fatalf("exact JSON output: %v\noutput: %s", err, out)
		}
		if p.ID != "m1" || p.Category != "Face" {
			t.Errorf("exact(Clay Mask) = %+v, want m1/Face", p)
		}
	})

	t.Run("prefix is not exact", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("exact", "Vitamin")
		if err == nil {
			t.Error("exact(Vitamin) = nil, want error")
		}
		env.contains(out, "no product named")
	})
}
