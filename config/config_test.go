package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STATIC_DIR", "")
	t.Setenv("DB_PATH", "")
	c, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if c.Port != 9080 || c.StaticDir != "./static" || c.DBPath != "portfolio.db" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DISCORD_WEBHOOK", "http://hook")
	c, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if c.Port != 8081 || c.DiscordWebhook != "http://hook" {
		t.Fatalf("overrides not applied: %+v", c)
	}

	t.Setenv("PORT", "http")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for non-numeric PORT")
	}
}

func TestGetEnvVariable(t *testing.T) {
	if _, err := GetEnvVariable(""); err == nil {
		t.Fatal("expected error for empty name")
	}
	t.Setenv("RESUME_SITE_TEST", "x")
	if v, err := GetEnvVariable("RESUME_SITE_TEST"); err != nil || v != "x" {
		t.Fatalf("got %q, %v", v, err)
	}
}

func TestGetEnvFallsBack(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STATIC_DIR", "")
	t.Setenv("DB_PATH", "/data/site.db")
	c, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if c.StaticDir != "./static" || c.DBPath != "/data/site.db" {
		t.Fatalf("StaticDir=%q DBPath=%q", c.StaticDir, c.DBPath)
	}
}

func TestParseTuningOverlaysDefaults(t *testing.T) {
	tu, err := ParseTuning([]byte("lava:\n  base_count: 3\n  max_vx: 0.2\nconstellation:\n  count: 40\n"))
	if err != nil {
		t.Fatal(err)
	}
	if tu.Lava.BaseCount != 3 || tu.Lava.MaxVX != 0.2 {
		t.Fatalf("lava overrides not applied: %+v", tu.Lava)
	}
	if tu.Lava.SizeMin != DefaultTuning().Lava.SizeMin {
		t.Fatalf("untouched key lost its default")
	}
	if tu.Constellation.Count != 40 || tu.Constellation.ConnectDistance != 200 {
		t.Fatalf("constellation = %+v", tu.Constellation)
	}
}

func TestParseTuningRejectsInvalid(t *testing.T) {
	cases := []string{
		"lava:\n  size_min: 0\n",
		"aurora:\n  max_vy_up: -1\n",
		"constellation:\n  damping: 1.5\n",
		"lava: [",
	}
	for _, c := range cases {
		if _, err := ParseTuning([]byte(c)); err == nil {
			t.Errorf("ParseTuning(%q) succeeded, want error", c)
		}
	}
}

func TestLoadTuningEmptyPath(t *testing.T) {
	tu, err := LoadTuning("")
	if err != nil {
		t.Fatal(err)
	}
	if tu.Aurora.Flow != DefaultTuning().Aurora.Flow {
		t.Fatal("empty path should give defaults")
	}
}

func TestWatchTuningReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("lava:\n  base_count: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := WatchTuning(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("lava:\n  base_count: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case tu := <-w.Updates:
		if tu.Lava.BaseCount != 9 {
			t.Fatalf("reloaded base_count = %d, want 9", tu.Lava.BaseCount)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	w.Close()
}
