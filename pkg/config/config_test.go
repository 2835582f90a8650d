package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tj/assert"
)

func TestParseBool(t *testing.T) {
	cases := map[string]struct {
		s         string
		want      bool
		expectErr bool
	}{
		"Yes":       {s: "yes", want: true},
		"Y":         {s: "y", want: true},
		"One":       {s: "1", want: true},
		"TrueUpper": {s: "TRUE", want: true},
		"No":        {s: "no", want: false},
		"F":         {s: "f", want: false},
		"Zero":      {s: "0", want: false},
		"Padded":    {s: " t ", want: true},
		"Garbage":   {s: "maybe", expectErr: true},
		"Empty":     {s: "", expectErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseBool(tc.s)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
overlapRatio: 0.5
log:
  level: debug
  file: /tmp/resolve.log
  console: "no"
`)
	assert.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 0.5, cfg.OverlapRatio)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/resolve.log", cfg.Log.File)
	assert.False(t, cfg.Log.Console.Bool())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalidRatio(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("overlapRatio: 1.5\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
