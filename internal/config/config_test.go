package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "streetsprint.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "normal", cfg.Game.Tier)
	assert.Len(t, cfg.Tiers, 3)
	assert.Equal(t, 0.06, cfg.Tuning.MaxDelta)
	assert.Equal(t, 405, cfg.Window.Width)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[game]
seed = 42
tier = "fast"
max_delta = 0.05

[[tiers]]
id = "slow"
label = "Slow"
speed_multiplier = 0.5
storage_key = "best-slow"

[[tiers]]
id = "fast"
label = "Fast"
speed_multiplier = 1.5
storage_key = "best-fast"

[tuning]
lanes = [-3.0, -1.0, 1.0, 3.0]
pickup_cap = 5

[logging]
level = "debug"
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.Equal(t, 0.05, cfg.Tuning.MaxDelta)
	require.Len(t, cfg.Tiers, 2)
	assert.Equal(t, 1, cfg.TierIndex("fast"))
	assert.Equal(t, 4, cfg.Tuning.LaneCount())
	assert.Equal(t, 5, cfg.Tuning.PickupCap)
	assert.Equal(t, 55.0, cfg.Tuning.StartSpeed, "untouched keys keep defaults")
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 405, cfg.Window.Width)
}

func TestPartialTierDoesNotInheritDefaults(t *testing.T) {
	path := writeConfig(t, `
[game]
tier = "turbo"

[[tiers]]
id = "turbo"
speed_multiplier = 2.0
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage")
}

func TestTiersDefaultWhenFileDefinesNone(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[game]\ntier = \"hard\"\n"))
	require.NoError(t, err)
	assert.Len(t, cfg.Tiers, 3)
	assert.Equal(t, 2, cfg.TierIndex("hard"))
}

func TestLoadMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	_, err := Load(missing)
	assert.Error(t, err)

	cfg, err := LoadOptional(missing)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	cases := map[string]string{
		"syntax":        "[game\n",
		"unknown tier":  "[game]\ntier = \"insane\"\n",
		"no lanes":      "[tuning]\nlanes = []\n",
		"volume":        "[audio]\nsfx_volume = 2.0\n",
		"format":        "[logging]\nformat = \"xml\"\n",
		"window":        "[window]\nwidth = 0\n",
		"dup tier keys": "[[tiers]]\nid = \"a\"\nspeed_multiplier = 1.0\nstorage_key = \"k\"\n[[tiers]]\nid = \"b\"\nspeed_multiplier = 1.0\nstorage_key = \"k\"\n[game]\ntier = \"a\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestSampleConfigLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", DefaultPath))
	require.NoError(t, err)
	assert.Equal(t, Default().Tuning, cfg.Tuning)
}
