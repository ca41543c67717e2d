package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, Default().PreferredVDA, cfg.PreferredVDA)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "varioc.yaml")
	err := os.WriteFile(path, []byte("can_port: /dev/ttyUSB0\npreferred_vda: 5\n"), 0o644)
	assert.NoError(t, err)

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB0", cfg.CanPort)
	assert.Equal(t, uint16(5), cfg.PreferredVDA)
	assert.Equal(t, Default().NmeaBaud, cfg.NmeaBaud)
}

func TestDispatcherRanges(t *testing.T) {
	cfg := Config{LegacyRanges: []Range{{Low: 0x100, High: 0x1FF}}}
	ranges := cfg.DispatcherRanges()
	assert.Len(t, ranges, 1)
	assert.Equal(t, uint16(0x100), ranges[0].Low)
	assert.Equal(t, uint16(0x1FF), ranges[0].High)
}
