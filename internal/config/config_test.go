package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "hunt.db", cfg.DBPath)
	assert.Equal(t, 5*time.Second, cfg.GeocoderTimeout)
	assert.Equal(t, "fs", cfg.ExportBackend)
	assert.Equal(t, "exports", cfg.ExportDir)
	assert.Nil(t, cfg.DeviceLat)
	assert.Nil(t, cfg.DeviceLon)
}

func TestParseJson_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"db_path": "other.db",
		"device_lat": 43.65,
		"device_lon": -79.38,
		"geocoder_timeout": "10s",
		"export_backend": "s3",
		"s3_bucket": "hunts"
	}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"streethunt", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "other.db", cfg.DBPath)
	require.NotNil(t, cfg.DeviceLat)
	assert.InDelta(t, 43.65, *cfg.DeviceLat, 1e-9)
	require.NotNil(t, cfg.DeviceLon)
	assert.InDelta(t, -79.38, *cfg.DeviceLon, 1e-9)
	assert.Equal(t, 10*time.Second, cfg.GeocoderTimeout)
	assert.Equal(t, "s3", cfg.ExportBackend)
	assert.Equal(t, "hunts", cfg.S3Bucket)
	// untouched keys keep their defaults
	assert.Equal(t, "exports", cfg.ExportDir)
}

func TestParseJson_NoFileFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"streethunt"}
	t.Cleanup(func() { os.Args = oldArgs })

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)
	assert.Equal(t, "hunt.db", cfg.DBPath)
}

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	// negative values need the equals form so they are not mistaken for flags
	os.Args = []string{"streethunt", "-d", "flags.db", "-lat", "43.1", "-lon=-79.2"}
	t.Cleanup(func() { os.Args = oldArgs })

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "flags.db", cfg.DBPath)
	require.NotNil(t, cfg.DeviceLat)
	assert.InDelta(t, 43.1, *cfg.DeviceLat, 1e-9)
	require.NotNil(t, cfg.DeviceLon)
	assert.InDelta(t, -79.2, *cfg.DeviceLon, 1e-9)
}

func TestParseFlags_PositionStaysUnknownWithoutFlags(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"streethunt", "-d", "flags.db"}
	t.Cleanup(func() { os.Args = oldArgs })

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Nil(t, cfg.DeviceLat)
	assert.Nil(t, cfg.DeviceLon)
}
