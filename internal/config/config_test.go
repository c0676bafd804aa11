package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sensors.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	require := require.New(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.conf"))
	require.NoError(err)
	require.Nil(cfg)
}

func TestLoadComplete(t *testing.T) {
	require := require.New(t)

	path := writeConf(t, `
[cpu]
sensor = asusec
name = CPU

[gpu]
sensor = amdgpu
name = edge
`)
	cfg, err := Load(path)
	require.NoError(err)
	require.NotNil(cfg)
	require.Equal(SensorSpec{Sensor: "asusec", Name: "CPU"}, cfg.CPU)
	require.Equal(SensorSpec{Sensor: "amdgpu", Name: "edge"}, cfg.GPU)
}

func TestLoadIncompleteFallsBack(t *testing.T) {
	require := require.New(t)

	// gpu section missing entirely
	path := writeConf(t, `
[cpu]
sensor = asusec
name = CPU
`)
	cfg, err := Load(path)
	require.NoError(err)
	require.Nil(cfg)

	// cpu label missing
	path = writeConf(t, `
[cpu]
sensor = asusec

[gpu]
sensor = amdgpu
name = edge
`)
	cfg, err = Load(path)
	require.NoError(err)
	require.Nil(cfg)
}

func TestLoadNvidiaNeedsNoLabel(t *testing.T) {
	require := require.New(t)

	path := writeConf(t, `
[cpu]
sensor = k10temp
name = Tctl

[gpu]
sensor = Nvidia
`)
	cfg, err := Load(path)
	require.NoError(err)
	require.NotNil(cfg)
	require.Equal("Nvidia", cfg.GPU.Sensor)
	require.Empty(cfg.GPU.Name)
}

func TestLoadMalformed(t *testing.T) {
	require := require.New(t)

	path := writeConf(t, "[cpu\nsensor asusec")
	cfg, err := Load(path)
	require.Error(err)
	require.Nil(cfg)
}
