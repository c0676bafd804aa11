package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// DefaultPath is where the sensor configuration is looked up.
const DefaultPath = "/etc/antec/sensors.conf"

// SensorSpec names a hwmon backend (by the content of its name file) and
// the channel label to search for within it.
type SensorSpec struct {
	Sensor string
	Name   string
}

// Config pins both temperature sources. GPU.Sensor may be the literal
// "nvidia" (any case) to select the NVML backend instead of hwmon, in
// which case GPU.Name is ignored.
type Config struct {
	CPU SensorSpec
	GPU SensorSpec
}

// Load reads the sensor configuration file. A missing file, or a file
// without both sections complete, yields (nil, nil) and the caller falls
// back to interactive discovery. A file that cannot be parsed is an error.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := &Config{
		CPU: SensorSpec{
			Sensor: f.Section("cpu").Key("sensor").String(),
			Name:   f.Section("cpu").Key("name").String(),
		},
		GPU: SensorSpec{
			Sensor: f.Section("gpu").Key("sensor").String(),
			Name:   f.Section("gpu").Key("name").String(),
		},
	}
	if !cfg.complete() {
		return nil, nil
	}
	return cfg, nil
}

func (c *Config) complete() bool {
	if c.CPU.Sensor == "" || c.CPU.Name == "" || c.GPU.Sensor == "" {
		return false
	}
	// the nvidia backend has no hwmon label to name
	return c.GPU.Name != "" || strings.EqualFold(c.GPU.Sensor, "nvidia")
}
