package sensor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DefaultHwmonRoot is the kernel hardware-monitoring sysfs tree.
const DefaultHwmonRoot = "/sys/class/hwmon"

// ErrSensorNotFound means no hwmon backend/label pair matched a configured
// sensor. Fatal at startup: the service never starts with a partial set of
// sources.
var ErrSensorNotFound = errors.New("sensor not found")

// FindTempInput locates the temperature input file for a sensor name and
// channel label under root. A backend matches iff its name file's trimmed
// content equals sensorName exactly; within it, the first channel whose
// trimmed tempN_label equals labelName wins. Directory-listing order is
// filesystem-defined, so first-match is best-effort.
func FindTempInput(root, sensorName, labelName string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("read hwmon root %s: %w", root, err)
	}

	for _, entry := range entries {
		dir := filepath.Join(root, entry.Name())
		name, err := readTrimmed(filepath.Join(dir, "name"))
		if err != nil || name != sensorName {
			continue
		}
		files, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, f := range files {
			if !isLabelFile(f.Name()) {
				continue
			}
			label, err := readTrimmed(filepath.Join(dir, f.Name()))
			if err != nil || label != labelName {
				continue
			}
			input := strings.TrimSuffix(f.Name(), "_label") + "_input"
			return filepath.Join(dir, input), nil
		}
	}
	return "", fmt.Errorf("%w: sensor %q label %q", ErrSensorNotFound, sensorName, labelName)
}

// HwmonProvider reads millidegree values from one temp input file.
type HwmonProvider struct {
	path string
}

func NewHwmonProvider(path string) *HwmonProvider {
	return &HwmonProvider{path: path}
}

// Read returns the current temperature in °C.
func (p *HwmonProvider) Read(_ context.Context) (float64, error) {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", p.path, err)
	}
	milli, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", p.path, err)
	}
	return milli / 1000, nil
}

func (p *HwmonProvider) Describe() string {
	return "hwmon:" + p.path
}

// Channel is one temperature channel of a hwmon backend.
type Channel struct {
	ID    string // e.g. "temp1"
	Label string
	Input string   // full path to the input file
	Value *float64 // current reading in °C, nil when it could not be read
}

// Backend is one hwmon device with its discovered channels.
type Backend struct {
	Path     string
	Name     string
	Channels []Channel
}

// Catalog is a transient discovery result, rebuilt on every scan.
type Catalog []Backend

// ScanHwmon enumerates all hwmon backends under root with their
// temperature channels and current values. The scan is best-effort: a
// backend without a readable name file is skipped, a channel whose value
// cannot be read is listed with a nil Value.
func ScanHwmon(root string) (Catalog, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		log.Warnf("no hwmon directory at %s: %v", root, err)
		return nil, nil
	}

	var cat Catalog
	for _, entry := range entries {
		dir := filepath.Join(root, entry.Name())
		name, err := readTrimmed(filepath.Join(dir, "name"))
		if err != nil {
			continue
		}
		files, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		backend := Backend{Path: dir, Name: name}
		for _, f := range files {
			if !isLabelFile(f.Name()) {
				continue
			}
			label, err := readTrimmed(filepath.Join(dir, f.Name()))
			if err != nil {
				log.Warnf("failed to read label %s: %v", filepath.Join(dir, f.Name()), err)
				continue
			}
			ch := Channel{
				ID:    strings.TrimSuffix(f.Name(), "_label"),
				Label: label,
				Input: filepath.Join(dir, strings.TrimSuffix(f.Name(), "_label")+"_input"),
			}
			if raw, err := readTrimmed(ch.Input); err == nil {
				if milli, err := strconv.ParseFloat(raw, 64); err == nil {
					v := milli / 1000
					ch.Value = &v
				}
			}
			backend.Channels = append(backend.Channels, ch)
		}
		cat = append(cat, backend)
	}
	return cat, nil
}

func isLabelFile(name string) bool {
	return strings.HasPrefix(name, "temp") && strings.HasSuffix(name, "_label")
}

func readTrimmed(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}
