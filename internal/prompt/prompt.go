// Package prompt implements interactive sensor selection on the
// terminal, used when no configuration file pins the sources.
package prompt

import (
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/CristiGvl/antecDisplay/internal/sensor"
)

// Selector asks the user to pick temperature sources from the discovered
// hwmon catalog.
type Selector struct{}

var _ sensor.Selector = Selector{}

func (Selector) SelectCPU(cat sensor.Catalog) (string, error) {
	return pickChannel("Select the CPU temperature source", cat)
}

func (Selector) SelectGPU(cat sensor.Catalog, nvidia bool) (sensor.GPUChoice, error) {
	if nvidia {
		confirm := promptui.Select{
			Label: "Use the NVIDIA GPU sensor (NVML)?",
			Items: []string{"yes", "no"},
		}
		_, answer, err := confirm.Run()
		if err != nil {
			return sensor.GPUChoice{}, err
		}
		if answer == "yes" {
			return sensor.GPUChoice{Nvidia: true}, nil
		}
	}
	path, err := pickChannel("Select the GPU temperature source", cat)
	if err != nil {
		return sensor.GPUChoice{}, err
	}
	return sensor.GPUChoice{Path: path}, nil
}

// pickChannel runs the two-step backend/channel selection and returns the
// chosen channel's input path.
func pickChannel(label string, cat sensor.Catalog) (string, error) {
	backends := make([]string, len(cat))
	for i, b := range cat {
		backends[i] = fmt.Sprintf("%s (%s)", b.Name, b.Path)
	}
	pick := promptui.Select{Label: label, Items: backends, Size: 10}
	idx, _, err := pick.Run()
	if err != nil {
		return "", err
	}

	backend := cat[idx]
	if len(backend.Channels) == 0 {
		return "", fmt.Errorf("%s exposes no temperature channels", backend.Name)
	}

	channels := make([]string, len(backend.Channels))
	for i, ch := range backend.Channels {
		channels[i] = fmt.Sprintf("%s (%s) - %s", ch.Label, ch.ID, formatValue(ch.Value))
	}
	pick = promptui.Select{Label: "Select a temperature channel", Items: channels, Size: 10}
	idx, _, err = pick.Run()
	if err != nil {
		return "", err
	}
	return backend.Channels[idx].Input, nil
}

func formatValue(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f°C", *v)
}
