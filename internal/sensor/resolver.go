package sensor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CristiGvl/antecDisplay/internal/config"
)

var (
	// ErrNoSensors means interactive discovery found no hwmon backends
	// at all. Fatal at startup.
	ErrNoSensors = errors.New("no hwmon sensors found")

	// ErrNVMLUnavailable means the configuration requests the nvidia
	// backend but NVML could not be initialized. Fatal at startup.
	ErrNVMLUnavailable = errors.New("NVML unavailable")
)

// GPUChoice is a Selector's answer for the GPU source: either the NVML
// backend or a hwmon input path.
type GPUChoice struct {
	Nvidia bool
	Path   string
}

// Selector chooses temperature sources when no configuration pins them.
// The production implementation prompts on the terminal; tests script it.
type Selector interface {
	// SelectCPU returns the temp input path of the chosen channel.
	SelectCPU(cat Catalog) (string, error)

	// SelectGPU picks the GPU source. nvidia tells the selector whether
	// the NVML backend may be offered at all.
	SelectGPU(cat Catalog, nvidia bool) (GPUChoice, error)
}

// Resolver turns configuration (or interactive discovery) into a pair of
// read-ready providers.
type Resolver struct {
	Root     string // hwmon root, DefaultHwmonRoot in production
	Selector Selector
	NVML     bool // NVML availability, probed once at startup
}

// Resolve produces the CPU and GPU providers, in that order. Any failure
// leaves no partial state; the caller aborts.
func (r *Resolver) Resolve(cfg *config.Config) (Provider, Provider, error) {
	if cfg != nil {
		return r.resolveFromConfig(cfg)
	}
	return r.resolveInteractive()
}

func (r *Resolver) resolveFromConfig(cfg *config.Config) (Provider, Provider, error) {
	cpuPath, err := FindTempInput(r.Root, cfg.CPU.Sensor, cfg.CPU.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("cpu: %w", err)
	}
	cpu := NewHwmonProvider(cpuPath)

	if strings.EqualFold(cfg.GPU.Sensor, "nvidia") {
		if !r.NVML {
			return nil, nil, fmt.Errorf("%w: configuration requests the nvidia sensor", ErrNVMLUnavailable)
		}
		return cpu, NvidiaProvider{}, nil
	}

	gpuPath, err := FindTempInput(r.Root, cfg.GPU.Sensor, cfg.GPU.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("gpu: %w", err)
	}
	return cpu, NewHwmonProvider(gpuPath), nil
}

func (r *Resolver) resolveInteractive() (Provider, Provider, error) {
	cat, err := ScanHwmon(r.Root)
	if err != nil {
		return nil, nil, err
	}
	if len(cat) == 0 {
		return nil, nil, ErrNoSensors
	}

	cpuPath, err := r.Selector.SelectCPU(cat)
	if err != nil {
		return nil, nil, fmt.Errorf("cpu selection: %w", err)
	}
	choice, err := r.Selector.SelectGPU(cat, r.NVML)
	if err != nil {
		return nil, nil, fmt.Errorf("gpu selection: %w", err)
	}

	cpu := NewHwmonProvider(cpuPath)
	if choice.Nvidia {
		return cpu, NvidiaProvider{}, nil
	}
	return cpu, NewHwmonProvider(choice.Path), nil
}
