package sensor

import (
	"context"
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// NVMLAvailable reports whether the NVIDIA management library can be
// initialized on this machine. Probed once at startup and carried
// explicitly, never checked ad hoc inside the loop.
func NVMLAvailable() bool {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return false
	}
	nvml.Shutdown()
	return true
}

// NvidiaProvider reads the GPU temperature through NVML. The library is
// initialized and shut down on every read; at one read per tick a
// persistent session buys nothing and a fresh one survives driver
// restarts.
//
// Device index 0 is queried unconditionally. Multi-GPU machines are not
// distinguished.
type NvidiaProvider struct{}

func (NvidiaProvider) Read(_ context.Context) (float64, error) {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return 0, fmt.Errorf("nvml init: %s", nvml.ErrorString(ret))
	}
	defer nvml.Shutdown()

	dev, ret := nvml.DeviceGetHandleByIndex(0)
	if ret != nvml.SUCCESS {
		return 0, fmt.Errorf("nvml device 0: %s", nvml.ErrorString(ret))
	}
	temp, ret := dev.GetTemperature(nvml.TEMPERATURE_GPU)
	if ret != nvml.SUCCESS {
		return 0, fmt.Errorf("nvml temperature: %s", nvml.ErrorString(ret))
	}
	return float64(temp), nil
}

func (NvidiaProvider) Describe() string {
	return "nvml:gpu0"
}
