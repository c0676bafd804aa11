package platform

import (
	"fmt"
	"runtime"
)

// GetOS returns the current operating system
func GetOS() string {
	return runtime.GOOS
}

// ValidateSupport returns an error unless running on Linux; the hwmon
// sysfs tree and usbfs kernel-driver detachment exist nowhere else.
func ValidateSupport() error {
	if runtime.GOOS != "linux" {
		return fmt.Errorf("unsupported operating system: %s (linux only)", runtime.GOOS)
	}
	return nil
}
