// Package display drives the Antec digital display over its USB HID
// endpoint.
package display

import (
	"errors"
	"fmt"

	"github.com/google/gousb"

	"github.com/CristiGvl/antecDisplay/internal/frame"
)

// USB identity of the display, fixed by the hardware.
const (
	VendorID  gousb.ID = 0x2022
	ProductID gousb.ID = 0x0522
)

var (
	// ErrDeviceNotFound means no display is attached. The caller retries
	// on the next tick.
	ErrDeviceNotFound = errors.New("display device not found")

	// ErrEndpointNotFound means the attached device exposes no OUT
	// endpoint on interface (0,0). Sends cannot succeed until the device
	// re-enumerates.
	ErrEndpointNotFound = errors.New("display device has no OUT endpoint")

	// ErrWriteFailed wraps a transport-level write error. The caller
	// retries on the next tick.
	ErrWriteFailed = errors.New("display write failed")
)

// Transport sends frames to the display. It keeps no open handle: the
// device is acquired and fully released on every send, so a replugged
// display recovers on the next tick without restarting the service.
type Transport struct{}

func New() *Transport {
	return &Transport{}
}

// Send writes one frame to the display's OUT endpoint. The device is
// located by VID/PID, any kernel driver on interface 0 is detached, and
// the first OUT endpoint of configuration 1 interface (0,0) receives the
// 12 bytes. All claimed resources are released before returning.
func (t *Transport) Send(f frame.Frame) error {
	ctx := gousb.NewContext()
	defer ctx.Close()
	ctx.Debug(0)

	dev, err := ctx.OpenDeviceWithVIDPID(VendorID, ProductID)
	if err != nil {
		return fmt.Errorf("open display device: %w", err)
	}
	if dev == nil {
		return ErrDeviceNotFound
	}
	defer dev.Close()

	if err := dev.SetAutoDetach(true); err != nil {
		return fmt.Errorf("detach kernel driver: %w", err)
	}

	cfg, err := dev.Config(1)
	if err != nil {
		return fmt.Errorf("claim configuration: %w", err)
	}
	defer cfg.Close()

	intf, err := cfg.Interface(0, 0)
	if err != nil {
		return fmt.Errorf("claim interface: %w", err)
	}
	defer intf.Close()

	var out *gousb.EndpointDesc
	for _, ep := range intf.Setting.Endpoints {
		if ep.Direction == gousb.EndpointDirectionOut {
			desc := ep
			out = &desc
			break
		}
	}
	if out == nil {
		return ErrEndpointNotFound
	}

	ep, err := intf.OutEndpoint(out.Number)
	if err != nil {
		return fmt.Errorf("open OUT endpoint %d: %w", out.Number, err)
	}
	if _, err := ep.Write(f[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}
