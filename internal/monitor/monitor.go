package monitor

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/CristiGvl/antecDisplay/internal/display"
	"github.com/CristiGvl/antecDisplay/internal/frame"
	"github.com/CristiGvl/antecDisplay/internal/sensor"
)

// Interval between display refreshes.
const Interval = 500 * time.Millisecond

// Sender pushes one frame to the display.
type Sender interface {
	Send(frame.Frame) error
}

// Loop drives the display. Each tick, strictly in order: read CPU, read
// GPU, encode, attempt one send. Both frame fields always come from the
// same tick's readings.
type Loop struct {
	cpu      sensor.Provider
	gpu      sensor.Provider
	sender   Sender
	interval time.Duration
	status   *Status
}

func New(cpu, gpu sensor.Provider, sender Sender) *Loop {
	return &Loop{
		cpu:      cpu,
		gpu:      gpu,
		sender:   sender,
		interval: Interval,
		status:   &Status{},
	}
}

// Status returns the snapshot updated after every tick.
func (l *Loop) Status() *Status {
	return l.status
}

// Run blocks until ctx is cancelled. Every failure inside a tick is
// logged and the loop proceeds unchanged to the next fixed-interval tick;
// there are no retries and no backoff.
func (l *Loop) Run(ctx context.Context) error {
	log.Infof("monitoring %s and %s every %v", l.cpu.Describe(), l.gpu.Describe(), l.interval)
	for {
		l.tick(ctx)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.interval):
		}
	}
}

func (l *Loop) tick(ctx context.Context) {
	cpuTemp := l.read(ctx, "cpu", l.cpu)
	gpuTemp := l.read(ctx, "gpu", l.gpu)

	err := l.sender.Send(frame.Encode(cpuTemp, gpuTemp))
	switch {
	case err == nil:
	case errors.Is(err, display.ErrDeviceNotFound):
		log.Warn("display not attached, retrying next tick")
	case errors.Is(err, display.ErrEndpointNotFound):
		log.Error("display has no OUT endpoint, waiting for re-enumeration")
	case errors.Is(err, display.ErrWriteFailed):
		log.Errorf("%v, retrying next tick", err)
	default:
		log.Errorf("failed to send frame: %v", err)
	}
	l.status.record(cpuTemp, gpuTemp, err)
}

// read degrades to 0.0°C on failure so the display shows zero instead of
// the loop stalling.
func (l *Loop) read(ctx context.Context, which string, p sensor.Provider) float64 {
	t, err := p.Read(ctx)
	if err != nil {
		log.Warnf("failed to read %s temperature from %s: %v", which, p.Describe(), err)
		return 0.0
	}
	return t
}
