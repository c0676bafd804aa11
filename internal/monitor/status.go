package monitor

import (
	"sync"
	"time"
)

// Status holds the outcome of the last completed tick. The loop writes
// it, the HTTP API reads it.
type Status struct {
	mu       sync.Mutex
	cpu, gpu float64
	lastSend time.Time
	sendErr  error
	ticks    uint64
}

func (s *Status) record(cpu, gpu float64, sendErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cpu = cpu
	s.gpu = gpu
	s.sendErr = sendErr
	s.ticks++
	if sendErr == nil {
		s.lastSend = time.Now()
	}
}

// Snapshot is a copy of the loop state at one point in time.
type Snapshot struct {
	CPU       float64   `json:"cpu_celsius"`
	GPU       float64   `json:"gpu_celsius"`
	LastSend  time.Time `json:"last_send,omitempty"`
	SendError string    `json:"send_error,omitempty"`
	Ticks     uint64    `json:"ticks"`
}

func (s *Status) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		CPU:      s.cpu,
		GPU:      s.gpu,
		LastSend: s.lastSend,
		Ticks:    s.ticks,
	}
	if s.sendErr != nil {
		snap.SendError = s.sendErr.Error()
	}
	return snap
}
