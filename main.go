package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/shirou/gopsutil/v3/host"
	log "github.com/sirupsen/logrus"

	"github.com/CristiGvl/antecDisplay/api"
	"github.com/CristiGvl/antecDisplay/internal/config"
	"github.com/CristiGvl/antecDisplay/internal/display"
	"github.com/CristiGvl/antecDisplay/internal/monitor"
	"github.com/CristiGvl/antecDisplay/internal/platform"
	"github.com/CristiGvl/antecDisplay/internal/prompt"
	"github.com/CristiGvl/antecDisplay/internal/sensor"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", config.DefaultPath, "Path to the sensor configuration file")
	listen := flag.String("listen", "", "Optional address for the status HTTP API (e.g. 127.0.0.1:8080)")
	flag.Parse()

	// Check platform support
	if err := platform.ValidateSupport(); err != nil {
		log.Fatalf("Platform validation failed: %v", err)
	}

	if info, err := host.Info(); err == nil {
		log.Infof("Starting antecDisplay on %s (%s %s)", info.Hostname, info.Platform, info.KernelVersion)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg == nil {
		log.Infof("No configuration at %s, entering interactive sensor selection", *configPath)
	}

	resolver := &sensor.Resolver{
		Root:     sensor.DefaultHwmonRoot,
		Selector: prompt.Selector{},
		NVML:     sensor.NVMLAvailable(),
	}
	cpu, gpu, err := resolver.Resolve(cfg)
	if err != nil {
		log.Fatalf("Failed to resolve temperature sources: %v", err)
	}
	log.Infof("CPU source: %s", cpu.Describe())
	log.Infof("GPU source: %s", gpu.Describe())

	loop := monitor.New(cpu, gpu, display.New())

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		cancel()
	}()

	var server *api.Server
	if *listen != "" {
		server = api.NewServer(loop.Status())
		go func() {
			log.Infof("Starting status API on %s", *listen)
			if err := server.Start(*listen); err != nil {
				log.Errorf("Status API stopped: %v", err)
			}
		}()
	}

	log.Info("Starting temperature monitor")
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Errorf("Monitor stopped: %v", err)
	}

	if server != nil {
		if err := server.Shutdown(); err != nil {
			log.Errorf("Error during shutdown: %v", err)
		}
	}
}
