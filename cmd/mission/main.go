package main

import (
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opd-ai/unhaunter/pkg/config"
	"github.com/opd-ai/unhaunter/pkg/mission"
	"github.com/sirupsen/logrus"
)

// Mission driver configuration flags.
var (
	logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	seed     = flag.Int64("seed", 1, "RNG seed for the mission")
	ticks    = flag.Int("ticks", 0, "Number of ticks to run before exiting; 0 runs until a shutdown signal")
	tickRate = flag.Float64("tick-rate", 30.0, "Simulation ticks per second")
)

func main() {
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.WithError(err).Fatal("Invalid log level")
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	if err := config.Load(); err != nil {
		logrus.WithError(err).Fatal("Failed to load difficulty profile")
	}
	diff := config.Get()

	logrus.WithFields(logrus.Fields{
		"seed":      *seed,
		"tick_rate": *tickRate,
	}).Info("Starting headless mission driver")

	loader := newSyntheticLoader()
	lm, warnings, err := mission.LoadMap(loader, "synthetic")
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load synthetic map")
	}
	for _, w := range warnings {
		logrus.Warn(w.Message)
	}

	ghostClass := mission.RandomGhostClass(&diff, rand.New(rand.NewSource(*seed)))
	logrus.WithField("ghost_class", ghostClass.Name()).Info("Ghost class selected")

	audio := &logAudioSink{}
	render := &countingRenderSink{}

	m := mission.New(lm, &diff, ghostClass, audio, render, *seed)
	if len(lm.PlayerSpawns) == 0 {
		logrus.Fatal("Synthetic map produced no player spawn")
	}
	m.AddPlayer("p1", lm.PlayerSpawns[0])

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	dt := 1.0 / *tickRate
	period := time.Duration(dt * float64(time.Second))
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	var frame int
	for {
		select {
		case <-sigChan:
			logrus.Info("Shutdown signal received, stopping mission driver")
			report(m, frame, render)
			return
		case <-ticker.C:
			m.Tick(dt)
			frame++
			if frame%int(*tickRate*10) == 0 {
				logrus.WithFields(logrus.Fields{
					"frame":     frame,
					"exposure":  m.Fields.CurrentExposure,
					"despawned": m.Ghost.Despawned,
				}).Debug("mission tick checkpoint")
			}
			if *ticks > 0 && frame >= *ticks {
				logrus.Info("Tick budget reached, stopping mission driver")
				report(m, frame, render)
				return
			}
		}
	}
}

func report(m *mission.Mission, frame int, render *countingRenderSink) {
	logrus.WithFields(logrus.Fields{
		"frames_run":      frame,
		"tiles_written":   render.writes,
		"ghost_rage":      m.Ghost.Rage,
		"ghost_despawned": m.Ghost.Despawned,
	}).Info("Mission driver stopped")
}
