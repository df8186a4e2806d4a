package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/playloop/action/internal/loopconfig"
	"github.com/playloop/action/pkg/action"
	"github.com/playloop/action/pkg/logging"
	"github.com/playloop/action/pkg/loop"
	"github.com/playloop/action/pkg/script"
	"github.com/sirupsen/logrus"
)

func main() {
	config, err := loopconfig.New()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	log := logrus.New()
	log.SetLevel(config.LogLevel)
	if config.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(logging.NewTextFormatter())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Info("Received shutdown signal")
		cancel()
	}()

	manager := action.NewManager(log)

	if config.ScriptPath != "" {
		if err := registerScript(manager, config.ScriptPath, log); err != nil {
			log.WithError(err).Fatal("Failed to load action script")
		}
	} else {
		registerDemoScene(manager, log)
	}

	runner, err := loop.NewRunner(loop.Config{
		Manager:      manager,
		Logger:       log,
		TickInterval: config.TickInterval,
		StopWhenIdle: true,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create runner")
	}

	if err := runner.Run(ctx); err != nil && err != context.Canceled {
		log.WithError(err).Fatal("Action loop stopped with error")
	}

	log.Info("Demo complete")
}

// registerScript loads a YAML script with a small set of demo bindings.
func registerScript(manager *action.Manager, path string, log *logrus.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	s, err := script.Load(data, script.Bindings{
		Funcs: map[string]func(){
			"announce": func() { log.WithField("action", "announce").Info("Script checkpoint") },
		},
		Flags: map[string]*bool{},
	})
	if err != nil {
		return err
	}

	s.Register(manager)
	log.WithField("name", s.Name).Info("Script registered")
	return nil
}

// registerDemoScene builds a small hand-wired scene: a title card, a pause,
// and a screen that waits for either a timeout or three clicks, whichever
// comes first.
func registerDemoScene(manager *action.Manager, log *logrus.Logger) {
	clicks := 0

	title := action.NewSequence(
		action.NewCall(func() { log.Info("Title card up") }),
		action.NewDelay(1.0),
		action.NewCall(func() { log.Info("Title card down") }),
	)

	skippable := action.NewWaitAny(
		action.NewDelay(3.0),
		action.NewCondition(&clicks, 3),
	)

	scene := action.NewSequence(
		title,
		skippable,
		action.NewCall(func() { log.Info("Scene finished") }),
	)
	scene.AddOnEvent(func(a action.Action, event action.Event) {
		log.WithFields(logrus.Fields{
			"event":  event.String(),
			"status": a.Status().String(),
		}).Debug("Scene transition")
	})

	manager.Start("intro", scene)
}
