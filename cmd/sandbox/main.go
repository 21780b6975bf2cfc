// Package main is the entry point for the movement sandbox. It runs a
// scenario headlessly with a scripted input track and logs the agent's
// state, which makes it usable for soak runs and controller tuning
// without a renderer attached.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/haemwend/haemwend/internal/config"
	"github.com/haemwend/haemwend/internal/game"
	"github.com/haemwend/haemwend/internal/logger"
	"github.com/haemwend/haemwend/internal/scenario"
)

var flagSeconds = flag.Float64("seconds", 10, "Simulated seconds to run")

const frameRate = 60

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Haemwend Movement Sandbox ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	catalog := scenario.LoadCatalog(cfg.Game.ScenariosPath)

	def := &catalog.Scenarios[0]
	if cfg.Game.ScenarioID != "" {
		selected, ok := catalog.Select(cfg.Game.ScenarioID)
		if !ok {
			logger.Error("unknown scenario", zap.String("id", cfg.Game.ScenarioID))
			os.Exit(1)
		}
		def = selected
	}

	session := game.NewSession(cfg, def)
	run(session, *flagSeconds)

	logger.Info("sandbox run finished",
		zap.Float32("x", session.Kinematics().Position.X),
		zap.Float32("y", session.Kinematics().Position.Y),
		zap.Float32("z", session.Kinematics().Position.Z),
		zap.Float64("fps", session.Stats().FPS()),
	)
}

// run advances the session at a fixed rate with a scripted input
// track: walk ahead, weave with the turn keys and jump now and then so
// every controller path gets exercised.
func run(session *game.Session, seconds float64) {
	frames := int(seconds * frameRate)
	dt := float32(1.0 / frameRate)

	for frame := 0; frame < frames; frame++ {
		in := game.Input{Forward: true}

		switch (frame / frameRate) % 4 {
		case 1:
			in.TurnLeft = true
		case 3:
			in.TurnRight = true
		}
		in.Jump = frame%(5*frameRate) == 0 && frame > 0
		in.Sprint = (frame/frameRate)%8 >= 6

		session.Advance(in, dt)

		if frame%frameRate == 0 {
			k := session.Kinematics()
			logger.Sugar.Infow("agent state",
				"t", frame/frameRate,
				"x", k.Position.X,
				"y", k.Position.Y,
				"z", k.Position.Z,
				"grounded", k.Grounded,
				"yaw", session.Yaw(),
			)
		}
	}

	logger.Sugar.Infow("frame stats", "overlay", session.Stats().Text())
}
