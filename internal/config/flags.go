package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagScenario     = flag.String("scenario", "", "Start directly with this scenario id")
	flagScenariosDir = flag.String("scenarios-dir", "", "Directory of scenario files")
	flagLogFile      = flag.String("log-file", "", "Write logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Debug.ShowPerformanceOverlay = true
	}
	if *flagScenario != "" {
		cfg.Game.ScenarioID = *flagScenario
	}
	if *flagScenariosDir != "" {
		cfg.Game.ScenariosPath = *flagScenariosDir
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
