package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagSeed       = flag.Uint64("seed", 0, "Egg placement seed (0 = random)")
	flagEggs       = flag.Int("eggs", 0, "Number of eggs to hide")
	flagMute       = flag.Bool("mute", false, "Disable sound effects")
	flagPlayerMesh = flag.String("player-mesh", "", "Player mesh file (.obj, .gltf, .glb)")
	flagEggMesh    = flag.String("egg-mesh", "", "Egg mesh file (.obj, .gltf, .glb)")
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
		cfg.Game.ShowFPS = true
	}
	if *flagSeed != 0 {
		cfg.Game.Seed = *flagSeed
	}
	if *flagEggs > 0 {
		cfg.Game.EggCount = *flagEggs
	}
	if *flagMute {
		cfg.Audio.Muted = true
	}
	if *flagPlayerMesh != "" {
		cfg.Assets.PlayerMesh = *flagPlayerMesh
	}
	if *flagEggMesh != "" {
		cfg.Assets.EggMesh = *flagEggMesh
	}
}
