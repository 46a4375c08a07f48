// Package config provides tuning profile management for the maze-chase game.
//
// The config package handles:
//   - Loading tuning profiles from JSON files
//   - Profile validation via engine.ValidateGameConfig
//   - Default profile selection
//   - Profile discovery and listing
//
// Profile Format:
//
// Profiles are stored as JSON files in the configs directory. Each profile
// sets actor speeds, centring tolerances, starting lives, the pickup reward,
// the collision radius, opponent aggressiveness and an optional random seed.
// The maze itself is built in and cannot be changed by a profile.
//
// Available Profiles:
//   - classic: the arcade defaults (three lives, aggressiveness 3)
//   - easy: more lives, slower and more wandering ghosts
//   - hard: a single life and ghosts that always chase
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific profile
//	gameConfig, err := manager.LoadConfig("easy")
//
//	// Get default profile
//	defaultConfig := manager.GetDefault()
//
//	// List available profiles
//	configs, err := manager.ListConfigs()
//
// The default is classic.json when present, otherwise the first valid
// profile in the directory, otherwise engine.DefaultConfig.
package config
