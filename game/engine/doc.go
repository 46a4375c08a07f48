// Package engine provides the core game logic for the Charminar maze-chase game.
//
// The engine package implements the game mechanics including:
//   - Tile-grid maze parsing with spawn extraction and consumable counting
//   - Continuous movement on top of the discrete grid with wall sliding
//   - Turn buffering that commits only at tile centres
//   - Opponent steering biased toward the player
//   - Score, lives, win/loss detection and full restart
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState holds everything the engine mutates
// during a step, while GameConfig carries the tuning values (speeds,
// centring tolerances, lives, reward, pursuit aggressiveness) loaded from
// JSON profiles. The maze itself is fixed at build time (see DefaultLayout).
//
// Usage:
//
//	gameEngine, err := engine.NewEngine(engine.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine.SetPendingHeading(engine.Up)
//	events := gameEngine.Step(engine.FixedStep)
//	state := gameEngine.GetState()
//
// Game Rules:
//
// The player eats every consumable in the maze while four opponents chase
// it. Touching an opponent costs a life and sends the opponents back to
// their spawns. The session ends when the maze is cleared or the last life
// is lost; after that Step is a no-op until Restart is called.
//
// Step is not safe for concurrent use. Hosts that deliver input from other
// goroutines should go through the session package.
package engine
