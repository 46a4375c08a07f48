// Package service provides the business logic layer for the maze-chase game.
//
// The service package implements:
//   - Session creation on top of a SessionManager
//   - Tuning profile lookup through a ConfigManager
//   - Headless simulation with an autopilot player
//   - Concurrent simulation batches
//
// Core Interfaces:
//
// GameService is the main service interface used by the CLI.
// SessionManager stores sessions; session.Manager satisfies it.
// ConfigManager loads tuning profiles; config.Manager satisfies it.
//
// Simulation:
//
// Simulate creates a session under a fresh UUID, drives it through
// session.Run with an Autopilot and a tick channel that is fed as fast as
// frames are consumed, and stops at game over or after MaxTicks frames. The
// seed is fixed before the run starts and reported in the result so any run
// can be replayed. SimulateBatch fans runs out with errgroup and stops at
// the first failure.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	result, err := gameService.Simulate(ctx, "classic", service.SimulationOptions{Seed: 42})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Score, result.Reason)
package service
