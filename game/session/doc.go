// Package session drives game engines from a host.
//
// The session package implements:
//   - Input buffering from any goroutine
//   - One fixed-timestep update per frame
//   - Synchronous event listeners
//   - Read-only snapshots for rendering
//   - A session Manager with UUID identifiers
//
// Core Types:
//
// Session owns one engine.GameEngine. Hosts call Push when a key is pressed
// and Frame once per display frame. Frame takes the latest buffered heading,
// honours a pending restart request when the game is over, then runs exactly
// one engine.FixedStep update. Frame is not re-entrant: an overlapping call
// fails with ErrFrameInProgress instead of racing the running one.
//
// Manager stores sessions by ID. IDs are compared case-insensitively and are
// generated as random UUIDs when the caller does not supply one.
//
// Usage:
//
//	sess, err := session.New("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//	sess.OnEvent(func(ev engine.GameEvent) {
//		log.Printf("%s: %s", ev.Type, ev.Message)
//	})
//
//	// From the host's input handler
//	sess.Push(engine.InputLeft)
//
//	// From the host's frame callback
//	events, err := sess.Frame(time.Since(last))
//
// Headless runs feed Run from a ticker channel and stop it by cancelling
// the context or closing the channel. A Pilot passed to Run supplies the
// input for each frame.
package session
