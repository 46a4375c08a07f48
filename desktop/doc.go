// Package desktop hosts a game session in an ebiten window.
//
// Game implements ebiten.Game. Update maps the arrow keys and WASD to
// headings and R to a restart request, pushes them into the session and runs
// one frame per tick at 60 TPS. Draw renders the maze, the player wedge with
// its animated mouth, the four opponents, the score and lives HUD, and the
// game-over overlay. The tile size follows the window width and never drops
// below engine.MinTileSize.
//
// Usage:
//
//	sess, _ := session.New("", engine.DefaultConfig())
//	if err := desktop.Run(sess, desktop.Options{Width: 570}); err != nil {
//		log.Fatal(err)
//	}
package desktop
