// Package live redraws an animated frame in place until a quit key is seen.
//
// Two strategies satisfy the same contract:
//
//   - [Run]: a Bubble Tea program on the alternate screen. Bubble Tea owns
//     raw mode and restores the terminal on every exit path.
//   - [RunLite]: a plain ANSI redraw loop with a dedicated listener goroutine
//     reading stdin. Raw mode is scoped by [RawMode].
//
// Both tick every [TickInterval] and advance the wave clock by [TimeStep].
// Neither adapts to frame rate.
//
// # Key Bindings
//
//	q, Esc, Ctrl+C - stop the animation
package live
