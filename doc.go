// Package logscreen maintains an in-memory screen image of text produced by
// a stream interleaved with ANSI control sequences.
//
// Unlike a terminal emulator, logscreen has no fixed viewport: lines grow
// without bound as input arrives, nothing wraps, and nothing scrolls away.
// That makes it ideal for:
//   - Replaying captured build or job logs with their colors intact
//   - Rendering terminal output in log viewers outside a terminal
//   - Asserting on the styled output of CLI tools in tests
//   - Converting ANSI-colored streams into structured styled text
//
// # Quick Start
//
// Create a screen and write ANSI text to it:
//
//	screen := logscreen.New()
//	screen.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(screen.String()) // "Hello World!"
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Screen]: The screen state and its update engine
//   - [Line]: One row, an ordered sequence of style runs
//   - [Chunk]: A run of text sharing one style, immutable once written
//   - [Style]: The attributes applied to text as it is written
//   - [ansi.Action]: The tokenized instructions driving updates
//
// Screen implements [io.Writer], so process output can be piped in directly:
//
//	cmd := exec.Command("make")
//	cmd.Stdout = screen
//	cmd.Run()
//
//	for row := 0; row < screen.NumLines(); row++ {
//	    fmt.Println(screen.LineContent(row))
//	}
//
// # Styled Runs
//
// Each line stores runs of identically styled text rather than a cell grid.
// Writing into the middle of existing content splits the runs it lands on;
// the retained fragments keep their original styles, and a chunk's style is
// frozen when it is written. Renderers consume the runs directly:
//
//	for _, line := range screen.Lines() {
//	    for _, chunk := range line {
//	        render(chunk.Text, chunk.Style)
//	    }
//	}
//
// # Chunked Input
//
// Input may be split at arbitrary byte boundaries, including inside an escape
// sequence. The unconsumed suffix of each Write is carried as a remainder and
// prefixed to the next Write, so feeding a stream chunk by chunk produces the
// same screen as feeding it at once. Writes on one Screen must therefore be
// sequential; accessors are safe to call concurrently.
//
// # Capturing Output
//
// Snapshots serialize the screen as JSON at plain-text or styled-segment
// detail, and screenshots rasterize it via golang.org/x/image:
//
//	data, _ := screen.Snapshot(logscreen.SnapshotDetailStyled).JSON()
//
//	f, _ := os.Create("log.png")
//	defer f.Close()
//	screen.ScreenshotPNG(f, nil)
//
// # Limits
//
// logscreen is not a terminal emulator. There is no alternate screen, no
// scroll region, no resize, no mouse or reporting sequences, and no response
// channel; sequences outside its vocabulary are consumed and ignored. Row
// count grows with the input, and bounding it is the caller's responsibility.
package logscreen
