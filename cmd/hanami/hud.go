package main

import (
	"fmt"
)

// DebugOverlay batches status lines so the render loop prints one block per
// second instead of interleaving Printf calls with the toggle logs.
type DebugOverlay struct {
	lines []string
}

func (do *DebugOverlay) AddLine(format string, args ...interface{}) {
	do.lines = append(do.lines, fmt.Sprintf(format, args...))
}

// Flush prints the collected lines and resets the overlay. The "[Stats]"
// tag keeps the block greppable next to the gesture and audio logs.
func (do *DebugOverlay) Flush() {
	for _, line := range do.lines {
		fmt.Println("[Stats] " + line)
	}
	do.lines = do.lines[:0]
}
