// Package client implements the interactive client application runtime.
//
// It wires the terminal UI and the client services into a single process
// lifecycle.
package client
