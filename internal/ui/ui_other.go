//go:build !windows

package ui

// AttachToConsole is a no-op, only windows separates GUI and console programs.
func AttachToConsole() {}
