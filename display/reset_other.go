//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package display

func resetTerminalMode() {}
