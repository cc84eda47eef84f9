package ui

import (
	"os"
	"syscall"
)

var (
	kernel32              = syscall.NewLazyDLL("kernel32.dll")
	procAttachConsole     = kernel32.NewProc("AttachConsole")
	procGetConsoleWindow  = kernel32.NewProc("GetConsoleWindow")
	procGetStdHandle      = kernel32.NewProc("GetStdHandle")
	ATTACH_PARENT_PROCESS = ^uint32(0) // Special value to attach to the parent process
)

const (
	STD_OUTPUT_HANDLE = -11 & 0xFFFFFFFF // Corresponds to (DWORD)-11
	STD_ERROR_HANDLE  = -12 & 0xFFFFFFFF // Corresponds to (DWORD)-12
)

// AttachToConsole hooks a windowsgui build up to the console it was started
// from so the selected path reaches the caller. Double clicking the exe opens
// no console.
func AttachToConsole() {
	consoleHandle, _, _ := procGetConsoleWindow.Call()
	if consoleHandle != 0 {
		return
	}
	attached, _, _ := procAttachConsole.Call(uintptr(ATTACH_PARENT_PROCESS))
	if attached == 0 {
		return
	}
	// Keep redirected handles, only replace the ones a windowsgui process
	// starts without.
	if missingHandle(os.Stdout) {
		if h, ok := stdHandle(STD_OUTPUT_HANDLE); ok {
			os.Stdout = os.NewFile(h, "stdout")
		}
	}
	if missingHandle(os.Stderr) {
		if h, ok := stdHandle(STD_ERROR_HANDLE); ok {
			os.Stderr = os.NewFile(h, "stderr")
		}
	}
}

func missingHandle(f *os.File) bool {
	return f == nil || f.Fd() == 0 || f.Fd() == uintptr(syscall.InvalidHandle)
}

func stdHandle(which uintptr) (uintptr, bool) {
	h, _, _ := procGetStdHandle.Call(which)
	return h, h != 0 && h != uintptr(syscall.InvalidHandle)
}
