//go:build !windows

package cfg

// defaultUserdataSubpath is the userdata directory relative to a Steam install
// directory.
const defaultUserdataSubpath = "userdata"
