//go:build windows

package cfg

// defaultUserdataSubpath is the Steam userdata directory relative to a drive
// root on a default Windows install.
const defaultUserdataSubpath = `Program Files (x86)\Steam\userdata`
