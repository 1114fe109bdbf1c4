//go:build windows

package platform

import "golang.org/x/sys/windows"

// isElevated reports whether the process token carries Administrator rights.
func isElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
