//go:build !windows

package console

// isSoleConsoleProcess always reports false outside Windows.
func isSoleConsoleProcess() bool {
	return false
}
