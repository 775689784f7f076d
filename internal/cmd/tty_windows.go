//go:build windows

package cmd

// checkTTY is a no-op on Windows; Bubble Tea handles console input itself.
func checkTTY() error {
	return nil
}

// termWidth reports 0 (unknown) on Windows; the width check is skipped.
func termWidth() int {
	return 0
}
