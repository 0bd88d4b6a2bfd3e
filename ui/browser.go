package ui

import (
	"os/exec"
	"runtime"
)

// openURL is a package-level variable to allow mocking in tests.
var openURL = openBrowser

// openBrowser opens url in the default browser
func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	return cmd.Start()
}
