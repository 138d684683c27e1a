// Package process cleans up the headless browser started for PDF output.
// The launcher kills the browser itself; KillGroup also reaps the helper
// processes it spawned.
package process
