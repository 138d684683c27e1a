//go:build windows

package main

import "os"

// shutdownSignals cancel the running conversion. Windows delivers only
// os.Interrupt to console programs.
var shutdownSignals = []os.Signal{os.Interrupt}
