//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals cancel the running conversion.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
