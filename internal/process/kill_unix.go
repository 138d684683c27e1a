//go:build !windows

package process

import "syscall"

// KillGroup sends SIGKILL to the process group led by pid.
// Non-positive pids are ignored.
func KillGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
