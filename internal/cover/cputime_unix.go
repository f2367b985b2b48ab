//go:build unix

package cover

import (
	"syscall"
	"time"
)

// processCPUTime returns the CPU time (user+sys) consumed by this process
// so far, mirroring original_source/exact-cover/ec.py's use of
// time.process_time() ("more precise, as it measures the time spent by
// the process in the CPU" rather than wall-clock).
func processCPUTime() time.Duration {
	var ru syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	user := time.Duration(ru.Utime.Sec)*time.Second + time.Duration(ru.Utime.Usec)*time.Microsecond
	sys := time.Duration(ru.Stime.Sec)*time.Second + time.Duration(ru.Stime.Usec)*time.Microsecond
	return user + sys
}
