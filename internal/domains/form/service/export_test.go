package service

import "time"

// SetScheduler replaces how a machine built by New delays the dismissal of warnings.
func SetScheduler(svc Form, after func(d time.Duration, fn func())) {
	svc.(*machineImpl).after = after
}
