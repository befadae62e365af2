package service

// SetClock fixes the directory stamp of a service built by New.
func SetClock(svc Backup, now func() string) {
	svc.(*serviceImpl).now = now
}
