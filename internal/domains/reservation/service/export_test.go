package service

// SetIDGenerator replaces the id source of a service built by New.
func SetIDGenerator(svc Reservation, next func() uint64) {
	svc.(*serviceImpl).nextID = next
}
