// Package timezone pins all wall-clock reads to the hotel's local
// timezone. Check-in/check-out dates and the dashboard's "today" are
// hotel-local, so code must call timezone.Now() instead of time.Now().
//
//	now := timezone.Now()                   // current time in hotel timezone
//	local := timezone.ToAppTime(someTime)   // convert any time
//	s := timezone.Format(now, "2006-01-02")
//	t, err := timezone.Parse("2006-01-02", "2026-01-01")
//
// Configured via APP_TIMEZONE using IANA names ("UTC", "Asia/Jakarta",
// "America/New_York"); initialized on package import.
package timezone
