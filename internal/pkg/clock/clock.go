package clock

import "time"

// Clock supplies the current time. The verification service takes it as a
// dependency so expiry behavior can be tested against a fixed instant.
type Clock interface {
	Now() time.Time
}

// System is the production clock backed by time.Now.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed always returns the same instant. Test helper.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }
