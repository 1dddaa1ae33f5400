package timeutil

import "time"

// Resolver turns possibly-omitted HH:MM arguments into concrete
// timestamps on the current date. The clock is injected so that
// resolution stays a pure function of its inputs.
type Resolver struct {
	Now func() time.Time
}

// NewResolver returns a resolver backed by the system clock.
func NewResolver() Resolver {
	return Resolver{Now: time.Now}
}

// ResolveLog resolves the arguments of a log command. An omitted start
// defaults to the current time. An omitted end leaves the session open,
// signalled by a zero end value. A supplied end earlier than the start
// is rejected: without a date component there is no way to tell an
// overnight session from a typo.
func (r Resolver) ResolveLog(start, end string) (startAt, endAt time.Time, err error) {
	now := r.Now()

	s, err := ParseClock(start, now)
	if err != nil {
		return startAt, endAt, err
	}

	e, err := ParseClock(end, now)
	if err != nil {
		return startAt, endAt, err
	}

	startAt = s.Or(now)

	if !e.Provided() {
		return startAt, time.Time{}, nil
	}

	endAt = e.Or(now)
	if endAt.Before(startAt) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}

	return startAt, endAt, nil
}

// ResolveClose resolves the argument of a close command. An omitted
// end defaults to the current time.
func (r Resolver) ResolveClose(end string) (time.Time, error) {
	now := r.Now()

	e, err := ParseClock(end, now)
	if err != nil {
		return time.Time{}, err
	}

	return e.Or(now), nil
}
