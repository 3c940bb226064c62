package stn

import "time"

// Micros is a signed count of microseconds since the Unix epoch — the
// wire-format representation of an absolute time at the stn package
// boundary (the engine/todoitem API speaks time.Time; the engine converts
// once, here, at the edge, via ToMicros and DurationMicros).
type Micros int64

// ToMicros converts t to its microsecond-since-epoch representation.
func ToMicros(t time.Time) Micros {
	return Micros(t.UnixMicro())
}

// Time converts m back to a time.Time in UTC.
func (m Micros) Time() time.Time {
	return time.UnixMicro(int64(m)).UTC()
}

// DurationMicros converts a time.Duration to its microsecond count, for
// use as an AddDurative/AddInterval duration argument.
func DurationMicros(d time.Duration) int64 {
	return d.Microseconds()
}
