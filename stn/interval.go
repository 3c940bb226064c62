package stn

// pointNames returns the canonical start/end time point names derived from
// an item id.
func pointNames(id string) (start, end string) {
	return id + "_start", id + "_end"
}

// AddDurative creates id_start and id_end (if not already present) and
// constrains their separation to exactly duration microseconds in both
// directions. Returns false, leaving the STN's consistency flag false, if
// that bound conflicts with an existing constraint on the same pair.
func (s *STN) AddDurative(id string, duration int64) bool {
	start, end := pointNames(id)
	return s.AddConstraint(start, end, duration, duration)
}

// AddInterval is AddDurative plus absolute anchoring: if start > 0, id's
// start point is pinned exactly start microseconds after origin; if
// end > 0, its end point is pinned exactly end microseconds after origin.
func (s *STN) AddInterval(id string, start, end, duration int64) bool {
	ok := s.AddDurative(id, duration)
	if !ok {
		return false
	}
	startPoint, endPoint := pointNames(id)
	if start > 0 {
		if !s.AddConstraint(originName, startPoint, start, start) {
			return false
		}
	}
	if end > 0 {
		if !s.AddConstraint(originName, endPoint, end, end) {
			return false
		}
	}
	return true
}

// Before constrains a to finish no later than b begins: a_end -> b_start
// in [0, +Infinity).
func (s *STN) Before(a, b string) bool {
	_, aEnd := pointNames(a)
	bStart, _ := pointNames(b)
	return s.AddConstraint(aEnd, bStart, 0, Infinity)
}

// After constrains a to end no earlier than b begins (the mirror of
// Before with the roles of the distance reversed): b_start -> a_end in
// [0, +Infinity).
func (s *STN) After(a, b string) bool {
	_, aEnd := pointNames(a)
	bStart, _ := pointNames(b)
	return s.AddConstraint(bStart, aEnd, 0, Infinity)
}

// During constrains a's interval to nest inside b's: a_start >= b_start and
// a_end <= b_end.
func (s *STN) During(a, b string) bool {
	aStart, aEnd := pointNames(a)
	bStart, bEnd := pointNames(b)
	if !s.AddConstraint(bStart, aStart, 0, Infinity) {
		return false
	}
	return s.AddConstraint(aEnd, bEnd, 0, Infinity)
}
