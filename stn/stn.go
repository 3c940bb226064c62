// Package stn implements a Simple Temporal Network: named time points,
// symmetric min/max distance constraints, and Floyd–Warshall consistency
// checking, with snapshot/restore aligned to the engine's backtracking.
package stn

import "math"

const (
	// Infinity represents "no upper bound" / "unreachable" in the distance
	// matrix, matching the original solver's STN_INFINITY constant.
	Infinity int64 = math.MaxInt64

	// NegInfinity is the clamped floor used in place of true negative
	// infinity: arithmetic that would underflow past it saturates here
	// instead of wrapping, matching STN_NEG_INFINITY.
	NegInfinity int64 = math.MinInt64 + 1

	// originName is the time point created first by New, so it always
	// occupies index 0 — the "origin" anchor EarliestTime/LatestTime are
	// relative to.
	originName = "origin"

	// Origin is originName's exported form, for callers that need to
	// anchor an absolute-time constraint directly (e.g. "this point must
	// occur at exactly this many microseconds after origin").
	Origin = originName
)

// Constraint is a min/max distance bound between two time points: the
// signed duration from -> to must lie in [Min, Max].
type Constraint struct {
	Min int64
	Max int64
}

// STN is a Simple Temporal Network. The zero value is not usable; use New.
type STN struct {
	index     map[string]int     // time point name -> matrix index
	names     []string           // matrix index -> time point name
	cons      map[string]Constraint // "from:to" -> constraint, stored symmetrically
	dist      []int64            // flat row-major n*n distance matrix
	n         int                // current dimension of dist
	consistent bool
}

// New returns an STN with a single time point, "origin", pre-created at
// index 0.
func New() *STN {
	s := &STN{
		index:      make(map[string]int),
		cons:       make(map[string]Constraint),
		consistent: true,
	}
	s.ensureTimePoint(originName)
	return s
}

// ensureTimePoint idempotently registers name, expanding the distance
// matrix to accommodate it. Returns its index.
func (s *STN) ensureTimePoint(name string) int {
	if idx, ok := s.index[name]; ok {
		return idx
	}
	idx := len(s.names)
	s.index[name] = idx
	s.names = append(s.names, name)
	s.growMatrix()
	return idx
}

// growMatrix reallocates dist for the current number of time points,
// preserving prior entries and filling new cells with Infinity (0 on the
// diagonal). Always followed by a full rebuild before the matrix is
// trusted, so the fill here only needs to keep shape consistent.
func (s *STN) growMatrix() {
	newN := len(s.names)
	newDist := make([]int64, newN*newN)
	for i := 0; i < newN; i++ {
		for j := 0; j < newN; j++ {
			if i == j {
				newDist[i*newN+j] = 0
			} else if i < s.n && j < s.n {
				newDist[i*newN+j] = s.dist[i*s.n+j]
			} else {
				newDist[i*newN+j] = Infinity
			}
		}
	}
	s.dist = newDist
	s.n = newN
}

// AddTimePoint idempotently registers name and returns its index.
func (s *STN) AddTimePoint(name string) int { return s.ensureTimePoint(name) }

// HasTimePoint reports whether name has been registered.
func (s *STN) HasTimePoint(name string) bool {
	_, ok := s.index[name]
	return ok
}

// TimePoints returns every registered time point name, in registration
// order (index 0 is always "origin").
func (s *STN) TimePoints() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func key(from, to string) string { return from + ":" + to }

// intersect returns the tighter of a and b: (max(mins), min(maxes)). The
// result may have Min > Max, signaling an empty intersection.
func intersect(a, b Constraint) Constraint {
	mn := a.Min
	if b.Min > mn {
		mn = b.Min
	}
	mx := a.Max
	if b.Max < mx {
		mx = b.Max
	}
	return Constraint{Min: mn, Max: mx}
}

// AddConstraint adds the bound [min, max] on the signed distance from -> to,
// automatically storing the reverse bound (-max, -min) on to -> from. If
// (from, to) already carries a constraint, the new bound is intersected
// with the old one; an empty intersection leaves the STN's prior state
// untouched, sets consistency false, and reports failure without
// committing the new bound. On success the distance matrix is rebuilt in
// full and Floyd–Warshall re-run.
func (s *STN) AddConstraint(from, to string, min, max int64) bool {
	s.ensureTimePoint(from)
	s.ensureTimePoint(to)

	if min > max {
		s.consistent = false
		return false
	}

	fwd := Constraint{Min: min, Max: max}
	rev := Constraint{Min: -max, Max: -min}

	fk, rk := key(from, to), key(to, from)
	if existing, ok := s.cons[fk]; ok {
		fwd = intersect(existing, fwd)
		if fwd.Min > fwd.Max {
			s.consistent = false
			return false
		}
	}
	if existing, ok := s.cons[rk]; ok {
		newRev := Constraint{Min: -max, Max: -min}
		rev = intersect(existing, newRev)
		if rev.Min > rev.Max {
			s.consistent = false
			return false
		}
	}

	s.cons[fk] = fwd
	s.cons[rk] = rev

	s.rebuild()
	s.floydWarshall()
	return s.consistent
}

// GetConstraint returns the stored constraint for (from, to), or an
// unbounded (Infinity, Infinity) constraint if none exists.
func (s *STN) GetConstraint(from, to string) Constraint {
	if c, ok := s.cons[key(from, to)]; ok {
		return c
	}
	return Constraint{Min: Infinity, Max: Infinity}
}

// HasConstraint reports whether (from, to) carries an explicit constraint.
func (s *STN) HasConstraint(from, to string) bool {
	_, ok := s.cons[key(from, to)]
	return ok
}

// IsConsistent reports whether every constraint currently stored is
// simultaneously satisfiable (no negative cycle in the distance matrix).
func (s *STN) IsConsistent() bool { return s.consistent }

// rebuild recomputes dist from scratch: +Infinity everywhere off-diagonal,
// zero on the diagonal, then for every stored forward constraint write its
// Max bound into the corresponding cell (the distance-matrix upper bound,
// per the constraint's semantics).
func (s *STN) rebuild() {
	n := s.n
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				s.dist[i*n+j] = 0
			} else {
				s.dist[i*n+j] = Infinity
			}
		}
	}
	for k, c := range s.cons {
		from, to := splitKey(k)
		fi, fok := s.index[from]
		ti, tok := s.index[to]
		if !fok || !tok {
			continue
		}
		cell := fi*n + ti
		if s.dist[cell] == Infinity || c.Max < s.dist[cell] {
			s.dist[cell] = c.Max
		}
	}
}

// splitKey splits a "from:to" key back into its two names. Time point
// names themselves never contain ':' — callers that need that character in
// an identifier must escape it before registering the point.
func splitKey(k string) (string, string) {
	for i := 0; i < len(k); i++ {
		if k[i] == ':' {
			return k[:i], k[i+1:]
		}
	}
	return k, ""
}

// floydWarshall runs in-place all-pairs-shortest-paths relaxation over
// dist with a fixed k->i->j loop order and early-continue on +Infinity
// intermediates, mirroring the deterministic dense-APSP discipline used
// elsewhere in this codebase for floating-point distance matrices, adapted
// here to int64 with saturating overflow/underflow instead of float +/-Inf.
func (s *STN) floydWarshall() {
	n := s.n
	if n == 0 {
		s.consistent = true
		return
	}
	d := s.dist

	var k, i, j int
	var baseK, baseI int
	var ik, kj, ij, cand int64
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = d[i*n+k]
			if ik == Infinity {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = d[baseK+j]
				if kj == Infinity {
					continue
				}
				ij = d[baseI+j]
				cand = addClamped(ik, kj)
				if cand < ij {
					d[baseI+j] = cand
				}
			}
		}
	}

	s.consistent = !s.hasNegativeDiagonal()
}

// addClamped adds a and b, saturating to Infinity on positive overflow and
// to NegInfinity on negative overflow instead of wrapping around, matching
// the original solver's overflow policy.
func addClamped(a, b int64) int64 {
	sum := a + b
	if a > 0 && b > 0 && sum < a {
		return Infinity
	}
	if a < 0 && b < 0 && sum > a {
		return NegInfinity
	}
	return sum
}

func (s *STN) hasNegativeDiagonal() bool {
	n := s.n
	for i := 0; i < n; i++ {
		if s.dist[i*n+i] < 0 {
			return true
		}
	}
	return false
}

// Distance returns the shortest-path upper bound from -> to, or Infinity
// if either point is unregistered.
func (s *STN) Distance(from, to string) int64 {
	fi, fok := s.index[from]
	ti, tok := s.index[to]
	if !fok || !tok {
		return Infinity
	}
	return s.dist[fi*s.n+ti]
}

// EarliestTime returns Distance(origin, p): the earliest offset from the
// network's origin at which p may occur.
func (s *STN) EarliestTime(p string) int64 {
	return s.Distance(originName, p)
}

// LatestTime returns -Distance(p, origin): the latest offset from origin
// at which p may occur.
func (s *STN) LatestTime(p string) int64 {
	d := s.Distance(p, originName)
	if d == Infinity {
		return Infinity
	}
	return -d
}
