package matrix

import (
	"fmt"
	"math"
)

// FloydWarshall computes all-pairs shortest paths in-place on m. m must be
// square; +Inf denotes "no edge" off-diagonal and the diagonal must be 0
// before calling. Loop order is fixed (k -> i -> j) for deterministic
// accumulation, with an early continue once an intermediate distance is
// +Inf, mirroring the dense-APSP discipline this module's stn package
// separately adapts in int64 form (see stn.floydWarshall).
func FloydWarshall(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return fmt.Errorf("FloydWarshall: %w", err)
	}

	if d, ok := m.(*Dense); ok {
		floydWarshallDense(d)
		return nil
	}

	n := m.Rows()
	var k, i, j int
	var dik, dkj, dij, cand float64
	var err error
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			dik, err = m.At(i, k)
			if err != nil {
				return fmt.Errorf("FloydWarshall: %w", err)
			}
			if math.IsInf(dik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				dkj, err = m.At(k, j)
				if err != nil {
					return fmt.Errorf("FloydWarshall: %w", err)
				}
				if math.IsInf(dkj, 1) {
					continue
				}
				dij, err = m.At(i, j)
				if err != nil {
					return fmt.Errorf("FloydWarshall: %w", err)
				}
				cand = dik + dkj
				if cand < dij {
					if err = m.Set(i, j, cand); err != nil {
						return fmt.Errorf("FloydWarshall: %w", err)
					}
				}
			}
		}
	}
	return nil
}

// floydWarshallDense is the flat-buffer fast path for *Dense.
func floydWarshallDense(d *Dense) {
	n := d.r
	data := d.data

	var k, i, j, baseK, baseI int
	var ik, kj, ij, cand float64
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				ij = data[baseI+j]
				cand = ik + kj
				if cand < ij {
					data[baseI+j] = cand
				}
			}
		}
	}
}
