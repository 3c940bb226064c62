package matrix

// RowSums returns the sum of each row of m.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		var sum float64
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			sum += v
		}
		out[i] = sum
	}
	return out, nil
}

// ColSums returns the sum of each column of m.
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, cols)
	for j := 0; j < cols; j++ {
		var sum float64
		for i := 0; i < rows; i++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			sum += v
		}
		out[j] = sum
	}
	return out, nil
}
