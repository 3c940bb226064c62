package matrix

import "fmt"

// Dense is a row-major dense matrix: data holds r*c float64 elements.
type Dense struct {
	r, c int
	data []float64
}

var _ Matrix = (*Dense)(nil)

// NewDense allocates an r*c zero matrix. Both dimensions must be positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.c }

func (d *Dense) offset(row, col int) (int, error) {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return 0, fmt.Errorf("Dense(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return row*d.c + col, nil
}

// At returns the element at (row, col).
func (d *Dense) At(row, col int) (float64, error) {
	off, err := d.offset(row, col)
	if err != nil {
		return 0, err
	}
	return d.data[off], nil
}

// Set writes v at (row, col).
func (d *Dense) Set(row, col int, v float64) error {
	off, err := d.offset(row, col)
	if err != nil {
		return err
	}
	d.data[off] = v
	return nil
}

// Clone returns a deep copy of d.
func (d *Dense) Clone() *Dense {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)
	return &Dense{r: d.r, c: d.c, data: cp}
}
