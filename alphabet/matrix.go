package alphabet

// Matrix is a dense row-major float32 matrix backed by a single slice.
// Encoded records use one row per sequence position and one column per
// alphabet symbol.
type Matrix struct {
	Rows int
	Cols int
	Data []float32
}

// NewMatrix creates a zeroed Rows x Cols matrix.
func NewMatrix(rows, cols int) Matrix {
	return Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]float32, rows*cols),
	}
}

// At returns the value at row i, column j.
func (m Matrix) At(i, j int) float32 {
	return m.Data[i*m.Cols+j]
}

// Set sets the value at row i, column j.
func (m Matrix) Set(i, j int, v float32) {
	m.Data[i*m.Cols+j] = v
}

// Row returns row i as a slice into the backing array.
// The slice is valid until the matrix is garbage collected; mutations are
// visible through the matrix.
func (m Matrix) Row(i int) []float32 {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

// ArgmaxRow returns the column index of the maximum value in row i.
// Ties resolve to the lowest index.
func (m Matrix) ArgmaxRow(i int) int {
	row := m.Row(i)
	best := 0
	for j := 1; j < len(row); j++ {
		if row[j] > row[best] {
			best = j
		}
	}
	return best
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := Matrix{Rows: m.Rows, Cols: m.Cols, Data: make([]float32, len(m.Data))}
	copy(out.Data, m.Data)
	return out
}
