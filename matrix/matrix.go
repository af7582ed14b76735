// Package matrix implements dense row-major matrices of arbitrary-precision
// integers with modular algebra, used as the arithmetic kernel of the LWE/GSW
// scheme in package lwe.
package matrix

import (
	"fmt"
	"math/big"
	"strings"
	"sync"
)

// RandomSource produces uniform integers in [0, q). It is the sole
// collaborator this package requires from the outside world; production
// callers should back it with a CSPRNG (see package sampling).
type RandomSource interface {
	NextRandom(q *big.Int) *big.Int
}

// Matrix is a dense r x c matrix of *big.Int, stored row-major. Every
// algebraic operation returns a new Matrix; the only mutation an instance
// ever undergoes is DisableConcurrency, a one-way flag that does not affect
// any observable value.
type Matrix struct {
	rows, cols int
	values     []*big.Int
	concurrent bool
}

// New allocates an r x c matrix with all entries set to zero.
func New(rows, cols int) *Matrix {
	values := make([]*big.Int, rows*cols)
	for i := range values {
		values[i] = new(big.Int)
	}
	return &Matrix{rows: rows, cols: cols, values: values, concurrent: true}
}

// FromRows builds a matrix from a flat row-major slice of length rows*cols.
// It panics if the data does not match the given shape, mirroring the
// original Java fixed-data constructor (dk.mmj.matrix.Matrix(BigInteger[][])).
func FromRows(rows, cols int, data []*big.Int) *Matrix {
	if len(data) != rows*cols {
		panic(fmt.Errorf("matrix: FromRows: data length %d does not match %dx%d", len(data), rows, cols))
	}
	values := make([]*big.Int, len(data))
	copy(values, data)
	return &Matrix{rows: rows, cols: cols, values: values, concurrent: true}
}

// Random allocates an r x c matrix with every entry drawn uniformly from
// [0, q) via rng.
func Random(rows, cols int, rng RandomSource, q *big.Int) *Matrix {
	m := New(rows, cols)
	for i := range m.values {
		m.values[i] = rng.NextRandom(q)
	}
	return m
}

// Decompose returns a length x 1 column vector whose entry i is bit i of x
// (lsb-first). Sum_i 2^i * result[i] == x whenever x < 2^length.
func Decompose(x *big.Int, length int) *Matrix {
	values := make([]*big.Int, length)
	for i := 0; i < length; i++ {
		if x.Bit(i) == 1 {
			values[i] = big.NewInt(1)
		} else {
			values[i] = big.NewInt(0)
		}
	}
	return &Matrix{rows: length, cols: 1, values: values, concurrent: true}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) index(row, col int) int {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Errorf("matrix: index out of bounds: (%d, %d) for %dx%d matrix", row, col, m.rows, m.cols))
	}
	return row*m.cols + col
}

// Get reads the entry at (row, col).
func (m *Matrix) Get(row, col int) *big.Int {
	return m.values[m.index(row, col)]
}

// Set writes the entry at (row, col). Set is only meaningful before a matrix
// is shared across goroutines; every algebraic operation below never mutates
// its receiver.
func (m *Matrix) Set(row, col int, v *big.Int) {
	m.values[m.index(row, col)] = v
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []*big.Int {
	if i < 0 || i >= m.rows {
		panic(fmt.Errorf("matrix: row index out of bounds: %d for %d rows", i, m.rows))
	}
	row := make([]*big.Int, m.cols)
	copy(row, m.values[i*m.cols:(i+1)*m.cols])
	return row
}

// AsVector returns the matrix's single row or column as a slice, failing if
// the matrix has neither exactly one row nor exactly one column.
func (m *Matrix) AsVector() ([]*big.Int, error) {
	if m.rows != 1 && m.cols != 1 {
		return nil, shapeError("AsVector", m, 1, 1)
	}
	if m.rows == 1 {
		return m.Row(0), nil
	}
	vec := make([]*big.Int, m.rows)
	for i := 0; i < m.rows; i++ {
		vec[i] = m.Get(i, 0)
	}
	return vec, nil
}

// forRows dispatches f(row) either sequentially or across goroutines
// depending on the concurrency flag. Every invocation writes to a disjoint
// row of the destination, so results are bit-identical regardless of
// scheduling.
func (m *Matrix) forRows(n int, f func(row int)) {
	if !m.concurrent || n <= 1 {
		for row := 0; row < n; row++ {
			f(row)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(n)
	for row := 0; row < n; row++ {
		go func(row int) {
			defer wg.Done()
			f(row)
		}(row)
	}
	wg.Wait()
}

// Multiply returns this * b mod q. Requires this.cols == b.rows.
func (m *Matrix) Multiply(b *Matrix, q *big.Int) (*Matrix, error) {
	if m.cols != b.rows {
		return nil, shapeError("Multiply", m, b.rows, b.cols)
	}
	result := New(m.rows, b.cols)
	m.forRows(m.rows, func(row int) {
		for col := 0; col < b.cols; col++ {
			sum := new(big.Int)
			for k := 0; k < m.cols; k++ {
				term := new(big.Int).Mul(m.Get(row, k), b.Get(k, col))
				sum.Add(sum, term)
			}
			result.Set(row, col, sum.Mod(sum, q))
		}
	})
	return result, nil
}

// ScalarMultiply returns k*this mod q, entrywise.
func (m *Matrix) ScalarMultiply(k, q *big.Int) *Matrix {
	result := New(m.rows, m.cols)
	m.forRows(m.rows, func(row int) {
		for col := 0; col < m.cols; col++ {
			v := new(big.Int).Mul(m.Get(row, col), k)
			result.Set(row, col, v.Mod(v, q))
		}
	})
	return result
}

// Add returns this + b mod q, entrywise. Requires identical shapes.
func (m *Matrix) Add(b *Matrix, q *big.Int) (*Matrix, error) {
	if m.rows != b.rows || m.cols != b.cols {
		return nil, shapeError("Add", m, b.rows, b.cols)
	}
	result := New(m.rows, m.cols)
	m.forRows(m.rows, func(row int) {
		for col := 0; col < m.cols; col++ {
			v := new(big.Int).Add(m.Get(row, col), b.Get(row, col))
			result.Set(row, col, v.Mod(v, q))
		}
	})
	return result, nil
}

// Subtract returns this - b mod q, entrywise. Requires identical shapes.
// Unlike Add, Multiply, ScalarMultiply and Negate, Subtract is always
// sequential — the original implementation this scheme is grounded on never
// parallelizes it either.
func (m *Matrix) Subtract(b *Matrix, q *big.Int) (*Matrix, error) {
	if m.rows != b.rows || m.cols != b.cols {
		return nil, shapeError("Subtract", m, b.rows, b.cols)
	}
	result := New(m.rows, m.cols)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			v := new(big.Int).Sub(m.Get(row, col), b.Get(row, col))
			result.Set(row, col, v.Mod(v, q))
		}
	}
	return result, nil
}

// Negate returns (-this) mod q, entrywise, with results in [0, q).
func (m *Matrix) Negate(q *big.Int) *Matrix {
	result := New(m.rows, m.cols)
	m.forRows(m.rows, func(row int) {
		for col := 0; col < m.cols; col++ {
			v := new(big.Int).Neg(m.Get(row, col))
			result.Set(row, col, v.Mod(v, q))
		}
	})
	return result
}

// Transpose returns the matrix with rows and columns swapped. This is a pure
// permutation, not a modular operation.
func (m *Matrix) Transpose() *Matrix {
	result := New(m.cols, m.rows)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			result.Set(col, row, m.Get(row, col))
		}
	}
	return result
}

// AddRow returns a new (rows+1) x cols matrix with row appended as the last
// row. row must have length cols.
func (m *Matrix) AddRow(row []*big.Int) (*Matrix, error) {
	if len(row) != m.cols {
		return nil, shapeError("AddRow", m, 1, len(row))
	}
	values := make([]*big.Int, 0, (m.rows+1)*m.cols)
	values = append(values, m.values...)
	values = append(values, row...)
	return &Matrix{rows: m.rows + 1, cols: m.cols, values: values, concurrent: true}, nil
}

// AddColumn returns a new rows x (cols+1) matrix with col appended as the
// last column. col must have length rows.
func (m *Matrix) AddColumn(col []*big.Int) (*Matrix, error) {
	if len(col) != m.rows {
		return nil, shapeError("AddColumn", m, len(col), 1)
	}
	result := New(m.rows, m.cols+1)
	for row := 0; row < m.rows; row++ {
		for c := 0; c < m.cols; c++ {
			result.Set(row, c, m.Get(row, c))
		}
		result.Set(row, m.cols, col[row])
	}
	return result, nil
}

// Equals reports whether other has the same shape and entries.
func (m *Matrix) Equals(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.values {
		if m.values[i].Cmp(other.values[i]) != 0 {
			return false
		}
	}
	return true
}

// DisableConcurrency turns off row-level parallelism for this instance only.
// The flag is one-way: it cannot be re-enabled, and matrices derived from
// algebraic operations on this instance are unaffected — they default to
// concurrent execution regardless of the receiver's setting.
func (m *Matrix) DisableConcurrency() {
	m.concurrent = false
}

func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for row := 0; row < m.rows; row++ {
		if row > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%v", m.Row(row)))
	}
	sb.WriteString("]")
	return sb.String()
}

// GadgetInverse computes G^-1(c): given c of shape (n+1) x k with entries in
// [0, 2^ell), it returns a matrix of shape N x k, N = c.Rows()*ell, whose
// column j is the concatenation across rows i=0..n of Decompose(c[i][j],
// ell). It satisfies G * GadgetInverse(c, ell) = c mod q whenever c's entries
// are in [0, 2^ell).
func GadgetInverse(c *Matrix, ell int) (*Matrix, error) {
	if ell <= 0 {
		return nil, fmt.Errorf("matrix: GadgetInverse: ell must be positive, got %d", ell)
	}
	n1 := c.rows
	result := New(n1*ell, c.cols)
	for col := 0; col < c.cols; col++ {
		for i := 0; i < n1; i++ {
			bits := Decompose(c.Get(i, col), ell)
			for b := 0; b < ell; b++ {
				result.Set(i*ell+b, col, bits.Get(b, 0))
			}
		}
	}
	return result, nil
}
