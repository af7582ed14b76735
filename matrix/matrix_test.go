package matrix

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func bigs(values ...int64) []*big.Int {
	out := make([]*big.Int, len(values))
	for i, v := range values {
		out[i] = big.NewInt(v)
	}
	return out
}

func cmpOpts() cmp.Option {
	return cmp.Comparer(func(a, b *big.Int) bool {
		return a.Cmp(b) == 0
	})
}

func TestMultiplication(t *testing.T) {
	// S5 from the spec's concrete scenarios.
	a := FromRows(2, 2, bigs(1, 2, 3, 4))
	b := FromRows(2, 2, bigs(5, 6, 7, 8))
	q := big.NewInt(11)

	got, err := a.Multiply(b, q)
	require.NoError(t, err)

	want := FromRows(2, 2, bigs(8, 0, 10, 6))
	require.True(t, cmp.Equal(got, want, cmp.AllowUnexported(Matrix{}), cmpOpts()))
}

func TestMultiplicationShapeMismatch(t *testing.T) {
	a := New(2, 3)
	b := New(2, 3)
	_, err := a.Multiply(b, big.NewInt(7))
	require.Error(t, err)
	var shapeErr *MalformedMatrixError
	require.ErrorAs(t, err, &shapeErr)
}

func TestAddSubtractNegateEntryRange(t *testing.T) {
	q := big.NewInt(13)
	a := FromRows(1, 3, bigs(12, 0, 6))
	b := FromRows(1, 3, bigs(5, 1, 12))

	sum, err := a.Add(b, q)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		v := sum.Get(0, i)
		require.True(t, v.Sign() >= 0 && v.Cmp(q) < 0, "entry %d out of range: %v", i, v)
	}

	diff, err := a.Subtract(b, q)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		v := diff.Get(0, i)
		require.True(t, v.Sign() >= 0 && v.Cmp(q) < 0, "entry %d out of range: %v", i, v)
	}

	neg := a.Negate(q)
	zero, err := a.Add(neg, q)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.Equal(t, int64(0), zero.Get(0, i).Int64())
	}
}

func TestAddCommutative(t *testing.T) {
	q := big.NewInt(97)
	a := Random(3, 3, testRNG{}, q)
	b := Random(3, 3, testRNG{}, q)

	ab, err := a.Add(b, q)
	require.NoError(t, err)
	ba, err := b.Add(a, q)
	require.NoError(t, err)
	require.True(t, ab.Equals(ba))
}

func TestTransposeInvolution(t *testing.T) {
	m := FromRows(2, 3, bigs(1, 2, 3, 4, 5, 6))
	require.True(t, m.Transpose().Transpose().Equals(m))
}

func TestAddRowAddColumn(t *testing.T) {
	m := FromRows(1, 2, bigs(1, 2))
	withRow, err := m.AddRow(bigs(3, 4))
	require.NoError(t, err)
	require.Equal(t, 2, withRow.Rows())
	require.Equal(t, int64(3), withRow.Get(1, 0).Int64())

	_, err = m.AddRow(bigs(1))
	require.Error(t, err)

	withCol, err := m.AddColumn(bigs(9))
	require.NoError(t, err)
	require.Equal(t, 3, withCol.Cols())
	require.Equal(t, int64(9), withCol.Get(0, 2).Int64())
}

func TestAsVector(t *testing.T) {
	row := FromRows(1, 3, bigs(1, 2, 3))
	vec, err := row.AsVector()
	require.NoError(t, err)
	require.Len(t, vec, 3)

	notVector := FromRows(2, 2, bigs(1, 2, 3, 4))
	_, err = notVector.AsVector()
	require.Error(t, err)
}

// TestPanicsOnOutOfBoundsGet keeps the teacher's own bare-testing,
// recover()-based assertion style for a construction-time invariant.
func TestPanicsOnOutOfBoundsGet(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get did not panic on out-of-bounds index")
		}
	}()
	m := New(2, 2)
	m.Get(5, 5)
}

// TestFromRowsPanicsOnSizeMismatch mirrors ontanj-tpsi's
// TestInvalidNewBigMatrix.
func TestFromRowsPanicsOnSizeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FromRows did not panic on mismatched data length")
		}
	}()
	FromRows(3, 3, bigs(1, 2, 3, 4, 5, 6, 7, 8))
}

func TestDisableConcurrencyDoesNotChangeResults(t *testing.T) {
	q := big.NewInt(1013)
	a := Random(6, 6, testRNG{}, q)
	b := Random(6, 6, testRNG{}, q)

	par, err := a.Multiply(b, q)
	require.NoError(t, err)

	a.DisableConcurrency()
	seq, err := a.Multiply(b, q)
	require.NoError(t, err)

	require.True(t, par.Equals(seq))
}

// testRNG is a deterministic, non-cryptographic RandomSource used only to
// exercise Random() and algebraic properties in this package's tests.
type testRNG struct{}

func (testRNG) NextRandom(q *big.Int) *big.Int {
	// Simple non-uniform but adequate-for-tests generator: a counter mod q.
	testRNGCounter.Add(testRNGCounter, big.NewInt(97))
	return new(big.Int).Mod(testRNGCounter, q)
}

var testRNGCounter = big.NewInt(1)
