package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixnet-ml/fixnet/internal/matrix"
)

func TestZeros(t *testing.T) {
	m := matrix.Zeros[float64](3, 4)

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
	for _, v := range m.Data() {
		assert.Zero(t, v)
	}
}

func TestZeros_InvalidDims(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for non-positive dimensions")
		}
	}()

	matrix.Zeros[float64](0, 4)
}

func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6.0, m.At(1, 2))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Data())
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.Error(t, err)

	_, err = matrix.FromRows[float64](nil)
	require.Error(t, err)
}

func TestFromSlice(t *testing.T) {
	m, err := matrix.FromSlice([]float32{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(3), m.At(1, 0))

	_, err = matrix.FromSlice([]float32{1, 2, 3}, 2, 2)
	require.Error(t, err)
}

func TestColumnVector(t *testing.T) {
	v := matrix.ColumnVector([]float64{1, 2, 3})

	assert.Equal(t, 3, v.Rows())
	assert.Equal(t, 1, v.Cols())
	assert.Equal(t, []float64{1, 2, 3}, v.Column())
}

func TestMatMul(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.FromRows([][]float64{{5, 6}, {7, 8}})
	require.NoError(t, err)

	c := a.MatMul(b)

	want, err := matrix.FromRows([][]float64{{19, 22}, {43, 50}})
	require.NoError(t, err)
	assert.True(t, c.Equal(want), "got %v, want %v", c, want)
}

func TestMatMul_Identity(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	assert.True(t, a.MatMul(matrix.Identity[float64](3)).Equal(a))
}

func TestMatMul_InnerDimMismatch(t *testing.T) {
	a := matrix.Zeros[float64](2, 3)
	b := matrix.Zeros[float64](2, 3)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for inner dimension mismatch")
		}
	}()

	a.MatMul(b)
}

func TestAddSub_RoundTrip(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1.5, -2}, {0.25, 4}})
	require.NoError(t, err)
	b, err := matrix.FromRows([][]float64{{-3, 0.5}, {2, -1}})
	require.NoError(t, err)

	got := a.Add(b).Sub(b)
	for i, v := range got.Data() {
		assert.InDelta(t, a.Data()[i], v, 1e-12)
	}
}

func TestMul_Elementwise(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.FromRows([][]float64{{2, 0}, {-1, 3}})
	require.NoError(t, err)

	want, err := matrix.FromRows([][]float64{{2, 0}, {-3, 12}})
	require.NoError(t, err)
	assert.True(t, a.Mul(b).Equal(want))
}

func TestScale(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, -2}, {0.5, 4}})
	require.NoError(t, err)

	want, err := matrix.FromRows([][]float64{{2, -4}, {1, 8}})
	require.NoError(t, err)
	assert.True(t, a.Scale(2).Equal(want))

	// Scaling is pure: the operand is untouched.
	assert.Equal(t, 1.0, a.At(0, 0))

	zero := a.Scale(0)
	for _, v := range zero.Data() {
		assert.Zero(t, v)
	}
}

func TestAdd_ShapeMismatch(t *testing.T) {
	a := matrix.Zeros[float64](2, 3)
	b := matrix.Zeros[float64](3, 2)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for shape mismatch")
		}
	}()

	a.Add(b)
}

func TestTranspose(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	at := a.Transpose()
	assert.Equal(t, 3, at.Rows())
	assert.Equal(t, 2, at.Cols())
	assert.Equal(t, 4.0, at.At(0, 1))
}

func TestTranspose_Involution(t *testing.T) {
	src := rand.New(rand.NewSource(7))
	a := matrix.Random[float64](5, 3, src)

	assert.True(t, a.Transpose().Transpose().Equal(a))
}

func TestMap_OverZeros(t *testing.T) {
	f := func(x float64) float64 { return x + 2.5 }

	m := matrix.Zeros[float64](2, 3).Map(f)
	for _, v := range m.Data() {
		assert.Equal(t, 2.5, v)
	}
}

func TestMap_NaNPropagates(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{0}})
	require.NoError(t, err)

	got := m.Map(func(x float64) float64 { return math.Log(x) })
	assert.True(t, math.IsInf(got.At(0, 0), -1))
}

func TestRandom_Range(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	m := matrix.Random[float64](8, 8, src)

	for _, v := range m.Data() {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
}

func TestRandom_DefaultSourceReproducible(t *testing.T) {
	a := matrix.Random[float64](4, 4, matrix.DefaultSource())
	b := matrix.Random[float64](4, 4, matrix.DefaultSource())

	assert.True(t, a.Equal(b))
}

func TestClone_Independent(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2}})
	require.NoError(t, err)

	c := a.Clone()
	c.Set(0, 0, 99)

	assert.Equal(t, 1.0, a.At(0, 0))
	assert.Equal(t, 99.0, c.At(0, 0))
}

func TestString(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	assert.Equal(t, "[[1 2] [3 4]]", m.String())
}

func BenchmarkMatMul(b *testing.B) {
	src := rand.New(rand.NewSource(1))
	x := matrix.Random[float64](64, 64, src)
	y := matrix.Random[float64](64, 64, src)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.MatMul(y)
	}
}
