package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJoiner(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		j, err := NewJoiner("ACGU", "().")
		require.NoError(t, err)
		assert.Equal(t, 12, j.Size())
		assert.Equal(t, "ACGU", j.Primary())
		assert.Equal(t, "().", j.Secondary())
	})

	t.Run("Overlap", func(t *testing.T) {
		_, err := NewJoiner("ACGU", "A.")
		var oe *OverlapError
		require.ErrorAs(t, err, &oe)
		assert.Equal(t, byte('A'), oe.Char)
	})

	t.Run("EmptySecondary", func(t *testing.T) {
		_, err := NewJoiner("ACGU", "")
		assert.ErrorIs(t, err, ErrEmptyAlphabet)
	})
}

func TestJoinerEncode(t *testing.T) {
	j, err := NewJoiner("ACGU", "().")
	require.NoError(t, err)

	t.Run("Shape", func(t *testing.T) {
		m, err := j.Encode("CCCCAUAGGG", "((((...)))")
		require.NoError(t, err)
		assert.Equal(t, 10, m.Rows)
		assert.Equal(t, 12, m.Cols)
		for i := 0; i < m.Rows; i++ {
			var sum float32
			for _, v := range m.Row(i) {
				sum += v
			}
			assert.Equal(t, float32(1), sum)
		}
	})

	t.Run("PairingRule", func(t *testing.T) {
		// 'C' has primary index 1, '.' secondary index 2: joint 1*3+2 = 5.
		m, err := j.Encode("C", ".")
		require.NoError(t, err)
		assert.Equal(t, float32(1), m.At(0, 5))
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := j.Encode("ACGU", "(..")
		var lme *LengthMismatchError
		require.ErrorAs(t, err, &lme)
		assert.Equal(t, 4, lme.SeqLen)
		assert.Equal(t, 3, lme.OtherLen)
	})

	t.Run("UnknownStructureChar", func(t *testing.T) {
		_, err := j.Encode("AC", "(x")
		var uce *UnknownCharError
		require.ErrorAs(t, err, &uce)
		assert.Equal(t, byte('x'), uce.Char)
	})
}

func TestJoinerRoundTrip(t *testing.T) {
	j, err := NewJoiner("ACGU", "().")
	require.NoError(t, err)

	seq, str := "GGGGUUCCCC", "((((..))))"
	m, err := j.Encode(seq, str)
	require.NoError(t, err)

	gotSeq, gotStr, err := j.Decode(m)
	require.NoError(t, err)
	assert.Equal(t, seq, gotSeq)
	assert.Equal(t, str, gotStr)
}

func TestJoinerEncodePWM(t *testing.T) {
	j, err := NewJoiner("ACGU", "().")
	require.NoError(t, err)

	t.Run("SliceFill", func(t *testing.T) {
		pwm := NewMatrix(2, 3)
		pwm.Set(0, 0, 0.9)
		pwm.Set(0, 2, 0.1)
		pwm.Set(1, 1, 1.0)

		// "GA": 'G' primary index 2 owns columns 6..8, 'A' owns 0..2.
		m, err := j.EncodePWM("GA", pwm)
		require.NoError(t, err)
		assert.Equal(t, 2, m.Rows)
		assert.Equal(t, 12, m.Cols)
		assert.Equal(t, float32(0.9), m.At(0, 6))
		assert.Equal(t, float32(0.1), m.At(0, 8))
		assert.Equal(t, float32(1.0), m.At(1, 1))

		// All columns outside the owned slice stay zero.
		for _, col := range []int{0, 1, 2, 3, 4, 5, 9, 10, 11} {
			assert.Equal(t, float32(0), m.At(0, col))
		}
	})

	t.Run("RowCountMismatch", func(t *testing.T) {
		_, err := j.EncodePWM("GA", NewMatrix(3, 3))
		var lme *LengthMismatchError
		assert.ErrorAs(t, err, &lme)
	})

	t.Run("ColumnCountMismatch", func(t *testing.T) {
		_, err := j.EncodePWM("GA", NewMatrix(2, 4))
		var se *ShapeError
		assert.ErrorAs(t, err, &se)
	})

	t.Run("ArgmaxDecode", func(t *testing.T) {
		pwm := NewMatrix(1, 3)
		pwm.Set(0, 1, 0.8)
		pwm.Set(0, 2, 0.2)
		m, err := j.EncodePWM("U", pwm)
		require.NoError(t, err)

		seq, str, err := j.Decode(m)
		require.NoError(t, err)
		assert.Equal(t, "U", seq)
		assert.Equal(t, ")", str)
	})
}
