package bulletproofs

import (
	"bytes"
	"testing"

	"github.com/cassava-zkp/bls-ipa/group"
	"github.com/stretchr/testify/require"
)

func sampleProof(t *testing.T, n int) *Proof {
	t.Helper()
	f := newFixture(t, n)
	return f.create(t)
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 4, 32, 64} {
		proof := sampleProof(t, n)

		encoded, err := proof.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, 96*len(proof.L)+64, len(encoded))

		var decoded Proof
		require.NoError(t, decoded.UnmarshalBinary(encoded))

		require.Equal(t, 0, proof.A.Cmp(decoded.A))
		require.Equal(t, 0, proof.B.Cmp(decoded.B))
		require.Len(t, decoded.L, len(proof.L))
		require.Len(t, decoded.R, len(proof.R))
		for i := range proof.L {
			require.True(t, proof.L[i].IsEqual(&decoded.L[i]))
			require.True(t, proof.R[i].IsEqual(&decoded.R[i]))
		}
	}
}

func TestUnmarshalRejectsTruncatedData(t *testing.T) {
	proof := sampleProof(t, 4)
	encoded, err := proof.MarshalBinary()
	require.NoError(t, err)

	var decoded Proof
	err = decoded.UnmarshalBinary(encoded[:len(encoded)-1])
	require.ErrorIs(t, err, ErrFormat)
}

func TestUnmarshalRejectsShorterThanTwoScalars(t *testing.T) {
	var decoded Proof
	err := decoded.UnmarshalBinary(make([]byte, 10))
	require.ErrorIs(t, err, ErrFormat)
}

func TestUnmarshalRejectsNonMultipleOfPointSize(t *testing.T) {
	proof := sampleProof(t, 4)
	encoded, err := proof.MarshalBinary()
	require.NoError(t, err)

	// Insert a single extra byte into the point region so the remainder
	// is no longer a multiple of 96 once the trailing scalars are carved
	// off.
	mangled := append([]byte{0}, encoded...)

	var decoded Proof
	err = decoded.UnmarshalBinary(mangled)
	require.ErrorIs(t, err, ErrFormat)
}

func TestUnmarshalRejectsOddPointCount(t *testing.T) {
	proof := sampleProof(t, 4)
	encoded, err := proof.MarshalBinary()
	require.NoError(t, err)

	// Drop one trailing point (48 bytes) from the point region, leaving
	// an odd number of points but keeping the total a multiple of 48.
	pointRegionEnd := len(encoded) - 2*scalarSize
	mangled := append([]byte{}, encoded[:pointRegionEnd-pointSize]...)
	mangled = append(mangled, encoded[pointRegionEnd:]...)

	var decoded Proof
	err = decoded.UnmarshalBinary(mangled)
	require.ErrorIs(t, err, ErrFormat)
}

func TestUnmarshalRejectsTooManyRounds(t *testing.T) {
	// Fabricate a point region with 64 L/R pairs (lgN=64 >= 32), which
	// no real proof could ever have since it would cover 2^64 elements.
	numPairs := 64
	data := make([]byte, numPairs*2*pointSize+2*scalarSize)

	var decoded Proof
	err := decoded.UnmarshalBinary(data)
	require.ErrorIs(t, err, ErrFormat)
}

func TestUnmarshalRejectsInvalidCompressedPoint(t *testing.T) {
	proof := sampleProof(t, 4)
	encoded, err := proof.MarshalBinary()
	require.NoError(t, err)

	mangled := append([]byte{}, encoded...)
	// Flip bits in the first point's encoding so it no longer decodes to
	// a point on the curve.
	for i := 0; i < pointSize; i++ {
		mangled[i] ^= 0xff
	}

	var decoded Proof
	err = decoded.UnmarshalBinary(mangled)
	require.ErrorIs(t, err, ErrFormat)
}

func TestUnmarshalRejectsNonCanonicalScalar(t *testing.T) {
	proof := sampleProof(t, 4)
	encoded, err := proof.MarshalBinary()
	require.NoError(t, err)

	mangled := append([]byte{}, encoded...)
	// Overwrite the trailing scalar "a" with a value at or above the
	// scalar field order, encoded little-endian.
	aStart := len(mangled) - 2*scalarSize
	for i := 0; i < scalarSize; i++ {
		mangled[aStart+i] = 0xff
	}

	var decoded Proof
	err = decoded.UnmarshalBinary(mangled)
	require.ErrorIs(t, err, ErrFormat)
}

func TestSizeMatchesLayoutFormula(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16} {
		proof := sampleProof(t, n)
		require.Equal(t, 96*len(proof.L)+64, proof.Size())
	}
}

func TestMarshalBinaryIsDeterministic(t *testing.T) {
	proof := sampleProof(t, 8)
	first, err := proof.MarshalBinary()
	require.NoError(t, err)
	second, err := proof.MarshalBinary()
	require.NoError(t, err)
	require.True(t, bytes.Equal(first, second))
}

func TestMarshalBinaryPanicsOnMismatchedLRLengths(t *testing.T) {
	proof := &Proof{
		L: []group.Point{group.MapToG1("a")},
		R: []group.Point{},
	}
	require.Panics(t, func() { _, _ = proof.MarshalBinary() })
}
