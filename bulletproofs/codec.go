package bulletproofs

import (
	"fmt"

	"github.com/cassava-zkp/bls-ipa/group"
)

// pointSize is the length of a compressed BLS12-381 G1 point encoding.
const pointSize = 48

// scalarSize is the length of a canonical little-endian scalar encoding.
const scalarSize = 32

// Size returns the number of bytes MarshalBinary produces for this proof:
// 96*k + 64, where k = len(p.L) is the number of folding rounds.
func (p *Proof) Size() int {
	return len(p.L)*2*pointSize + 2*scalarSize
}

// MarshalBinary serializes the proof into a fixed-layout byte slice: k
// pairs of 48-byte compressed G1 points L_0, R_0, ..., L_{k-1}, R_{k-1},
// followed by the two 32-byte little-endian scalars a and b. This replaces
// the teacher's JSON-based marshal.go with the binary layout the original
// Rust source's to_bytes/from_bytes define.
func (p *Proof) MarshalBinary() ([]byte, error) {
	if len(p.L) != len(p.R) {
		panic("bulletproofs: MarshalBinary: mismatched L/R vector lengths")
	}

	out := make([]byte, 0, p.Size())
	for i := range p.L {
		lb, err := p.L[i].MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("bulletproofs: marshaling L[%d]: %w", i, err)
		}
		rb, err := p.R[i].MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("bulletproofs: marshaling R[%d]: %w", i, err)
		}
		out = append(out, lb...)
		out = append(out, rb...)
	}

	aBytes := group.ScalarToLEBytes(p.A)
	bBytes := group.ScalarToLEBytes(p.B)
	out = append(out, aBytes[:]...)
	out = append(out, bBytes[:]...)
	return out, nil
}

// UnmarshalBinary parses a proof from the layout MarshalBinary produces.
// It reports ErrFormat (never panics) for every way the input can be
// malformed: wrong total length, a point-region length that isn't a
// multiple of 96 bytes, too many rounds, a non-canonical point, or a
// non-canonical scalar — none of these depend on the input having come
// from an honest prover, so none of them are programmer-contract
// violations.
func (p *Proof) UnmarshalBinary(data []byte) error {
	if len(data) < 2*scalarSize {
		return fmt.Errorf("bulletproofs: proof shorter than two scalars: %w", ErrFormat)
	}
	pointBytes := len(data) - 2*scalarSize
	if pointBytes%pointSize != 0 {
		return fmt.Errorf("bulletproofs: point region is not a multiple of %d bytes: %w", pointSize, ErrFormat)
	}
	numPoints := pointBytes / pointSize
	if numPoints%2 != 0 {
		return fmt.Errorf("bulletproofs: odd number of points: %w", ErrFormat)
	}

	lgN := numPoints / 2
	if lgN >= 32 {
		return fmt.Errorf("bulletproofs: too many rounds: %w", ErrFormat)
	}

	L := make([]group.Point, lgN)
	R := make([]group.Point, lgN)
	for i := 0; i < lgN; i++ {
		pos := 2 * i * pointSize
		if err := L[i].UnmarshalBinary(data[pos : pos+pointSize]); err != nil {
			return fmt.Errorf("bulletproofs: decoding L[%d]: %w", i, wrapFormat(err))
		}
		if err := R[i].UnmarshalBinary(data[pos+pointSize : pos+2*pointSize]); err != nil {
			return fmt.Errorf("bulletproofs: decoding R[%d]: %w", i, wrapFormat(err))
		}
	}

	pos := 2 * lgN * pointSize
	a, err := group.ScalarFromLEBytes(data[pos : pos+scalarSize])
	if err != nil {
		return fmt.Errorf("bulletproofs: decoding a: %w", wrapFormat(err))
	}
	b, err := group.ScalarFromLEBytes(data[pos+scalarSize : pos+2*scalarSize])
	if err != nil {
		return fmt.Errorf("bulletproofs: decoding b: %w", wrapFormat(err))
	}

	p.L = L
	p.R = R
	p.A = a
	p.B = b
	return nil
}

// wrapFormat normalizes an underlying codec error to ErrFormat so that
// every UnmarshalBinary failure path is classifiable with errors.Is
// regardless of which lower-level decoder produced it.
func wrapFormat(err error) error {
	return fmt.Errorf("%v: %w", err, ErrFormat)
}
