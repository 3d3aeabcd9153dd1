package group

import (
	"errors"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Order is the order of the BLS12-381 G1 scalar field (the "r" subgroup
// order in the curve's usual presentation). Every scalar the inner-product
// argument produces, appends to a transcript, or serializes is reduced
// modulo this value.
var Order, _ = new(big.Int).SetString(
	"73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// dst is the domain separation tag used when mapping a label to a G1 point.
// It follows the hash-to-curve suite naming convention used throughout the
// BLS12-381 ecosystem.
const dst = "BLS-IPA-BLS12381G1_XMD:SHA-256_SSWU_RO_"

// Point is a BLS12-381 G1 group element. It is the sole concrete
// implementation of Element used by this module.
type Point struct {
	p bls12381.G1Affine
}

// G1 is the sole concrete Group implementation used by this module.
var G1 Group = g1Group{}

type g1Group struct{}

func (g1Group) Name() string { return "BLS12-381-G1" }

func (g1Group) Element() Element { return &Point{} }

func (g1Group) Identity() Element {
	return &Point{p: bls12381.G1Affine{}}
}

func (g1Group) Generator() Element {
	_, _, gen, _ := bls12381.Generators()
	return &Point{p: gen}
}

func (g1Group) Random() Element {
	_, _, gen, _ := bls12381.Generators()
	s, err := RandomScalar()
	if err != nil {
		panic(err)
	}
	var j bls12381.G1Jac
	j.FromAffine(&gen)
	j.ScalarMultiplication(&j, s)
	var out Point
	out.p.FromJacobian(&j)
	return &out
}

func (g1Group) N() *big.Int { return new(big.Int).Set(Order) }

func asPoint(x Element) *Point {
	p, ok := x.(*Point)
	if !ok {
		panic(fmt.Sprintf("group: expected *Point, got %T", x))
	}
	return p
}

func (e *Point) Add(x, y Element) Element {
	X, Y := asPoint(x), asPoint(y)
	var xj bls12381.G1Jac
	xj.FromAffine(&X.p)
	var yj bls12381.G1Jac
	yj.FromAffine(&Y.p)
	xj.AddAssign(&yj)
	e.p.FromJacobian(&xj)
	return e
}

func (e *Point) Subtract(x, y Element) Element {
	X, Y := asPoint(x), asPoint(y)
	var xj bls12381.G1Jac
	xj.FromAffine(&X.p)
	var yj bls12381.G1Jac
	yj.FromAffine(&Y.p)
	yj.Neg(&yj)
	xj.AddAssign(&yj)
	e.p.FromJacobian(&xj)
	return e
}

func (e *Point) Negate(x Element) Element {
	X := asPoint(x)
	var xj bls12381.G1Jac
	xj.FromAffine(&X.p)
	xj.Neg(&xj)
	e.p.FromJacobian(&xj)
	return e
}

func (e *Point) Scale(x Element, s *big.Int) Element {
	X := asPoint(x)
	var xj bls12381.G1Jac
	xj.FromAffine(&X.p)
	xj.ScalarMultiplication(&xj, reduced(s))
	e.p.FromJacobian(&xj)
	return e
}

func (e *Point) BaseScale(s *big.Int) Element {
	_, _, gen, _ := bls12381.Generators()
	var j bls12381.G1Jac
	j.FromAffine(&gen)
	j.ScalarMultiplication(&j, reduced(s))
	e.p.FromJacobian(&j)
	return e
}

func (e *Point) Set(x Element) Element {
	e.p = asPoint(x).p
	return e
}

func (e *Point) IsEqual(x Element) bool {
	X := asPoint(x)
	return e.p.Equal(&X.p)
}

func (e *Point) IsIdentity() bool {
	return e.p.IsInfinity()
}

func (e *Point) GroupOrder() *big.Int {
	return new(big.Int).Set(Order)
}

func (e *Point) String() string {
	return e.p.String()
}

// MarshalBinary returns the canonical 48-byte compressed encoding of the
// point.
func (e *Point) MarshalBinary() ([]byte, error) {
	b := e.p.Bytes()
	return b[:], nil
}

// UnmarshalBinary reads a canonical 48-byte compressed point, rejecting
// points not on the curve or not in the prime-order subgroup.
func (e *Point) UnmarshalBinary(data []byte) error {
	if len(data) != bls12381.SizeOfG1AffineCompressed {
		return errors.New("group: wrong compressed point length")
	}
	var buf [bls12381.SizeOfG1AffineCompressed]byte
	copy(buf[:], data)
	_, err := e.p.SetBytes(buf[:])
	if err != nil {
		return fmt.Errorf("group: invalid compressed point: %w", err)
	}
	return nil
}

// MapToG1 deterministically derives a G1 point from a label, for use as an
// independent generator (Q, or the members of the G/H bases). It stands in
// for the BulletproofGens collaborator this module's spec places out of
// scope: callers that need many generators derive them this way rather than
// through any shared state.
func MapToG1(label string) Point {
	p, err := bls12381.HashToG1([]byte(label), []byte(dst))
	if err != nil {
		panic(fmt.Sprintf("group: hash to curve failed: %v", err))
	}
	return Point{p: p}
}

// RandomScalar returns a uniformly random non-zero element of the scalar
// field as a big.Int.
func RandomScalar() (*big.Int, error) {
	var f fr.Element
	for {
		if _, err := f.SetRandom(); err != nil {
			return nil, err
		}
		if !f.IsZero() {
			break
		}
	}
	var out big.Int
	f.ToBigIntRegular(&out)
	return &out, nil
}

func reduced(s *big.Int) *big.Int {
	return new(big.Int).Mod(s, Order)
}

// ScalarToLEBytes encodes a scalar as a canonical 32-byte little-endian
// array, matching the wire format the rest of the ecosystem's BLS12-381
// scalar codecs use.
func ScalarToLEBytes(s *big.Int) [32]byte {
	var f fr.Element
	f.SetBigInt(reduced(s))
	be := f.Bytes()
	var le [32]byte
	for i := 0; i < 32; i++ {
		le[i] = be[31-i]
	}
	return le
}

// ScalarFromLEBytes decodes a canonical 32-byte little-endian scalar,
// rejecting values that are not fully reduced modulo Order.
func ScalarFromLEBytes(b []byte) (*big.Int, error) {
	if len(b) != 32 {
		return nil, errors.New("group: wrong scalar length")
	}
	be := make([]byte, 32)
	for i := 0; i < 32; i++ {
		be[i] = b[31-i]
	}
	v := new(big.Int).SetBytes(be)
	if v.Cmp(Order) >= 0 {
		return nil, errors.New("group: non-canonical scalar")
	}
	return v, nil
}
