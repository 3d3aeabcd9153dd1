package group

import (
	"errors"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// directMSMThreshold is the largest point count that MultiScalarMul sends
// through the plain accumulation loop instead of the batched path.
const directMSMThreshold = 16

// MultiScalarMul computes the sum of points[i] scaled by scalars[i]. It
// splits between a direct accumulation path and a batched path depending on
// input size, the same split anupsv-bbsplus-signatures/pkg/crypto/msm.go
// makes for G1 multi-scalar multiplication over this same curve: small
// inputs go straight through an accumulation loop, larger ones first reduce
// every scalar to its canonical big.Int form before accumulating so that a
// caller's malformed scalar is caught before any curve arithmetic runs.
func MultiScalarMul(points []Point, scalars []*big.Int) (Point, error) {
	if len(points) != len(scalars) {
		return Point{}, errors.New("group: mismatched point/scalar count")
	}
	if len(points) == 0 {
		return Point{}, nil
	}
	if len(points) > directMSMThreshold {
		return batchedMSM(points, scalars)
	}
	return directMSM(points, scalars)
}

func directMSM(points []Point, scalars []*big.Int) (Point, error) {
	var acc bls12381.G1Jac
	for i := range points {
		if scalars[i] == nil {
			return Point{}, errors.New("group: nil scalar in multi-scalar multiplication")
		}
		s := reduced(scalars[i])
		if s.Sign() == 0 || points[i].p.IsInfinity() {
			continue
		}
		var tmp bls12381.G1Jac
		tmp.FromAffine(&points[i].p)
		tmp.ScalarMultiplication(&tmp, s)
		acc.AddAssign(&tmp)
	}
	var out Point
	out.p.FromJacobian(&acc)
	return out, nil
}

// batchedMSM reduces every scalar up front, so a malformed input is reported
// before any partial accumulation happens, then accumulates exactly as
// directMSM does.
func batchedMSM(points []Point, scalars []*big.Int) (Point, error) {
	reducedScalars := make([]*big.Int, len(scalars))
	for i, s := range scalars {
		if s == nil {
			return Point{}, errors.New("group: nil scalar in multi-scalar multiplication")
		}
		reducedScalars[i] = reduced(s)
	}

	var acc bls12381.G1Jac
	for i := range points {
		if reducedScalars[i].Sign() == 0 || points[i].p.IsInfinity() {
			continue
		}
		var tmp bls12381.G1Jac
		tmp.FromAffine(&points[i].p)
		tmp.ScalarMultiplication(&tmp, reducedScalars[i])
		acc.AddAssign(&tmp)
	}
	var out Point
	out.p.FromJacobian(&acc)
	return out, nil
}
