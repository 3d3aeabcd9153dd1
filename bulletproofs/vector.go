/*
 * Copyright (C) 2019 ING BANK N.V.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package bulletproofs

import (
	"math/big"

	"github.com/ing-bank/zkrp/util/bn"

	"github.com/cassava-zkp/bls-ipa/group"
)

// InnerProduct computes the inner product of a and b over the BLS12-381
// scalar field. The lengths of a and b are a programmer contract, not
// caller-supplied data, so a mismatch panics rather than returning an
// error, matching the original Rust source's inner_product (which
// panic!s on the same condition) and the teacher's VectorInnerProduct.
func InnerProduct(a, b []*big.Int) *big.Int {
	if len(a) != len(b) {
		panic("bulletproofs: InnerProduct: vector length mismatch")
	}
	result := big.NewInt(0)
	for i := range a {
		term := bn.Multiply(a[i], b[i])
		result = bn.Add(result, term)
	}
	return bn.Mod(result, group.Order)
}

// vectorAdd computes a[i] + b[i] for every i, reduced modulo the scalar
// field order. The lengths of a and b must already match.
func vectorAdd(a, b []*big.Int) []*big.Int {
	if len(a) != len(b) {
		panic("bulletproofs: vectorAdd: vector length mismatch")
	}
	result := make([]*big.Int, len(a))
	for i := range a {
		result[i] = addMod(a[i], b[i])
	}
	return result
}

// vectorScalarMul computes a[i]*s for every i, reduced modulo the scalar
// field order.
func vectorScalarMul(a []*big.Int, s *big.Int) []*big.Int {
	result := make([]*big.Int, len(a))
	for i := range a {
		result[i] = mulMod(a[i], s)
	}
	return result
}

// vectorHadamard computes a[i]*b[i] for every i, reduced modulo the scalar
// field order. The lengths of a and b must already match.
func vectorHadamard(a, b []*big.Int) []*big.Int {
	if len(a) != len(b) {
		panic("bulletproofs: vectorHadamard: vector length mismatch")
	}
	result := make([]*big.Int, len(a))
	for i := range a {
		result[i] = mulMod(a[i], b[i])
	}
	return result
}

// foldScalarVector computes xL[i]*u + xR[i]*uInv for every i: the
// scalar-vector fold every inner-product round applies to a and b (with u,
// uInv swapped between a and b, per Create).
func foldScalarVector(xL, xR []*big.Int, u, uInv *big.Int) []*big.Int {
	return vectorAdd(vectorScalarMul(xL, u), vectorScalarMul(xR, uInv))
}

// scalarInverse returns the multiplicative inverse of s modulo the scalar
// field order. It is the caller's responsibility to ensure s is non-zero;
// this module only ever inverts transcript challenges, which are already
// checked non-zero by transcript.ChallengeScalar.
func scalarInverse(s *big.Int) *big.Int {
	return bn.ModInverse(s, group.Order)
}

// mulMod, addMod and negMod are the scalar-field primitives the vector
// helpers above are built from, and that Create, VerificationScalars and
// Verify also call directly wherever they work a single term rather than a
// whole vector (per-round challenge folding, the s-vector, the final
// verification scalars).
func mulMod(a, b *big.Int) *big.Int {
	return bn.Mod(bn.Multiply(a, b), group.Order)
}

func addMod(a, b *big.Int) *big.Int {
	return bn.Mod(bn.Add(a, b), group.Order)
}

func negMod(a *big.Int) *big.Int {
	return bn.Mod(bn.Sub(big.NewInt(0), a), group.Order)
}
