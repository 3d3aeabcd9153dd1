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
	"fmt"
	"math/big"
	"math/bits"

	"github.com/cassava-zkp/bls-ipa/group"
	"github.com/cassava-zkp/bls-ipa/transcript"
)

// Proof is a non-interactive inner-product argument: log2(n) pairs of
// round commitments (L, R), plus the two scalars a, b the witness vectors
// collapse to once every round has folded. It is the generalized
// descendant of the teacher's InnerProductProofSP, adapted to the single
// MSM-based verification equation and to the g/h factor-vector fusion
// described below.
type Proof struct {
	L []group.Point
	R []group.Point
	A *big.Int
	B *big.Int
}

// Create produces an inner-product proof that a and b, committed under the
// generator vectors G and H (with H twisted by the per-index hFactors, and
// G by gFactors) and tied to Q through their inner product, satisfy the
// equation Verify checks. transcript must already carry whatever a parent
// protocol wants bound into the challenges; Create only appends the domain
// separator and the per-round L/R commitments on top of that.
//
// The first round folds the g/h factor vectors directly into its
// multi-scalar multiplications rather than pre-scaling G and H, which
// saves the 2n point scalings the naive approach would pay up front; every
// later round operates on the now-factor-free G, H the first round leaves
// behind. This mirrors the original Rust source's create(), which the
// teacher's own bulletproofs port never implemented.
//
// The lengths of G, H, a, b, gFactors and hFactors must all be equal and a
// power of two; this is a programmer contract, not a reportable runtime
// condition, so a violation panics rather than returning an error.
func Create(
	tr *transcript.Transcript,
	Q group.Point,
	gFactors, hFactors []*big.Int,
	G, H []group.Point,
	a, b []*big.Int,
) (*Proof, error) {
	n := len(G)
	if n == 0 {
		panic("bulletproofs: Create: n must be non-zero")
	}
	if n&(n-1) != 0 {
		panic("bulletproofs: Create: n must be a power of two")
	}
	if len(H) != n || len(a) != n || len(b) != n || len(gFactors) != n || len(hFactors) != n {
		panic("bulletproofs: Create: vector length mismatch")
	}

	// Reslice as we fold, exactly as the recursive version did through
	// recursion: the "left" half of each vector, after folding, becomes
	// the vector for the next round.
	G = append([]group.Point(nil), G...)
	H = append([]group.Point(nil), H...)
	a = append([]*big.Int(nil), a...)
	b = append([]*big.Int(nil), b...)

	tr.InnerProductDomainSep(uint64(n))

	lgN := bits.Len(uint(n)) - 1
	Ls := make([]group.Point, 0, lgN)
	Rs := make([]group.Point, 0, lgN)

	if n != 1 {
		m := n / 2
		aL, aR := a[:m], a[m:]
		bL, bR := b[:m], b[m:]
		GL, GR := G[:m], G[m:]
		HL, HR := H[:m], H[m:]

		cL := InnerProduct(aL, bR)
		cR := InnerProduct(aR, bL)

		lScalars := make([]*big.Int, 0, 2*m+1)
		lScalars = append(lScalars, vectorHadamard(aL, gFactors[m:])...)
		lScalars = append(lScalars, vectorHadamard(bR, hFactors[:m])...)
		lScalars = append(lScalars, cL)
		lPoints := make([]group.Point, 0, 2*m+1)
		lPoints = append(lPoints, GR...)
		lPoints = append(lPoints, HL...)
		lPoints = append(lPoints, Q)
		L, err := group.MultiScalarMul(lPoints, lScalars)
		if err != nil {
			return nil, err
		}

		rScalars := make([]*big.Int, 0, 2*m+1)
		rScalars = append(rScalars, vectorHadamard(aR, gFactors[:m])...)
		rScalars = append(rScalars, vectorHadamard(bL, hFactors[m:])...)
		rScalars = append(rScalars, cR)
		rPoints := make([]group.Point, 0, 2*m+1)
		rPoints = append(rPoints, GL...)
		rPoints = append(rPoints, HR...)
		rPoints = append(rPoints, Q)
		R, err := group.MultiScalarMul(rPoints, rScalars)
		if err != nil {
			return nil, err
		}

		Ls = append(Ls, L)
		Rs = append(Rs, R)
		tr.AppendPoint("L", &L)
		tr.AppendPoint("R", &R)

		u, err := tr.ChallengeScalar("u")
		if err != nil {
			return nil, err
		}
		uInv := scalarInverse(u)

		for i := 0; i < m; i++ {
			var gl, gr group.Point
			gl.Scale(&GL[i], mulMod(uInv, gFactors[i]))
			gr.Scale(&GR[i], mulMod(u, gFactors[m+i]))
			GL[i].Add(&gl, &gr)

			var hl, hr group.Point
			hl.Scale(&HL[i], mulMod(u, hFactors[i]))
			hr.Scale(&HR[i], mulMod(uInv, hFactors[m+i]))
			HL[i].Add(&hl, &hr)
		}

		a, b, G, H, n = foldScalarVector(aL, aR, u, uInv), foldScalarVector(bL, bR, uInv, u), GL, HL, m
	}

	for n != 1 {
		m := n / 2
		aL, aR := a[:m], a[m:]
		bL, bR := b[:m], b[m:]
		GL, GR := G[:m], G[m:]
		HL, HR := H[:m], H[m:]

		cL := InnerProduct(aL, bR)
		cR := InnerProduct(aR, bL)

		lScalars := make([]*big.Int, 0, 2*m+1)
		lPoints := make([]group.Point, 0, 2*m+1)
		lScalars = append(lScalars, aL...)
		lPoints = append(lPoints, GR...)
		lScalars = append(lScalars, bR...)
		lPoints = append(lPoints, HL...)
		lScalars = append(lScalars, cL)
		lPoints = append(lPoints, Q)
		L, err := group.MultiScalarMul(lPoints, lScalars)
		if err != nil {
			return nil, err
		}

		rScalars := make([]*big.Int, 0, 2*m+1)
		rPoints := make([]group.Point, 0, 2*m+1)
		rScalars = append(rScalars, aR...)
		rPoints = append(rPoints, GL...)
		rScalars = append(rScalars, bL...)
		rPoints = append(rPoints, HR...)
		rScalars = append(rScalars, cR)
		rPoints = append(rPoints, Q)
		R, err := group.MultiScalarMul(rPoints, rScalars)
		if err != nil {
			return nil, err
		}

		Ls = append(Ls, L)
		Rs = append(Rs, R)
		tr.AppendPoint("L", &L)
		tr.AppendPoint("R", &R)

		u, err := tr.ChallengeScalar("u")
		if err != nil {
			return nil, err
		}
		uInv := scalarInverse(u)

		for i := 0; i < m; i++ {
			var gl, gr group.Point
			gl.Scale(&GL[i], uInv)
			gr.Scale(&GR[i], u)
			GL[i].Add(&gl, &gr)

			var hl, hr group.Point
			hl.Scale(&HL[i], u)
			hr.Scale(&HR[i], uInv)
			HL[i].Add(&hl, &hr)
		}

		a, b, G, H, n = foldScalarVector(aL, aR, u, uInv), foldScalarVector(bL, bR, uInv, u), GL, HL, m
	}

	return &Proof{L: Ls, R: Rs, A: a[0], B: b[0]}, nil
}

// VerificationScalars recomputes the challenges this proof was created
// with, and returns their squares, the squares of their inverses, and the
// inductively-defined s-vector a parent protocol folds the G/H terms of the
// verification equation through. n is the vector length the proof claims
// to cover; the caller supplies it explicitly so that a malicious proof
// with an implausibly large round count cannot force an unbounded
// allocation here.
func (p *Proof) VerificationScalars(n int, tr *transcript.Transcript) (uSq, uInvSq, s []*big.Int, err error) {
	lgN := len(p.L)
	if lgN != len(p.R) {
		panic("bulletproofs: VerificationScalars: mismatched L/R vector lengths")
	}
	if lgN >= 32 {
		return nil, nil, nil, fmt.Errorf("bulletproofs: proof has too many rounds: %w", ErrVerification)
	}
	if n != 1<<uint(lgN) {
		return nil, nil, nil, fmt.Errorf("bulletproofs: n does not match proof round count: %w", ErrVerification)
	}

	tr.InnerProductDomainSep(uint64(n))

	challenges := make([]*big.Int, lgN)
	for i := 0; i < lgN; i++ {
		if err := tr.ValidateAndAppendPoint("L", &p.L[i]); err != nil {
			return nil, nil, nil, err
		}
		if err := tr.ValidateAndAppendPoint("R", &p.R[i]); err != nil {
			return nil, nil, nil, err
		}
		u, err := tr.ChallengeScalar("u")
		if err != nil {
			return nil, nil, nil, err
		}
		challenges[i] = u
	}

	challengesInv := make([]*big.Int, lgN)
	allInv := big.NewInt(1)
	for i, u := range challenges {
		challengesInv[i] = scalarInverse(u)
		allInv = mulMod(allInv, challengesInv[i])
	}

	uSq = make([]*big.Int, lgN)
	uInvSq = make([]*big.Int, lgN)
	for i := 0; i < lgN; i++ {
		uSq[i] = mulMod(challenges[i], challenges[i])
		uInvSq[i] = mulMod(challengesInv[i], challengesInv[i])
	}

	// s values are built inductively: s[0] is the product of all inverse
	// challenges, and s[i] for i>0 reuses s[i-k] where k is the highest
	// power of two not exceeding i, scaled by the square of the challenge
	// that bit corresponds to. The challenges are stored in creation
	// order [u_{lg n},...,u_1], so the challenge for bit lg(i) lives at
	// index (lgN-1)-lg(i).
	s = make([]*big.Int, n)
	s[0] = allInv
	for i := 1; i < n; i++ {
		lgI := bits.Len(uint(i)) - 1
		k := 1 << uint(lgI)
		uLgISq := uSq[(lgN-1)-lgI]
		s[i] = mulMod(s[i-k], uLgISq)
	}

	return uSq, uInvSq, s, nil
}

// Verify checks the proof against the statement P = <a,G> + <b,H'> + <a,b>Q
// (where H'_i = H_i * hFactors_i and G is similarly twisted by gFactors),
// folding the whole check into a single multi-scalar multiplication rather
// than folding P round by round as the teacher's InnerProductProofSP.VerifySP
// did; this is the form a parent protocol would batch into its own larger
// check, and is what the original Rust source's verify() computes.
func (p *Proof) Verify(
	n int,
	tr *transcript.Transcript,
	gFactors, hFactors []*big.Int,
	P, Q group.Point,
	G, H []group.Point,
) error {
	uSq, uInvSq, s, err := p.VerificationScalars(n, tr)
	if err != nil {
		return err
	}

	total := 1 + len(G) + len(H) + len(p.L) + len(p.R)
	scalars := make([]*big.Int, 0, total)
	points := make([]group.Point, 0, total)

	scalars = append(scalars, mulMod(p.A, p.B))
	points = append(points, Q)

	for i := range G {
		scalars = append(scalars, mulMod(mulMod(p.A, s[i]), gFactors[i]))
		points = append(points, G[i])
	}

	// 1/s[i] is s[n-1-i]: s's inverse-symmetry property lets the verifier
	// avoid a second batch inversion for the H-side scalars.
	for i := range H {
		sInv := s[len(s)-1-i]
		scalars = append(scalars, mulMod(mulMod(p.B, sInv), hFactors[i]))
		points = append(points, H[i])
	}

	for i := range p.L {
		scalars = append(scalars, negMod(uSq[i]))
		points = append(points, p.L[i])
	}
	for i := range p.R {
		scalars = append(scalars, negMod(uInvSq[i]))
		points = append(points, p.R[i])
	}

	expectP, err := group.MultiScalarMul(points, scalars)
	if err != nil {
		return err
	}

	if !expectP.IsEqual(&P) {
		return fmt.Errorf("bulletproofs: inner-product check failed: %w", ErrVerification)
	}
	return nil
}
