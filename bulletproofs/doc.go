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

// Package bulletproofs implements the Bulletproofs inner-product argument
// over BLS12-381 G1: a non-interactive proof of knowledge of two vectors a,
// b whose inner product and whose commitment under a pair of generator
// vectors G, H (optionally twisted by per-index factors) match a publicly
// known statement, in O(log n) proof size and verifier work linear in n.
//
// A proof is produced with Create and checked with Verify. A parent
// protocol that wants to batch this check into a larger multi-scalar
// multiplication can instead call VerificationScalars directly and fold the
// resulting challenge-squares and s-vector into its own check; deriving the
// generator vectors themselves (the BulletproofGens role in the reference
// construction) is left to the caller.
package bulletproofs
