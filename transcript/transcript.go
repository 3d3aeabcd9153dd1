// Package transcript implements the Fiat-Shamir transcript the inner-product
// argument binds its challenges to. It is a minimal, from-scratch substitute
// for the merlin transcript the original Rust implementation uses: merlin is
// not part of this module's dependency surface, so the same sequential,
// labeled absorb/squeeze discipline is built directly on a running SHA-256
// state, the way wyf-accept-eth2030/pkg/crypto/ipa.go's ipaTranscript chains
// a hash across appended points and scalars for its own recursive-halving
// IPA over a different curve.
package transcript

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/ing-bank/zkrp/util/byteconversion"

	"github.com/cassava-zkp/bls-ipa/group"
)

// Transcript is a sequential Fiat-Shamir oracle. Callers append labeled
// protocol messages to it and draw labeled challenge scalars from it; the
// state of the underlying hash depends on everything absorbed so far, so
// reordering or substituting a message changes every later challenge.
type Transcript struct {
	state [32]byte
}

// New starts a transcript bound to a fixed top-level label, mirroring
// merlin's Transcript::new(label) entry point.
func New(label string) *Transcript {
	t := &Transcript{}
	t.absorb([]byte("init"), []byte(label))
	return t
}

func (t *Transcript) absorb(label, message []byte) {
	h := sha256.New()
	h.Write(t.state[:])
	h.Write(label)
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(message)))
	h.Write(lenBuf[:])
	h.Write(message)
	copy(t.state[:], h.Sum(nil))
}

// InnerProductDomainSep binds the transcript to the vector length the
// inner-product proof being created or verified operates over, so a proof
// for one length can never be replayed as a valid proof for another.
func (t *Transcript) InnerProductDomainSep(n uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	t.absorb([]byte("dom-sep"), append([]byte("innerproduct"), buf[:]...))
}

// AppendPoint absorbs a group element's canonical compressed encoding under
// the given label.
func (t *Transcript) AppendPoint(label string, p *group.Point) {
	b, err := p.MarshalBinary()
	if err != nil {
		panic(fmt.Sprintf("transcript: marshaling point for label %q: %v", label, err))
	}
	t.absorb([]byte(label), b)
}

// ValidateAndAppendPoint absorbs a group element the same way AppendPoint
// does, but first rejects the identity element: a verifier must never
// accept an L/R pair built on the group's identity, since that would let a
// prover bind a round the challenge derivation cannot actually constrain.
func (t *Transcript) ValidateAndAppendPoint(label string, p *group.Point) error {
	if p.IsIdentity() {
		return fmt.Errorf("transcript: %s is the identity point: %w", label, ErrVerification)
	}
	t.AppendPoint(label, p)
	return nil
}

// ChallengeScalar squeezes a labeled challenge scalar out of the transcript,
// then absorbs the label so subsequent challenges depend on having drawn
// this one. A zero challenge is never usable downstream (it has no inverse)
// and is reported as ErrFormat rather than silently producing a degenerate
// proof.
func (t *Transcript) ChallengeScalar(label string) (*big.Int, error) {
	h := sha256.New()
	h.Write(t.state[:])
	h.Write([]byte(label))
	h.Write([]byte("challenge"))
	digest := h.Sum(nil)

	t.absorb([]byte(label), digest)

	// byteconversion.FromByteArray is the same digest-to-Zp conversion the
	// teacher's hashIP/hashIPSP use; it does not know about this module's
	// scalar field, so the result is reduced modulo group.Order here.
	v, err := byteconversion.FromByteArray(digest)
	if err != nil {
		return nil, fmt.Errorf("transcript: converting challenge digest for label %q: %w", label, err)
	}
	v.Mod(v, group.Order)
	if v.Sign() == 0 {
		return nil, fmt.Errorf("transcript: zero challenge for label %q: %w", label, ErrFormat)
	}
	return v, nil
}

// ErrFormat reports a structural defect: a transcript challenge that came
// out zero, or any other condition that does not depend on the validity of
// the cryptographic statement being proved.
var ErrFormat = errors.New("transcript: format error")

// ErrVerification reports that a transcript-bound value failed an
// algebraic or cryptographic check, as opposed to being merely malformed.
var ErrVerification = errors.New("transcript: verification error")
