package bulletproofs

import "github.com/cassava-zkp/bls-ipa/transcript"

// ErrFormat and ErrVerification are the two recoverable error kinds the
// inner-product argument can report, mirroring the original Rust source's
// single ProofError enum shared across its transcript and proof modules.
// ErrFormat covers structural defects in data that came from outside the
// program (a malformed proof, a zero transcript challenge); ErrVerification
// covers a structurally well-formed proof that simply fails the algebraic
// check. Conditions that indicate a programmer contract violation instead
// of untrusted input (mismatched vector lengths, a vector length that is
// not a power of two) panic; see Create, VerificationScalars and Verify.
var (
	ErrFormat       = transcript.ErrFormat
	ErrVerification = transcript.ErrVerification
)
