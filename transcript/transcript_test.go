package transcript

import (
	"testing"

	"github.com/cassava-zkp/bls-ipa/group"
	"github.com/stretchr/testify/require"
)

func TestChallengeScalarDeterministic(t *testing.T) {
	a := New("test")
	b := New("test")

	ca, err := a.ChallengeScalar("u")
	require.NoError(t, err)
	cb, err := b.ChallengeScalar("u")
	require.NoError(t, err)
	require.Equal(t, 0, ca.Cmp(cb))
}

func TestChallengeScalarBindsPriorMessages(t *testing.T) {
	p1 := asG1(group.G1.Random())
	p2 := asG1(group.G1.Random())

	a := New("test")
	a.AppendPoint("L", p1)
	ca, err := a.ChallengeScalar("u")
	require.NoError(t, err)

	b := New("test")
	b.AppendPoint("L", p2)
	cb, err := b.ChallengeScalar("u")
	require.NoError(t, err)

	require.NotEqual(t, 0, ca.Cmp(cb))
}

func TestChallengeScalarSequenceDependsOnOrder(t *testing.T) {
	p1 := asG1(group.G1.Random())
	p2 := asG1(group.G1.Random())

	a := New("test")
	a.AppendPoint("L", p1)
	a.AppendPoint("R", p2)
	ca, _ := a.ChallengeScalar("u")

	b := New("test")
	b.AppendPoint("R", p2)
	b.AppendPoint("L", p1)
	cb, _ := b.ChallengeScalar("u")

	require.NotEqual(t, 0, ca.Cmp(cb))
}

func TestValidateAndAppendPointRejectsIdentity(t *testing.T) {
	tr := New("test")
	identity := asG1(group.G1.Identity())
	err := tr.ValidateAndAppendPoint("L", identity)
	require.ErrorIs(t, err, ErrVerification)
}

func TestInnerProductDomainSepChangesState(t *testing.T) {
	a := New("test")
	a.InnerProductDomainSep(4)
	ca, _ := a.ChallengeScalar("u")

	b := New("test")
	b.InnerProductDomainSep(8)
	cb, _ := b.ChallengeScalar("u")

	require.NotEqual(t, 0, ca.Cmp(cb))
}

func asG1(e group.Element) *group.Point {
	return e.(*group.Point)
}
