package transcript

import (
	"testing"

	"github.com/jtraglia/peerdas-kzg/bls"
)

func TestChallengeScalarDeterministic(t *testing.T) {
	build := func() bls.Fr {
		tr := New()
		tr.Absorb([]byte("commitment-0"))
		tr.AbsorbUint64(7)
		tr.Absorb([]byte("cell-bytes"))
		return tr.ChallengeScalar()
	}

	a := build()
	b := build()
	if !a.Equal(b) {
		t.Fatal("same absorbed bytes should yield the same challenge")
	}
}

func TestChallengeScalarSensitiveToOrder(t *testing.T) {
	tr1 := New()
	tr1.Absorb([]byte("a"))
	tr1.Absorb([]byte("b"))
	c1 := tr1.ChallengeScalar()

	tr2 := New()
	tr2.Absorb([]byte("b"))
	tr2.Absorb([]byte("a"))
	c2 := tr2.ChallengeScalar()

	if c1.Equal(c2) {
		t.Fatal("swapping absorb order should change the challenge")
	}
}

func TestSuccessiveChallengesDiffer(t *testing.T) {
	tr := New()
	tr.Absorb([]byte("seed"))
	c1 := tr.ChallengeScalar()
	c2 := tr.ChallengeScalar()
	if c1.Equal(c2) {
		t.Fatal("successive challenges from the same transcript should differ")
	}
}
