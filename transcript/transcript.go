// Package transcript implements the Fiat-Shamir challenge derivation
// used by batch cell verification. A Transcript absorbs the exact
// bytes of every input in a fixed, documented order and squeezes out
// the scalars the batch check needs; the same sequence of Absorb calls
// on the same bytes always yields the same scalars; changing the order
// or omitting a byte changes every challenge downstream of it.
package transcript

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/jtraglia/peerdas-kzg/bls"
)

// domainSeparator is absorbed first, binding every transcript to this
// protocol and preventing cross-protocol challenge reuse.
const domainSeparator = "EIP7594_CELL_KZG_BATCH_V1"

// Transcript accumulates bytes into a running SHAKE256 sponge and
// derives field-element challenges from it on demand.
type Transcript struct {
	h sha3.ShakeHash
}

// New starts a fresh transcript, absorbing the protocol's domain
// separator.
func New() *Transcript {
	t := &Transcript{h: sha3.NewShake256()}
	t.h.Write([]byte(domainSeparator))
	return t
}

// Absorb appends raw bytes, prefixed by their length, so that the
// boundary between successive Absorb calls is unambiguous: absorbing
// "ab","c" cannot be confused with absorbing "a","bc".
func (t *Transcript) Absorb(data []byte) {
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(data)))
	t.h.Write(lenBuf[:])
	t.h.Write(data)
}

// AbsorbUint64 absorbs an 8-byte big-endian encoding of v, used for
// cell indices.
func (t *Transcript) AbsorbUint64(v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	t.Absorb(buf[:])
}

// ChallengeScalar squeezes 48 bytes from the sponge (128 bits of extra
// width over the 32-byte Fr encoding, to keep the bias from the final
// mod-r reduction negligible) and reduces them into an Fr element. Each
// call advances the sponge state, so successive calls yield independent
// challenges derived from everything absorbed so far.
func (t *Transcript) ChallengeScalar() bls.Fr {
	out := make([]byte, 48)
	if _, err := t.h.Read(out); err != nil {
		panic("transcript: sponge read failed: " + err.Error())
	}
	v := new(big.Int).SetBytes(out)
	return bls.NewFr(v)
}
