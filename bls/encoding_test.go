package bls

import (
	"math/big"
	"testing"
)

func TestCompressDecompressG1Generator(t *testing.T) {
	g := G1Generator()
	c := CompressG1(g)
	if c[0]&0x80 == 0 {
		t.Fatal("compression flag should be set")
	}
	got, err := DecompressG1(c[:])
	if err != nil {
		t.Fatalf("DecompressG1: %v", err)
	}
	if !got.Equal(g) {
		t.Error("round trip changed the point")
	}
}

func TestCompressDecompressG1Infinity(t *testing.T) {
	c := CompressG1(G1Infinity())
	if c[0] != 0xc0 {
		t.Errorf("infinity encoding = %#x, want 0xc0", c[0])
	}
	got, err := DecompressG1(c[:])
	if err != nil {
		t.Fatalf("DecompressG1: %v", err)
	}
	if !got.IsInfinity() {
		t.Error("expected infinity")
	}
}

func TestCompressDecompressG1ScalarMul(t *testing.T) {
	for _, k := range []int64{1, 2, 3, 100, 12345} {
		p := G1Generator().ScalarMul(big.NewInt(k))
		c := CompressG1(p)
		got, err := DecompressG1(c[:])
		if err != nil {
			t.Fatalf("DecompressG1(%d): %v", k, err)
		}
		if !got.Equal(p) {
			t.Errorf("round trip mismatch for k=%d", k)
		}
	}
}

func TestDecompressG1RejectsBadLength(t *testing.T) {
	if _, err := DecompressG1(make([]byte, 10)); err == nil {
		t.Error("expected an error for the wrong length")
	}
}

func TestDecompressG1RejectsUncompressedFlag(t *testing.T) {
	c := CompressG1(G1Generator())
	c[0] &^= 0x80
	if _, err := DecompressG1(c[:]); err == nil {
		t.Error("expected an error when the compression flag is clear")
	}
}

func TestCompressDecompressG2Generator(t *testing.T) {
	g := G2Generator()
	c := CompressG2(g)
	got, err := DecompressG2(c[:])
	if err != nil {
		t.Fatalf("DecompressG2: %v", err)
	}
	if !got.Equal(g) {
		t.Error("round trip changed the point")
	}
}

func TestCompressDecompressG2Infinity(t *testing.T) {
	c := CompressG2(G2Infinity())
	if c[0] != 0xc0 {
		t.Errorf("infinity encoding = %#x, want 0xc0", c[0])
	}
	got, err := DecompressG2(c[:])
	if err != nil {
		t.Fatalf("DecompressG2: %v", err)
	}
	if !got.IsInfinity() {
		t.Error("expected infinity")
	}
}
