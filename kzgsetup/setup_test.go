package kzgsetup

import "testing"

func TestLoadFromJSONMalformed(t *testing.T) {
	_, err := LoadFromJSON([]byte("not json"))
	if err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestLoadFromJSONMissingG2(t *testing.T) {
	_, err := LoadFromJSON([]byte(`{"g1_monomial":[],"g1_lagrange":[],"g2_monomial":[]}`))
	if err == nil {
		t.Fatal("expected an error for too few g2_monomial points")
	}
}

func TestLoadFromJSONShortG1Monomial(t *testing.T) {
	doc := `{"g2_monomial":[` + repeatHex(FieldElementsPerCell+1) + `],"g1_monomial":["0x` + g1InfinityHex + `"]}`
	_, err := LoadFromJSON([]byte(doc))
	if err == nil {
		t.Fatal("expected an error for too few g1_monomial points")
	}
}

// g1InfinityHex is the compressed encoding of the G1 point at infinity:
// the top two bits (compressed, infinity) set and every other bit zero.
const g1InfinityHex = "c00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000"

// g2InfinityHex is the compressed encoding of the G2 point at infinity.
const g2InfinityHex = "c00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000"

func repeatHex(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			s += ","
		}
		s += `"0x` + g2InfinityHex + `"`
	}
	return s
}

func TestSetupErrorMessage(t *testing.T) {
	err := setupErrorf("example %d", 7)
	if err.Error() != "kzgsetup: example 7" {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}
