package breakpoint

import "testing"

func TestReversedIsInvolution(t *testing.T) {
	b := Breakpoint{LeftRefIndex: 0, LeftPos: 100, LeftPositive: true, RightRefIndex: 1, RightPos: 200, RightPositive: false}
	if b.Reversed().Reversed() != b {
		t.Errorf("Reversed is not an involution for %v", b)
	}
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	b := Breakpoint{LeftRefIndex: 1, LeftPos: 200, LeftPositive: false, RightRefIndex: 0, RightPos: 100, RightPositive: true}
	once := b.Canonicalize()
	twice := once.Canonicalize()
	if once != twice {
		t.Errorf("Canonicalize is not idempotent: once=%v twice=%v", once, twice)
	}
	if !once.IsCanonical() {
		t.Errorf("Canonicalize(%v) = %v is not canonical", b, once)
	}
}

func TestEvidenceTypeSnakeName(t *testing.T) {
	if SplitRead.SnakeName() != "split_read" {
		t.Errorf("SplitRead.SnakeName() = %q, want split_read", SplitRead.SnakeName())
	}
	if ReadPair.SnakeName() != "read_pair" {
		t.Errorf("ReadPair.SnakeName() = %q, want read_pair", ReadPair.SnakeName())
	}
}
