package genomicrange

import "testing"

func TestOverlaps(t *testing.T) {
	a := New(0, 100, 200)
	b := New(0, 150, 250)
	c := New(0, 201, 300)
	d := New(1, 150, 250)

	if !a.Overlaps(b) {
		t.Errorf("expected %v to overlap %v", a, b)
	}
	if a.Overlaps(c) {
		t.Errorf("expected %v not to overlap %v", a, c)
	}
	if a.Overlaps(d) {
		t.Errorf("ranges on different contigs must never overlap")
	}
}

func TestUnion(t *testing.T) {
	a := New(0, 100, 200)
	b := New(0, 150, 300)
	u := a.Union(b)
	if u.Start != 100 || u.End != 300 {
		t.Errorf("Union(%v, %v) = %v, want start=100 end=300", a, b, u)
	}
}

func TestUnionPanicsOnDifferentContigs(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Union to panic on different RefIndex")
		}
	}()
	a := New(0, 100, 200)
	b := New(1, 100, 200)
	a.Union(b)
}

func TestLess(t *testing.T) {
	a := New(0, 100, 200)
	b := New(0, 150, 200)
	c := New(1, 0, 10)
	if !a.Less(b) {
		t.Errorf("expected %v < %v", a, b)
	}
	if !a.Less(c) {
		t.Errorf("expected lower refIndex to sort first")
	}
}
