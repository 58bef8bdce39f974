package node

import "testing"

func TestClone(t *testing.T) {
	a := sample()
	c := Clone(a)
	if !Equal(a, c) {
		t.Fatalf("clone not equal to source")
	}
	if c.Parent != nil {
		t.Errorf("clone has parent")
	}
	if got, want := c.Get("Links").Tag, "links"; got != want {
		t.Errorf("tag %q, want %q", got, want)
	}
	if got, want := c.Keys(), a.Keys(); len(got) != len(want) {
		t.Fatalf("keys %v, want %v", got, want)
	} else {
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("key order %v, want %v", got, want)
				break
			}
		}
	}

	if err := c.Set("Name", FromString("Nokonoko")); err != nil {
		t.Fatal(err)
	}
	if err := c.Get("Args").Append(FromInt32(9)); err != nil {
		t.Fatal(err)
	}
	c.Get("Translate").Get("X").Float = 100
	if Equal(a, c) {
		t.Errorf("mutated clone still equal")
	}
	if got := a.Get("Name").String; got != "Kuribo" {
		t.Errorf("source name changed to %q", got)
	}
	if got := a.Get("Args").Len(); got != 2 {
		t.Errorf("source args len %d", got)
	}
	if got := a.Get("Translate").Get("X").Float; got != 1.5 {
		t.Errorf("source X changed to %v", got)
	}
	if !Equal(a, sample()) {
		t.Errorf("source changed by mutating the clone")
	}
}

func TestCloneParents(t *testing.T) {
	c := sample().Clone()
	err := c.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		for i, v := range y.Values {
			if v.Parent != y || v.ParentIndex != i {
				t.Errorf("%s: bad parent link", v.Path())
			}
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

type countLeaf struct {
	N      int
	cloned *int
}

func (c countLeaf) LeafType() string { return "count" }

func (c countLeaf) CloneLeaf() Leaf {
	*c.cloned++
	return countLeaf{N: c.N, cloned: c.cloned}
}

func TestCloneLeaf(t *testing.T) {
	n := 0
	a := FromSlice([]*Node{FromLeaf(countLeaf{N: 3, cloned: &n})})
	c := a.Clone()
	if n != 1 {
		t.Errorf("CloneLeaf called %d times, want 1", n)
	}
	if got := c.Index(0).Leaf.(countLeaf).N; got != 3 {
		t.Errorf("cloned leaf N = %d", got)
	}

	s := &sliceLeaf{Vals: []int{1, 2}}
	sc := FromLeaf(s).Clone()
	cs, ok := sc.Leaf.(*sliceLeaf)
	if !ok {
		t.Fatalf("cloned leaf has type %T", sc.Leaf)
	}
	if cs == s {
		t.Fatalf("pointer leaf aliased")
	}
	cs.Vals[0] = 42
	if s.Vals[0] != 1 {
		t.Errorf("deep copy shares slice storage")
	}
}
