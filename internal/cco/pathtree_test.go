package cco

import "testing"

func TestPathTreeMostSpecificAncestor(t *testing.T) {
	tree := NewPathTree()
	idxA := AddressableIndex(0)
	idxAB := AddressableIndex(1)

	node := tree.GetOrInsert(Path{"a"})
	node.value = &idxA
	node = tree.GetOrInsert(Path{"a", "b"})
	node.value = &idxAB

	tests := []struct {
		name       string
		path       Path
		wantIdx    AddressableIndex
		wantSuffix Path
		wantOK     bool
	}{
		{name: "exact match at root", path: Path{"a"}, wantIdx: idxA, wantSuffix: nil, wantOK: true},
		{name: "exact match at child", path: Path{"a", "b"}, wantIdx: idxAB, wantSuffix: nil, wantOK: true},
		{name: "descends past most specific value", path: Path{"a", "b", "c"}, wantIdx: idxAB, wantSuffix: Path{"c"}, wantOK: true},
		{name: "falls back to ancestor", path: Path{"a", "z"}, wantIdx: idxA, wantSuffix: Path{"z"}, wantOK: true},
		{name: "no match at all", path: Path{"x"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, suffix, ok := tree.Get(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if idx != tt.wantIdx {
				t.Errorf("idx = %v, want %v", idx, tt.wantIdx)
			}
			if !suffix.Equal(tt.wantSuffix) {
				t.Errorf("suffix = %v, want %v", suffix, tt.wantSuffix)
			}
		})
	}
}

func TestPathTreeChildOrderPreservesInsertion(t *testing.T) {
	tree := NewPathTree()
	tree.GetOrInsert(Path{"top", "z"})
	tree.GetOrInsert(Path{"top", "a"})
	tree.GetOrInsert(Path{"top", "m"})

	got := tree.TopLevelNode("top").ChildOrder()
	want := []Identifier{"z", "a", "m"}
	if !equalIdentifiers(got, want) {
		t.Errorf("child order = %v, want %v", got, want)
	}
}

func equalIdentifiers(a, b []Identifier) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
