package plink

import "testing"

func TestStringTable(t *testing.T) {
	st := NewStringTable()

	for i, v := range []struct {
		in   string
		code uint32
	}{
		{"1", 0},
		{"2", 1},
		{"1", 0},
		{"X", 2},
		{"2", 1},
	} {
		if code := st.Intern(v.in); code != v.code {
			t.Errorf("%d: Intern(%q) = %d, expected %d", i, v.in, code, v.code)
		}
	}

	if st.Len() != 3 {
		t.Fatalf("got %d levels, expected 3", st.Len())
	}

	for code, level := range st.Levels() {
		if st.Level(uint32(code)) != level {
			t.Errorf("level %d does not round-trip", code)
		}
		if got, ok := st.Code(level); !ok || got != uint32(code) {
			t.Errorf("code for %q does not round-trip: %d %v", level, got, ok)
		}
	}

	if _, ok := st.Code("Y"); ok {
		t.Error("found a code for an uninterned level")
	}
}
