package plink

// StringTable interns categorical column values. Each distinct string gets a
// small integer code in first-seen order; all rows sharing a level share the
// same backing string. This mirrors the dictionary encoding that columnar
// tools apply to chromosome, allele, and gender columns.
type StringTable struct {
	levels []string
	codes  map[string]uint32
}

func NewStringTable() *StringTable {
	return &StringTable{
		codes: make(map[string]uint32),
	}
}

// Intern returns the code for s, assigning the next code if s is new.
func (t *StringTable) Intern(s string) uint32 {
	if code, exists := t.codes[s]; exists {
		return code
	}

	code := uint32(len(t.levels))
	t.levels = append(t.levels, s)
	t.codes[s] = code

	return code
}

// Canonical returns the shared copy of s, interning it if needed.
func (t *StringTable) Canonical(s string) string {
	return t.levels[t.Intern(s)]
}

// Code returns the code for s, if s has been interned.
func (t *StringTable) Code(s string) (uint32, bool) {
	code, exists := t.codes[s]
	return code, exists
}

// Level returns the string for a code produced by Intern.
func (t *StringTable) Level(code uint32) string {
	return t.levels[code]
}

// Levels returns all interned strings in code order. Callers must not modify
// the returned slice.
func (t *StringTable) Levels() []string {
	return t.levels
}

func (t *StringTable) Len() int {
	return len(t.levels)
}
