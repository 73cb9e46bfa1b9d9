package plink

import (
	"os"
	"path/filepath"
	"testing"
)

const testBIM = `1 rs10399749 0.0 45162 G C
2 rs2949420 0.0 45257 C T
1 rs2949421 0.1 45413 0 0
X rs2691310 0.0 46844 A T
1 rs4030303 0.0 72434 0 G
`

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadBIM(t *testing.T) {
	bim, err := ReadBIM(writeTestFile(t, "test.bim", testBIM))
	if err != nil {
		t.Fatal(err)
	}

	if bim.NumMarkers() != 5 {
		t.Fatalf("got %d markers, expected 5", bim.NumMarkers())
	}

	// Sorted by (chromosome, position); I keeps original file order.
	for i, v := range []struct {
		VariantID  string
		Chromosome string
		Coordinate uint32
		I          int
	}{
		{"rs10399749", "1", 45162, 0},
		{"rs2949421", "1", 45413, 2},
		{"rs4030303", "1", 72434, 4},
		{"rs2949420", "2", 45257, 1},
		{"rs2691310", "X", 46844, 3},
	} {
		row := bim.Rows[i]
		if row.VariantID != v.VariantID || row.Chromosome != v.Chromosome ||
			row.Coordinate != v.Coordinate || row.I != v.I {
			t.Errorf("row %d mismatch: %+v, expected %+v", i, row, v)
		}
	}

	if row := bim.Rows[1]; row.Morgans != 0.1 {
		t.Errorf("Morgans: got %v, expected 0.1", row.Morgans)
	}
}

func TestReadBIMIndexIsPermutation(t *testing.T) {
	bim, err := ReadBIM(writeTestFile(t, "test.bim", testBIM))
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[int]bool)
	for _, row := range bim.Rows {
		if row.I < 0 || row.I >= bim.NumMarkers() || seen[row.I] {
			t.Fatalf("I values are not a 0-based permutation: %d", row.I)
		}
		seen[row.I] = true
	}

	// Re-sorting is order-only; I must survive untouched.
	byI := make(map[int]string)
	for _, row := range bim.Rows {
		byI[row.I] = row.VariantID
	}
	bim.SortByCoordinate()
	for _, row := range bim.Rows {
		if byI[row.I] != row.VariantID {
			t.Errorf("sort rewrote I: %d now names %s, expected %s", row.I, row.VariantID, byI[row.I])
		}
	}
}

func TestReadBIMInternsCategoricals(t *testing.T) {
	bim, err := ReadBIM(writeTestFile(t, "test.bim", testBIM))
	if err != nil {
		t.Fatal(err)
	}

	if bim.Chromosomes.Len() != 3 {
		t.Errorf("got %d chromosome levels, expected 3", bim.Chromosomes.Len())
	}

	if code, ok := bim.Chromosomes.Code("X"); !ok || bim.Chromosomes.Level(code) != "X" {
		t.Errorf("chromosome X did not round-trip the dictionary: %v %v", code, ok)
	}

	// Alleles G, C, T, 0, A share one dictionary.
	if bim.Alleles.Len() != 5 {
		t.Errorf("got %d allele levels, expected 5", bim.Alleles.Len())
	}
}

func TestReadBIMMalformed(t *testing.T) {
	for _, v := range []struct {
		name    string
		content string
	}{
		{"shortrow", "1 rs1 0.0 45162 G\n"},
		{"badpos", "1 rs1 0.0 notanumber G C\n"},
		{"badcm", "1 rs1 x 45162 G C\n"},
	} {
		if _, err := ReadBIM(writeTestFile(t, v.name+".bim", v.content)); err == nil {
			t.Errorf("%s: expected a parse error", v.name)
		}
	}
}
