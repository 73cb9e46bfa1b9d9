package plink

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Fixture mirroring the canonical small fileset that ships with pandas-plink:
// 10 markers x 3 samples.
var (
	fixtureBIM = `1 rs10399749 0.0 45162 G C
1 rs2949420 0.0 45257 C T
1 rs2949421 0.0 45413 0 0
1 rs2691310 0.0 46844 A T
1 rs4030303 0.0 72434 0 G
1 rs4030300 0.0 72515 0 C
1 rs3855952 0.0 77689 G A
1 rs940550 0.0 78032 0 T
1 rs13328714 0.0 81468 0 C
1 rs11490937 0.0 84139 0 G
`

	fixtureFAM = `Sample_1 Sample_1 0 0 1 -9
Sample_2 Sample_2 0 0 2 -9
Sample_3 Sample_3 Sample_1 Sample_2 2 -9
`

	fixtureMatrix = [10][3]uint8{
		{2, 2, 1},
		{2, 1, 2},
		{3, 3, 3},
		{3, 3, 1},
		{2, 2, 2},
		{2, 2, 2},
		{2, 1, 0},
		{2, 2, 2},
		{1, 2, 2},
		{2, 1, 2},
	}

	fixtureBEDSNPMajor = []byte{
		bedMagic0, bedMagic1, 1,
		0x20, 0x08, 0x15, 0x25, 0x00, 0x00, 0x38, 0x00, 0x02, 0x08,
	}

	// The same logical content packed one row per sample.
	fixtureBEDIndividualMajor = []byte{
		bedMagic0, bedMagic1, 0,
		0x50, 0x00, 0x02,
		0x58, 0x20, 0x08,
		0x92, 0x30, 0x00,
	}
)

func writeFixture(t *testing.T, bed []byte) string {
	t.Helper()
	dir := t.TempDir()
	prefix := filepath.Join(dir, "example")

	if err := os.WriteFile(prefix+".bim", []byte(fixtureBIM), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(prefix+".fam", []byte(fixtureFAM), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(prefix+".bed", bed, 0o644); err != nil {
		t.Fatal(err)
	}

	return prefix
}

func TestRead(t *testing.T) {
	for _, v := range []struct {
		name string
		bed  []byte
	}{
		{"snp-major", fixtureBEDSNPMajor},
		{"individual-major", fixtureBEDIndividualMajor},
	} {
		t.Run(v.name, func(t *testing.T) {
			bim, fam, bed, err := Read(writeFixture(t, v.bed), false)
			if err != nil {
				t.Fatal(err)
			}

			if bim.NumMarkers() != 10 || fam.NumSamples() != 3 {
				t.Fatalf("got %d markers x %d samples, expected 10x3", bim.NumMarkers(), fam.NumSamples())
			}
			if bed.NumMarkers() != bim.NumMarkers() || bed.NumSamples() != fam.NumSamples() {
				t.Fatalf("matrix shape %dx%d does not match the tables", bed.NumMarkers(), bed.NumSamples())
			}

			for m := 0; m < 10; m++ {
				for s := 0; s < 3; s++ {
					if got, want := bed.At(m, s), fixtureMatrix[m][s]; got != want {
						t.Errorf("At(%d,%d): got %d, expected %d", m, s, got, want)
					}
				}
			}

			// The tables are sorted, but I addresses the matrix in file order.
			for _, marker := range bim.Rows {
				for _, sample := range fam.Rows {
					if got, want := bed.At(marker.I, sample.I), fixtureMatrix[marker.I][sample.I]; got != want {
						t.Errorf("%s x %s: got %d, expected %d", marker.VariantID, sample.IndividualID, got, want)
					}
				}
			}
		})
	}
}

func TestReadBadMagic(t *testing.T) {
	bed := append([]byte{}, fixtureBEDSNPMajor...)
	bed[0] = 0x00

	if _, _, _, err := Read(writeFixture(t, bed), false); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestReadTruncatedBED(t *testing.T) {
	bed := fixtureBEDSNPMajor[:len(fixtureBEDSNPMajor)-1]

	if _, _, _, err := Read(writeFixture(t, bed), false); !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	prefix := writeFixture(t, fixtureBEDSNPMajor)
	if err := os.Remove(prefix + ".fam"); err != nil {
		t.Fatal(err)
	}

	if _, _, _, err := Read(prefix, false); err == nil {
		t.Error("expected an error for a missing .fam")
	}
}
