package plink

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/carbocation/pfx"
)

type FAM struct {
	path    string
	file    *os.File
	scanner *bufio.Scanner
	line    int
	err     error
}

func OpenFAM(path string) (*FAM, error) {
	fam := &FAM{
		path: path,
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	fam.file = file
	fam.scanner = bufio.NewScanner(file)

	return fam, nil
}

func (f *FAM) Close() error {
	return f.file.Close()
}

func (f *FAM) Err() error {
	if f.err != nil {
		return f.err
	}

	return f.scanner.Err()
}

// Read yields the next sample, or nil once the file is exhausted or a
// malformed row is seen. Check Err after the final Read.
func (f *FAM) Read() *FAMRow {
	if f.err != nil || !f.scanner.Scan() {
		return nil
	}
	f.line++

	data := f.scanner.Text()
	cols := strings.Fields(data)

	if len(cols) < Trait+1 {
		f.err = fmt.Errorf("%s: line %d: expected %d columns, got %d", f.path, f.line, Trait+1, len(cols))
		return nil
	}

	return &FAMRow{
		FamilyID:     cols[FamilyID],
		IndividualID: cols[IndividualID],
		FatherID:     cols[FatherID],
		MotherID:     cols[MotherID],
		Gender:       cols[Gender],
		Trait:        cols[Trait],
	}
}

// SampleTable holds every row of a FAM file. Gender labels are
// dictionary-encoded through the StringTable.
type SampleTable struct {
	Rows    []FAMRow
	Genders *StringTable
}

func (t *SampleTable) NumSamples() int {
	return len(t.Rows)
}

// SortByID orders rows by (family ID, individual ID). Row order changes; each
// row's I does not.
func (t *SampleTable) SortByID() {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		if t.Rows[i].FamilyID != t.Rows[j].FamilyID {
			return t.Rows[i].FamilyID < t.Rows[j].FamilyID
		}
		return t.Rows[i].IndividualID < t.Rows[j].IndividualID
	})
}

// ReadFAM loads a whole FAM file, assigns each row its 0-based file position
// I, and returns the table sorted by (family ID, individual ID).
func ReadFAM(path string) (*SampleTable, error) {
	f, err := OpenFAM(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	t := &SampleTable{
		Genders: NewStringTable(),
	}

	for row := f.Read(); row != nil; row = f.Read() {
		row.I = len(t.Rows)
		row.Gender = t.Genders.Canonical(row.Gender)
		t.Rows = append(t.Rows, *row)
	}
	if err := f.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	t.SortByID()

	return t, nil
}
