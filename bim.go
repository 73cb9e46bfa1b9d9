package plink

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

type BIM struct {
	path    string
	file    *os.File
	scanner *bufio.Scanner
	line    int
	err     error
}

func OpenBIM(path string) (*BIM, error) {
	bim := &BIM{
		path: path,
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	bim.file = file
	bim.scanner = bufio.NewScanner(file)

	return bim, nil
}

func (b *BIM) Close() error {
	return b.file.Close()
}

func (b *BIM) Err() error {
	if b.err != nil {
		return b.err
	}

	return b.scanner.Err()
}

// Read yields the next marker, or nil once the file is exhausted or a
// malformed row is seen. Check Err after the final Read.
func (b *BIM) Read() *BIMRow {
	if b.err != nil || !b.scanner.Scan() {
		return nil
	}
	b.line++

	data := b.scanner.Text()
	cols := strings.Fields(data)

	if len(cols) < Allele2+1 {
		b.err = fmt.Errorf("%s: line %d: expected %d columns, got %d", b.path, b.line, Allele2+1, len(cols))
		return nil
	}

	row := &BIMRow{
		Chromosome: cols[Chromosome],
		VariantID:  cols[VariantID],
		Allele1:    cols[Allele1],
		Allele2:    cols[Allele2],
	}

	cm, err := strconv.ParseFloat(cols[Morgans], 64)
	if err != nil {
		b.err = err
		return nil
	}
	row.Morgans = cm

	coord64, err := strconv.ParseUint(cols[Coordinate], 10, 32)
	if err != nil {
		b.err = err
		return nil
	}
	row.Coordinate = uint32(coord64)

	return row
}

// MarkerTable holds every row of a BIM file. Chromosome and allele labels are
// dictionary-encoded: each row holds the canonical level string, and the
// StringTables map levels to small integer codes.
type MarkerTable struct {
	Rows        []BIMRow
	Chromosomes *StringTable
	Alleles     *StringTable
}

func (t *MarkerTable) NumMarkers() int {
	return len(t.Rows)
}

// SortByCoordinate orders rows by (chromosome, position). Row order changes;
// each row's I does not.
func (t *MarkerTable) SortByCoordinate() {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		if t.Rows[i].Chromosome != t.Rows[j].Chromosome {
			return t.Rows[i].Chromosome < t.Rows[j].Chromosome
		}
		return t.Rows[i].Coordinate < t.Rows[j].Coordinate
	})
}

// ReadBIM loads a whole BIM file, assigns each row its 0-based file position
// I, and returns the table sorted by (chromosome, position).
func ReadBIM(path string) (*MarkerTable, error) {
	b, err := OpenBIM(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer b.Close()

	t := &MarkerTable{
		Chromosomes: NewStringTable(),
		Alleles:     NewStringTable(),
	}

	for row := b.Read(); row != nil; row = b.Read() {
		row.I = len(t.Rows)
		row.Chromosome = t.Chromosomes.Canonical(row.Chromosome)
		row.Allele1 = t.Alleles.Canonical(row.Allele1)
		row.Allele2 = t.Alleles.Canonical(row.Allele2)
		t.Rows = append(t.Rows, *row)
	}
	if err := b.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	t.SortByCoordinate()

	return t, nil
}
