package plink

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// MissingGenotype is the sentinel stored where a call could not be made. It
// is deliberately outside the 0-2 allele dosage range and must never be
// folded into it.
const MissingGenotype uint8 = 3

// The BED format packs one genotype into 2 bits, least-significant pair
// first. The 2-bit codes are not a linear transform of the dosage:
//
//	0b00 homozygous allele one (dosage 2)
//	0b01 missing
//	0b10 heterozygous (dosage 1)
//	0b11 homozygous allele two (dosage 0)
var (
	codeToGenotype = [4]uint8{2, MissingGenotype, 1, 0}
	genotypeToCode = [4]uint8{0b11, 0b10, 0b00, 0b01}
)

// bedByteGenotypes expands every possible payload byte to its 4 genotype
// values. One table lookup per byte keeps the decode loop tight; unpacking
// bit pairs per cell measurably dominates on real matrices.
var bedByteGenotypes = func() (table [256][4]uint8) {
	for b := 0; b < 256; b++ {
		for pair := 0; pair < 4; pair++ {
			table[b][pair] = codeToGenotype[(b>>(2*pair))&0b11]
		}
	}

	return table
}()

// GenotypeMatrix is a decoded genotype matrix addressed as (marker, sample)
// regardless of the orientation it was stored in. Values are allele dosages
// 0-2, or MissingGenotype. It is fully populated at construction and is not
// modified afterward.
type GenotypeMatrix struct {
	nMarkers int
	nSamples int
	data     []uint8 // marker-major, nMarkers*nSamples long
}

func (g *GenotypeMatrix) NumMarkers() int {
	return g.nMarkers
}

func (g *GenotypeMatrix) NumSamples() int {
	return g.nSamples
}

// At returns the genotype for the marker-th marker of the sample-th sample,
// both 0-based in file order (the I fields of BIMRow and FAMRow).
func (g *GenotypeMatrix) At(marker, sample int) uint8 {
	return g.data[marker*g.nSamples+sample]
}

// MarkerGenotypes returns one genotype per sample for a single marker.
// Callers must not modify the returned slice.
func (g *GenotypeMatrix) MarkerGenotypes(marker int) []uint8 {
	return g.data[marker*g.nSamples : (marker+1)*g.nSamples]
}

// DecodeGenotypes unpacks a BED payload (everything after the 3-byte header)
// into a GenotypeMatrix. Each physical row is padded to a whole byte; pad
// bits are ignored. Individual-major payloads are transposed during decode so
// that the result is always addressed (marker, sample). The payload may
// extend past the expected extent; extra bytes are ignored. A payload shorter
// than the expected extent yields ErrTruncated and no partial matrix.
func DecodeGenotypes(payload []byte, nMarkers, nSamples int, orientation Orientation) (*GenotypeMatrix, error) {
	rows, cols := physicalShape(nMarkers, nSamples, orientation)
	rowBytes := bytesPerRow(cols)
	if want := rowBytes * rows; len(payload) < want {
		return nil, pfx.Err(fmt.Errorf("%w: %d payload bytes for %d markers x %d samples (%s), want %d", ErrTruncated, len(payload), nMarkers, nSamples, orientation, want))
	}

	g := &GenotypeMatrix{
		nMarkers: nMarkers,
		nSamples: nSamples,
		data:     make([]uint8, nMarkers*nSamples),
	}

	for row := 0; row < rows; row++ {
		line := payload[row*rowBytes : (row+1)*rowBytes]

		if orientation == SNPMajor {
			// Physical rows are markers: decode straight into the matrix row,
			// 4 cells per byte. copy truncates the final quad at the pad.
			out := g.data[row*nSamples : (row+1)*nSamples]
			for c := 0; c < nSamples; c += 4 {
				quad := bedByteGenotypes[line[c>>2]]
				copy(out[c:], quad[:])
			}
			continue
		}

		// Physical rows are samples: scatter each cell to its marker row.
		for c := 0; c < cols; c++ {
			g.data[c*nSamples+row] = bedByteGenotypes[line[c>>2]][c&0b11]
		}
	}

	return g, nil
}

// pack is the decode inverse, repacking the matrix into a BED payload in the
// given orientation. Pad bits are written as zero. Kept unexported: this
// package reads PLINK filesets, it does not write them; pack exists so tests
// can assert the round-trip law.
func (g *GenotypeMatrix) pack(orientation Orientation) []byte {
	rows, cols := physicalShape(g.nMarkers, g.nSamples, orientation)
	rowBytes := bytesPerRow(cols)
	payload := make([]byte, rowBytes*rows)

	for row := 0; row < rows; row++ {
		line := payload[row*rowBytes : (row+1)*rowBytes]
		for c := 0; c < cols; c++ {
			marker, sample := row, c
			if orientation == IndividualMajor {
				marker, sample = c, row
			}
			code := genotypeToCode[g.At(marker, sample)]
			line[c>>2] |= code << uint(2*(c&0b11))
		}
	}

	return payload
}
