package plink

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/carbocation/pfx"
)

// The first two bytes of every BED file.
const (
	bedMagic0 = 0x6c
	bedMagic1 = 0x1b
)

var (
	// ErrInvalidFormat indicates a BED file whose magic bytes or layout byte
	// are not PLINK's.
	ErrInvalidFormat = errors.New("invalid PLINK BED format")

	// ErrTruncated indicates a BED payload shorter than the marker and sample
	// counts require.
	ErrTruncated = errors.New("truncated PLINK BED file")
)

// Orientation is the physical row order of the packed genotype matrix,
// declared by the third header byte.
type Orientation uint8

const (
	IndividualMajor Orientation = 0 // physical rows are samples
	SNPMajor        Orientation = 1 // physical rows are markers
)

func (o Orientation) String() string {
	switch o {
	case IndividualMajor:
		return "individual-major"
	case SNPMajor:
		return "snp-major"
	}

	return fmt.Sprintf("orientation(%d)", uint8(o))
}

// ReadBEDHeader consumes exactly the 3 header bytes from r, validates the
// magic signature, and returns the declared orientation. path is used only
// in error messages.
func ReadBEDHeader(r io.Reader, path string) (Orientation, error) {
	var header [3]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, pfx.Err(fmt.Errorf("%w: %s: missing 3-byte header", ErrInvalidFormat, path))
	}

	if header[0] != bedMagic0 || header[1] != bedMagic1 {
		return 0, pfx.Err(fmt.Errorf("%w: %s: bad magic bytes 0x%02x 0x%02x", ErrInvalidFormat, path, header[0], header[1]))
	}

	switch o := Orientation(header[2]); o {
	case IndividualMajor, SNPMajor:
		return o, nil
	}

	return 0, pfx.Err(fmt.Errorf("%w: %s: unrecognized matrix layout byte 0x%02x", ErrInvalidFormat, path, header[2]))
}

// ReadBED opens a BED file, validates its header, and decodes its packed
// payload into a GenotypeMatrix of logical shape (nMarkers, nSamples). The
// marker and sample counts come from the companion BIM and FAM files. Bytes
// beyond the expected payload extent are ignored.
func ReadBED(path string, nMarkers, nSamples int) (*GenotypeMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	orientation, err := ReadBEDHeader(f, path)
	if err != nil {
		return nil, err
	}

	rows, cols := physicalShape(nMarkers, nSamples, orientation)
	payload := make([]byte, bytesPerRow(cols)*rows)
	if _, err := io.ReadFull(f, payload); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, pfx.Err(fmt.Errorf("%w: %s: want %d payload bytes", ErrTruncated, path, len(payload)))
		}
		return nil, pfx.Err(err)
	}

	return DecodeGenotypes(payload, nMarkers, nSamples, orientation)
}

// physicalShape maps logical (marker, sample) counts onto the on-disk row and
// column counts for the given orientation.
func physicalShape(nMarkers, nSamples int, orientation Orientation) (rows, cols int) {
	if orientation == IndividualMajor {
		return nSamples, nMarkers
	}

	return nMarkers, nSamples
}

// bytesPerRow is the padded byte length of one physical row: 4 genotypes per
// byte, rounded up.
func bytesPerRow(cols int) int {
	return (cols + 3) / 4
}
