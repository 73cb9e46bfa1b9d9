package plink

// Map columns in the BIM file to their positions
const (
	Chromosome int = iota
	VariantID
	Morgans
	Coordinate
	Allele1
	Allele2
)

type BIMRow struct {
	Chromosome string
	Coordinate uint32  // Labeled "position" by most applications
	Morgans    float64 // Genetic distance in centimorgans
	VariantID  string  // E.g., RSID
	Allele1    string  // Can contain > 1 character
	Allele2    string  // Can contain > 1 character

	// I is the 0-based position of this row in the BIM file, assigned before
	// any sort. It is the marker's row index into the GenotypeMatrix and is
	// never rewritten by sorting.
	I int
}
