package plink

// Map columns in the FAM file to their positions
const (
	FamilyID int = iota
	IndividualID
	FatherID
	MotherID
	Gender
	Trait
)

type FAMRow struct {
	FamilyID     string
	IndividualID string
	FatherID     string // "0" when unknown
	MotherID     string // "0" when unknown
	Gender       string // "1" male, "2" female, "0" unknown by convention
	Trait        string // Phenotype label; "-9" means missing by convention

	// I is the 0-based position of this row in the FAM file, assigned before
	// any sort. It is the sample's column index into the GenotypeMatrix and
	// is never rewritten by sorting.
	I int
}
