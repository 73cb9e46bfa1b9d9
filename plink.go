// Package plink reads PLINK binary filesets: the packed genotype matrix
// (.bed) together with its marker (.bim) and sample (.fam) metadata tables.
package plink

import (
	"log"
	"time"
)

// Read parses the PLINK fileset at prefix+".bed", prefix+".bim", and
// prefix+".fam". A leading ~ in the prefix is expanded. When verbose is true,
// per-file timing is logged; it has no effect on the returned data.
//
// The marker table comes back sorted by (chromosome, position) and the sample
// table by (family ID, individual ID). The genotype matrix is addressed by
// the I fields of the rows, which record original file order and survive the
// sorts. Any failure aborts the whole read; no partial results are returned.
func Read(prefix string, verbose bool) (*MarkerTable, *SampleTable, *GenotypeMatrix, error) {
	prefix = ExpandHome(prefix)
	bimPath, famPath, bedPath := prefix+".bim", prefix+".fam", prefix+".bed"

	done := timeIt(verbose, bimPath)
	bim, err := ReadBIM(bimPath)
	if err != nil {
		return nil, nil, nil, err
	}
	done()

	done = timeIt(verbose, famPath)
	fam, err := ReadFAM(famPath)
	if err != nil {
		return nil, nil, nil, err
	}
	done()

	done = timeIt(verbose, bedPath)
	bed, err := ReadBED(bedPath, bim.NumMarkers(), fam.NumSamples())
	if err != nil {
		return nil, nil, nil, err
	}
	done()

	return bim, fam, bed, nil
}

func timeIt(verbose bool, path string) func() {
	if !verbose {
		return func() {}
	}

	log.Printf("Reading %s...", path)
	start := time.Now()

	return func() {
		log.Printf("Read %s in %s", path, time.Since(start))
	}
}
