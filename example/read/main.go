package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/carbocation/plink"
)

func main() {
	bfile := flag.String("bfile", "", "Path prefix of a PLINK fileset")
	flag.Parse()

	if *bfile == "" {
		flag.PrintDefaults()
		log.Fatalln("No prefix provided")
	}

	bim, fam, bed, err := plink.Read(*bfile, true)
	if err != nil {
		log.Fatalln(err)
	}

	// The tables are sorted for browsing; each row's I field still addresses
	// the matrix in original file order.
	for _, marker := range bim.Rows[:3] {
		for _, sample := range fam.Rows[:3] {
			fmt.Printf("%s x %s/%s: %d\n", marker.VariantID, sample.FamilyID, sample.IndividualID, bed.At(marker.I, sample.I))
		}
	}
}
