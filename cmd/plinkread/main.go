// plinkread reads a PLINK binary fileset and reports its shape and
// missingness.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/carbocation/plink"
)

func main() {
	var bfile string
	var verbose bool
	flag.StringVar(&bfile, "bfile", "", "Path prefix of the PLINK fileset (expects .bed, .bim, and .fam)")
	flag.BoolVar(&verbose, "v", false, "Log per-file timing")
	flag.Parse()

	if bfile == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(bfile, verbose); err != nil {
		log.Fatalln(err)
	}
}

func run(bfile string, verbose bool) error {
	bim, fam, bed, err := plink.Read(bfile, verbose)
	if err != nil {
		return err
	}

	missing := 0
	for m := 0; m < bed.NumMarkers(); m++ {
		for _, v := range bed.MarkerGenotypes(m) {
			if v == plink.MissingGenotype {
				missing++
			}
		}
	}

	log.Println(bim.NumMarkers(), "markers x", fam.NumSamples(), "samples")
	log.Println(bim.Chromosomes.Len(), "chromosomes")
	log.Printf("%d missing calls (%.4f%%)", missing, 100*float64(missing)/float64(bed.NumMarkers()*bed.NumSamples()))

	return nil
}
