// plinkstat summarizes per-marker quality statistics for a PLINK binary
// fileset: a minor allele frequency histogram, call rates, and markers
// departing from Hardy-Weinberg equilibrium.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/plink"
	"gonum.org/v1/gonum/stat"
)

func main() {
	var bfile string
	var bins int
	var hweCutoff float64
	var verbose bool
	flag.StringVar(&bfile, "bfile", "", "Path prefix of the PLINK fileset (expects .bed, .bim, and .fam)")
	flag.IntVar(&bins, "bins", 20, "Histogram bucket count for the MAF distribution")
	flag.Float64Var(&hweCutoff, "hwe", 1e-6, "Report markers whose Hardy-Weinberg exact P falls below this")
	flag.BoolVar(&verbose, "v", false, "Log per-file timing")
	flag.Parse()

	if bfile == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(bfile, bins, hweCutoff, verbose); err != nil {
		log.Fatalln(err)
	}
}

func run(bfile string, bins int, hweCutoff float64, verbose bool) error {
	bim, _, bed, err := plink.Read(bfile, verbose)
	if err != nil {
		return err
	}

	mafs := make([]float64, 0, bed.NumMarkers())
	failed := 0
	for _, row := range bim.Rows {
		counts := bed.CountGenotypes(row.I)
		mafs = append(mafs, counts.MinorAlleleFrequency())

		if p := plink.HWEFast(counts, hweCutoff); p < hweCutoff {
			failed++
			log.Printf("%s %s:%d fails HWE (P=%.3g, call rate %.3f)", row.VariantID, row.Chromosome, row.Coordinate, p, counts.CallRate())
		}
	}

	fmt.Printf("MAF distribution across %d markers:\n", len(mafs))
	hist := histogram.Hist(bins, mafs)
	if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
		return err
	}

	log.Printf("MAF mean %.4f, sd %.4f", stat.Mean(mafs, nil), stat.StdDev(mafs, nil))
	log.Println(failed, "markers below the HWE cutoff")

	return nil
}
