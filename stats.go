package plink

import (
	"math"
	"math/big"

	"github.com/BenLubar/memoize"
	"github.com/tokenme/probab/dst"
)

// GenotypeCounts tallies the calls observed at a single marker. AA counts
// samples homozygous for allele one (dosage 2), Aa heterozygotes (dosage 1),
// and aa homozygotes for allele two (dosage 0).
type GenotypeCounts struct {
	AA      int64
	Aa      int64
	aa      int64
	Missing int64
}

// CountGenotypes tallies one marker's row of the matrix.
func (g *GenotypeMatrix) CountGenotypes(marker int) GenotypeCounts {
	var c GenotypeCounts
	for _, v := range g.MarkerGenotypes(marker) {
		switch v {
		case 2:
			c.AA++
		case 1:
			c.Aa++
		case 0:
			c.aa++
		default:
			c.Missing++
		}
	}

	return c
}

// CallRate is the fraction of samples with a non-missing call.
func (c GenotypeCounts) CallRate() float64 {
	n := c.AA + c.Aa + c.aa + c.Missing
	if n == 0 {
		return 0
	}

	return float64(n-c.Missing) / float64(n)
}

// MinorAlleleFrequency is the frequency of the rarer allele among observed
// (non-missing) calls.
func (c GenotypeCounts) MinorAlleleFrequency() float64 {
	A := c.AA*2 + c.Aa
	a := c.aa*2 + c.Aa
	if A+a == 0 {
		return 0
	}
	if a > A {
		A, a = a, A
	}

	return float64(a) / float64(A+a)
}

var memoizedHWEExact = memoize.Memoize(HWEExact)
var memoizedHWEApproximate = memoize.Memoize(HWEApproximate)

// HWEFast uses the Chi Square approximation. If the P value based on a 1
// dimensional Chi Square test is found to be significant based on your
// cutoff, then the exact P value is calculated and returned.
func HWEFast(c GenotypeCounts, cutoff float64) (p float64) {
	p = memoizedHWEApproximate.(func(int64, int64, int64) float64)(c.AA, c.Aa, c.aa)

	if p < cutoff {
		return memoizedHWEExact.(func(int64, int64, int64) float64)(c.AA, c.Aa, c.aa)
	}

	return p
}

// HWEApproximate is the 1-degree-of-freedom Chi Square approximation to the
// Hardy-Weinberg equilibrium P value.
func HWEApproximate(AA, Aa, aa int64) (p float64) {
	defer func() { recover() }()

	p = 1.0 - dst.ChiSquareCDF(1)(hweChiSquare(float64(AA), float64(Aa), float64(aa)))

	return
}

// hweChiSquare returns a chi square value (1 degree of freedom) for the
// difference between observed genotype counts and the counts expected from
// the observed allele frequencies. Large values suggest a genotyping error
// more often than a true departure from Hardy-Weinberg equilibrium.
func hweChiSquare(AA, Aa, aa float64) float64 {
	A := AA*2 + Aa
	a := aa*2 + Aa

	// Not biallelic in this population; the expectation is trivially met.
	if A == 0 || a == 0 {
		return 0.0
	}

	// Observed N (sample count) may be smaller than the number of samples
	N := AA + Aa + aa

	alleleCount := A + a
	majorFreq := A / alleleCount
	minorFreq := a / alleleCount

	// Expected genotype counts under the Hardy-Weinberg null.
	eAA := majorFreq * majorFreq * N
	eAa := 2.0 * majorFreq * minorFreq * N
	eaa := minorFreq * minorFreq * N

	return math.Pow(eAA-AA, 2)/eAA +
		math.Pow(eAa-Aa, 2)/eAa +
		math.Pow(eaa-aa, 2)/eaa
}

var memoizedHWEProbability = memoize.Memoize(hweProbability)
var memoizedFactorial = memoize.Memoize(factorial)

// HWEExact computes an exact Hardy-Weinberg equilibrium P-value, based on the
// Abecasis paper, itself based on RA Fisher's method. HWEExact is safe to
// call from concurrent goroutines. The resources used to create this were
// http://courses.washington.edu/b516/lectures_2009/HWE_Lecture.pdf slides
// 21-22 and https://www.cog-genomics.org/software/stats for sanity checks.
func HWEExact(AA, Aa, aa int64) (p float64) {
	// Enforce AA common, aa rare
	if aa > AA {
		AA, aa = aa, AA
	}

	// baseP is the probability of the exact base configuration.
	baseP := memoizedHWEProbability.(func(int64, int64, int64) float64)(AA, Aa, aa)

	// The P value is the sum of all probabilities at this exact configuration
	// *or more extreme*.
	sumP := baseP

	origAA, origAa, origaa := AA, Aa, aa

	// Left tail: start with the exact number of hets and increase until we're
	// at an extreme.
	for i := 0; ; i, Aa, AA, aa = i+1, Aa+2, AA-1, aa-1 {
		if aa < 0 {
			break
		}

		if i == 0 {
			continue
		}

		newest := memoizedHWEProbability.(func(int64, int64, int64) float64)(AA, Aa, aa)

		if newest > baseP {
			continue
		}

		if newest <= math.SmallestNonzeroFloat64 {
			break
		}

		sumP += newest
	}

	// Right tail: start with the exact number of hets and decrease until
	// we're at an extreme.
	AA, Aa, aa = origAA, origAa, origaa
	for i := 0; ; i, Aa, AA, aa = i+1, Aa-2, AA+1, aa+1 {
		if Aa < 0 {
			break
		}

		if i == 0 {
			continue
		}

		newest := memoizedHWEProbability.(func(int64, int64, int64) float64)(AA, Aa, aa)

		if newest > baseP {
			continue
		}

		if newest <= math.SmallestNonzeroFloat64 {
			break
		}

		sumP += newest
	}

	return sumP
}

// hweProbability yields the probability of observing exactly Aa
// heterozygotes in a sample of AA+Aa+aa individuals with Aa+2*aa minor
// alleles.
func hweProbability(AA, Aa, aa int64) (p float64) {
	A := AA*2 + Aa
	a := aa*2 + Aa
	N := AA + Aa + aa

	nAa := big.NewInt(Aa)

	var denom, nexp big.Int

	// Numerator
	nexp.Exp(big.NewInt(2), nAa, nil)
	nexp.Mul(&nexp, memoizedFactorial.(func(int64, int64) *big.Int)(1, A))
	nexp.Mul(&nexp, memoizedFactorial.(func(int64, int64) *big.Int)(1, a))

	// Denominator
	denom.Add(&denom, memoizedFactorial.(func(int64, int64) *big.Int)(N+1, 2*N))
	denom.Mul(&denom, memoizedFactorial.(func(int64, int64) *big.Int)(1, AA))
	denom.Mul(&denom, memoizedFactorial.(func(int64, int64) *big.Int)(1, Aa))
	denom.Mul(&denom, memoizedFactorial.(func(int64, int64) *big.Int)(1, aa))

	var ratNum, ratDenom big.Rat
	ratNum.SetInt(&nexp)
	ratDenom.SetInt(&denom)
	final, _ := new(big.Rat).Quo(&ratNum, &ratDenom).Float64()

	return final
}

func factorial(a, b int64) *big.Int {
	return big.NewInt(1).MulRange(a, b)
}
