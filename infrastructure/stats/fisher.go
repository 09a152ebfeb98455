// Package stats provides the deterministic statistical computations
// backing the case-control and segregation criteria: a one-sided
// Fisher's exact test and a simplified LOD-style segregation score.
package stats

import (
	"errors"
	"math"
)

// Sentinel errors for invalid study inputs.
var (
	// ErrInvalidSampleSize indicates non-positive case or control totals.
	ErrInvalidSampleSize = errors.New("case and control totals must be positive")
	// ErrInvalidCounts indicates carrier counts exceeding their totals.
	ErrInvalidCounts = errors.New("carrier counts must not exceed group totals")
)

// FisherResult holds the outcome of a one-sided Fisher's exact test on a
// 2x2 case-control table.
type FisherResult struct {
	// PValue is the one-sided (enrichment) p-value.
	PValue float64
	// OddsRatio is the sample odds ratio; +Inf when the control carrier
	// cell is empty but cases carry the variant.
	OddsRatio float64
	// CasesTotal and ControlsTotal echo the input sample sizes.
	CasesTotal    int
	ControlsTotal int
}

// FisherExact performs a one-sided Fisher's exact test for enrichment of
// the variant in cases over controls. The alternative hypothesis is
// "greater": cases carry the variant more often than controls.
func FisherExact(casesWith, casesTotal, controlsWith, controlsTotal int) (FisherResult, error) {
	if casesTotal <= 0 || controlsTotal <= 0 {
		return FisherResult{}, ErrInvalidSampleSize
	}
	if casesWith < 0 || controlsWith < 0 || casesWith > casesTotal || controlsWith > controlsTotal {
		return FisherResult{}, ErrInvalidCounts
	}

	a := casesWith
	b := casesTotal - casesWith
	c := controlsWith
	d := controlsTotal - controlsWith

	// Sample odds ratio with the conventional guards for empty cells.
	var or float64
	switch {
	case b == 0 || c == 0:
		if a == 0 {
			or = 0
		} else {
			or = math.Inf(1)
		}
	default:
		or = (float64(a) * float64(d)) / (float64(b) * float64(c))
	}

	// One-sided p-value: sum hypergeometric probabilities over tables at
	// least as extreme as observed, holding the margins fixed.
	n := a + b + c + d
	rowCases := a + b
	colCarriers := a + c

	maxA := rowCases
	if colCarriers < maxA {
		maxA = colCarriers
	}

	p := 0.0
	for k := a; k <= maxA; k++ {
		p += hypergeomPMF(k, rowCases, colCarriers, n)
	}
	if p > 1 {
		p = 1
	}

	return FisherResult{
		PValue:        p,
		OddsRatio:     or,
		CasesTotal:    casesTotal,
		ControlsTotal: controlsTotal,
	}, nil
}

// hypergeomPMF computes P(X = k) for the hypergeometric distribution
// with population n, successes colCarriers, and draws rowCases, via
// log-factorials for numerical stability.
func hypergeomPMF(k, rowCases, colCarriers, n int) float64 {
	logP := logChoose(colCarriers, k) +
		logChoose(n-colCarriers, rowCases-k) -
		logChoose(n, rowCases)
	return math.Exp(logP)
}

func logChoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	return logFactorial(n) - logFactorial(k) - logFactorial(n-k)
}

func logFactorial(n int) float64 {
	v, _ := math.Lgamma(float64(n + 1))
	return v
}

// AdequateSampleSize reports whether a case-control study is large
// enough for the enrichment criterion to carry weight: at least 20
// cases, 50 controls, and a case-to-control ratio of 0.2.
func AdequateSampleSize(cases, controls int) bool {
	return cases >= 20 && controls >= 50 &&
		float64(cases)/float64(controls) >= 0.2
}
