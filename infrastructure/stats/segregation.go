package stats

// MinInformativeFamilies is the minimum number of families with genotyped
// affected members required before a segregation score is considered
// meaningful.
const MinInformativeFamilies = 3

// FamilyObservation is one family's carrier counts for segregation
// scoring.
type FamilyObservation struct {
	AffectedCarriers   int
	AffectedTotal      int
	UnaffectedCarriers int
	UnaffectedTotal    int
}

// SegregationResult is the outcome of LOD-style segregation scoring
// across a set of families.
type SegregationResult struct {
	// LOD is the summed simplified log-odds score. Positive values favor
	// co-segregation with disease; negative values favor non-segregation.
	LOD float64
	// InformativeFamilies is the number of families that contributed.
	InformativeFamilies int
	// FamilyScores holds the per-family contributions in input order.
	FamilyScores []float64
}

// Informative reports whether enough families contributed for the score
// to carry evidentiary weight.
func (r SegregationResult) Informative() bool {
	return r.InformativeFamilies >= MinInformativeFamilies
}

// SegregationLOD computes a simplified LOD-style segregation score over
// the supplied families, assuming a dominant segregation model. Perfect
// co-segregation in a family contributes 0.3 per affected carrier;
// perfect non-segregation contributes -0.3 per unaffected carrier; mixed
// patterns contribute 0.15 per net carrier. Families with no genotyped
// affected members are skipped as uninformative.
func SegregationLOD(families []FamilyObservation) SegregationResult {
	var result SegregationResult

	for _, f := range families {
		if f.AffectedTotal == 0 {
			continue
		}

		var score float64
		switch {
		case f.AffectedCarriers > 0 && f.UnaffectedCarriers == 0:
			score = float64(f.AffectedCarriers) * 0.3
		case f.AffectedCarriers == 0 && f.UnaffectedCarriers > 0:
			score = -float64(f.UnaffectedCarriers) * 0.3
		default:
			score = float64(f.AffectedCarriers-f.UnaffectedCarriers) * 0.15
		}

		result.FamilyScores = append(result.FamilyScores, score)
		result.LOD += score
		result.InformativeFamilies++
	}

	return result
}
