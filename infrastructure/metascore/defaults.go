package metascore

import "github.com/variomics/varclass/internal/domain"

// DefaultConfig returns the built-in predictor registry, weight tables,
// and decision thresholds. The tables are derived from published
// performance of the predictors per consequence class; callers override
// individual entries through configuration overlays.
func DefaultConfig() Config {
	return Config{
		Predictors:   defaultPredictors(),
		ClassWeights: defaultClassWeights(),
		GeneProfiles: defaultGeneProfiles(),
		Thresholds:   defaultThresholds(),
		MinPredictors: map[domain.ConsequenceClass]int{
			domain.ConsequenceMissense:       5,
			domain.ConsequenceNonsense:       3,
			domain.ConsequenceFrameshift:     3,
			domain.ConsequenceSpliceDonor:    4,
			domain.ConsequenceSpliceAcceptor: 4,
			domain.ConsequenceSynonymous:     3,
			domain.ConsequenceIntronic:       3,
		},
	}
}

func defaultPredictors() map[string]PredictorSpec {
	return map[string]PredictorSpec{
		"revel":            {Min: 0, Max: 1},
		"alphamissense":    {Min: 0, Max: 1},
		"cadd_phred":       {Min: 0, Max: 60},
		"primateai":        {Min: 0, Max: 1},
		"esm1b":            {Min: 0, Max: 1},
		"clinpred":         {Min: 0, Max: 1},
		"vest4":            {Min: 0, Max: 1},
		"metasvm":          {Min: 0, Max: 1},
		"metalr":           {Min: 0, Max: 1},
		"polyphen2":        {Min: 0, Max: 1},
		"sift":             {Min: 0, Max: 1, Inverted: true},
		"fathmm":           {Min: -20, Max: 20, Inverted: true},
		"provean":          {Min: -14, Max: 14, Inverted: true},
		"mutation_taster":  {Min: 0, Max: 1},
		"mutationassessor": {Min: 0, Max: 6},
		"mutpred":          {Min: 0, Max: 1},
		"dann":             {Min: 0, Max: 1},
		"lrt":              {Min: 0, Max: 1},
		"bayesdel_noaf":    {Min: -1.3, Max: 0.8},
		"bayesdel_addaf":   {Min: -1.3, Max: 0.8},
		"mpc":              {Min: 0, Max: 5},
		"gerp_pp":          {Min: -12.3, Max: 6.17},
		"phylop_vert":      {Min: -20, Max: 20},
		"phylop_mamm":      {Min: -20, Max: 20},
		"phylop_prim":      {Min: -20, Max: 20},
		"phastcons_vert":   {Min: 0, Max: 1},
		"phastcons_mamm":   {Min: 0, Max: 1},
		"phastcons_prim":   {Min: 0, Max: 1},
		"spliceai_ag":      {Min: 0, Max: 1},
		"spliceai_al":      {Min: 0, Max: 1},
		"spliceai_dg":      {Min: 0, Max: 1},
		"spliceai_dl":      {Min: 0, Max: 1},
		"spliceai_max":     {Min: 0, Max: 1},
		"mmsplice":         {Min: 0, Max: 1},
		"ada_score":        {Min: 0, Max: 1},
		"rf_score":         {Min: 0, Max: 1},
	}
}

// defaultClassWeights hold the per-consequence-class predictor weights.
// Missense relies on protein-impact predictors; null-variant classes
// shift weight to conservation; splice and intronic classes rely on
// splice-impact predictors blended with conservation.
func defaultClassWeights() map[domain.ConsequenceClass]map[string]float64 {
	missense := map[string]float64{
		"revel":            0.25,
		"alphamissense":    0.20,
		"cadd_phred":       0.15,
		"primateai":        0.12,
		"esm1b":            0.10,
		"clinpred":         0.08,
		"vest4":            0.05,
		"polyphen2":        0.03,
		"sift":             0.02,
		"metasvm":          0.04,
		"metalr":           0.04,
		"mutationassessor": 0.03,
		"mutpred":          0.02,
		"lrt":              0.02,
		"gerp_pp":          0.015,
		"phylop_vert":      0.01,
		"phylop_mamm":      0.01,
		"phylop_prim":      0.01,
		"phastcons_vert":   0.01,
		"phastcons_mamm":   0.01,
		"phastcons_prim":   0.01,
		"provean":          0.02,
		"bayesdel_addaf":   0.02,
		"bayesdel_noaf":    0.02,
		"fathmm":           0.015,
		"mutation_taster":  0.015,
	}

	nonsense := map[string]float64{
		"cadd_phred":     0.30,
		"gerp_pp":        0.25,
		"phylop_vert":    0.15,
		"phylop_mamm":    0.10,
		"phylop_prim":    0.08,
		"phastcons_vert": 0.05,
		"phastcons_mamm": 0.03,
		"phastcons_prim": 0.02,
		"spliceai_max":   0.02,
		"revel":          0.10,
		"alphamissense":  0.05,
		"clinpred":       0.05,
	}

	frameshift := map[string]float64{
		"cadd_phred":     0.35,
		"gerp_pp":        0.20,
		"phylop_vert":    0.12,
		"phylop_mamm":    0.08,
		"phylop_prim":    0.06,
		"phastcons_vert": 0.04,
		"phastcons_mamm": 0.03,
		"phastcons_prim": 0.02,
		"spliceai_max":   0.05,
		"revel":          0.08,
		"alphamissense":  0.04,
		"clinpred":       0.03,
	}

	spliceDonor := map[string]float64{
		"spliceai_dg":    0.25,
		"spliceai_dl":    0.25,
		"spliceai_max":   0.15,
		"mmsplice":       0.12,
		"ada_score":      0.08,
		"rf_score":       0.08,
		"cadd_phred":     0.10,
		"gerp_pp":        0.08,
		"phylop_vert":    0.05,
		"phylop_mamm":    0.03,
		"phylop_prim":    0.02,
		"phastcons_vert": 0.02,
		"phastcons_mamm": 0.01,
		"phastcons_prim": 0.01,
	}

	spliceAcceptor := map[string]float64{
		"spliceai_ag":    0.25,
		"spliceai_al":    0.25,
		"spliceai_max":   0.15,
		"mmsplice":       0.12,
		"ada_score":      0.08,
		"rf_score":       0.08,
		"cadd_phred":     0.10,
		"gerp_pp":        0.08,
		"phylop_vert":    0.05,
		"phylop_mamm":    0.03,
		"phylop_prim":    0.02,
		"phastcons_vert": 0.02,
		"phastcons_mamm": 0.01,
		"phastcons_prim": 0.01,
	}

	synonymous := map[string]float64{
		"spliceai_max":   0.20,
		"mmsplice":       0.15,
		"ada_score":      0.10,
		"rf_score":       0.10,
		"cadd_phred":     0.12,
		"gerp_pp":        0.10,
		"phylop_vert":    0.08,
		"phylop_mamm":    0.05,
		"phylop_prim":    0.03,
		"phastcons_vert": 0.03,
		"phastcons_mamm": 0.02,
		"phastcons_prim": 0.02,
		"revel":          0.05,
		"alphamissense":  0.03,
		"clinpred":       0.02,
	}

	intronic := map[string]float64{
		"spliceai_max":   0.30,
		"mmsplice":       0.20,
		"ada_score":      0.15,
		"rf_score":       0.15,
		"cadd_phred":     0.08,
		"gerp_pp":        0.05,
		"phylop_vert":    0.03,
		"phylop_mamm":    0.02,
		"phylop_prim":    0.02,
		"phastcons_vert": 0.02,
		"phastcons_mamm": 0.01,
		"phastcons_prim": 0.01,
	}

	return map[domain.ConsequenceClass]map[string]float64{
		domain.ConsequenceMissense:       missense,
		domain.ConsequenceNonsense:       nonsense,
		domain.ConsequenceFrameshift:     frameshift,
		domain.ConsequenceSpliceDonor:    spliceDonor,
		domain.ConsequenceSpliceAcceptor: spliceAcceptor,
		domain.ConsequenceSynonymous:     synonymous,
		domain.ConsequenceIntronic:       intronic,
	}
}

func defaultGeneProfiles() map[string]GeneProfile {
	return map[string]GeneProfile{
		"BRCA1": {PreferredPredictors: []string{"revel", "alphamissense", "vest4"}, WeightBoost: 1.2},
		"BRCA2": {PreferredPredictors: []string{"revel", "alphamissense", "vest4"}, WeightBoost: 1.2},
		"TP53":  {PreferredPredictors: []string{"revel", "clinpred", "primateai"}, WeightBoost: 1.2},
		"MLH1":  {PreferredPredictors: []string{"revel", "cadd_phred"}, WeightBoost: 1.15},
		"SCN1A": {PreferredPredictors: []string{"primateai", "esm1b"}, WeightBoost: 1.15},
	}
}

// defaultThresholds hold the per-class, per-band decision pairs. Each
// pair keeps its pathogenic floor at or above its benign ceiling so the
// band always has a neutral zone: scores between the two bounds
// recommend neither signal. Rarer variants get a lower pathogenic floor;
// common variants need a much stronger signal either way, leaving the
// frequency criteria to carry the benign case.
func defaultThresholds() map[domain.ConsequenceClass]map[string]thresholdPair {
	return map[domain.ConsequenceClass]map[string]thresholdPair{
		domain.ConsequenceMissense: {
			bandUltraRare:    {Pathogenic: 0.55, Benign: 0.35},
			bandVeryRare:     {Pathogenic: 0.60, Benign: 0.40},
			bandModerateRare: {Pathogenic: 0.65, Benign: 0.45},
			bandCommon:       {Pathogenic: 0.75, Benign: 0.50},
		},
		domain.ConsequenceNonsense: {
			bandUltraRare:    {Pathogenic: 0.50, Benign: 0.30},
			bandVeryRare:     {Pathogenic: 0.55, Benign: 0.35},
			bandModerateRare: {Pathogenic: 0.60, Benign: 0.40},
			bandCommon:       {Pathogenic: 0.70, Benign: 0.45},
		},
		domain.ConsequenceFrameshift: {
			bandUltraRare:    {Pathogenic: 0.50, Benign: 0.30},
			bandVeryRare:     {Pathogenic: 0.55, Benign: 0.35},
			bandModerateRare: {Pathogenic: 0.60, Benign: 0.40},
			bandCommon:       {Pathogenic: 0.70, Benign: 0.45},
		},
		domain.ConsequenceSpliceDonor: {
			bandUltraRare:    {Pathogenic: 0.55, Benign: 0.35},
			bandVeryRare:     {Pathogenic: 0.60, Benign: 0.40},
			bandModerateRare: {Pathogenic: 0.65, Benign: 0.45},
			bandCommon:       {Pathogenic: 0.75, Benign: 0.50},
		},
		domain.ConsequenceSpliceAcceptor: {
			bandUltraRare:    {Pathogenic: 0.55, Benign: 0.35},
			bandVeryRare:     {Pathogenic: 0.60, Benign: 0.40},
			bandModerateRare: {Pathogenic: 0.65, Benign: 0.45},
			bandCommon:       {Pathogenic: 0.75, Benign: 0.50},
		},
		domain.ConsequenceSynonymous: {
			bandUltraRare:    {Pathogenic: 0.70, Benign: 0.40},
			bandVeryRare:     {Pathogenic: 0.75, Benign: 0.45},
			bandModerateRare: {Pathogenic: 0.80, Benign: 0.50},
			bandCommon:       {Pathogenic: 0.85, Benign: 0.55},
		},
		domain.ConsequenceIntronic: {
			bandUltraRare:    {Pathogenic: 0.65, Benign: 0.40},
			bandVeryRare:     {Pathogenic: 0.70, Benign: 0.45},
			bandModerateRare: {Pathogenic: 0.75, Benign: 0.50},
			bandCommon:       {Pathogenic: 0.80, Benign: 0.55},
		},
	}
}
