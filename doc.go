// Package lithocycle finds cyclic facies successions in lithological
// profiles and generates synthetic profiles to test them on.
//
// What is in the module?
//
//	profile/ : the Profile data model (depth boundaries + facies labels), the
//	           facies Coding bijection and YAML/JSON/CSV/sampled-log codecs
//	matrix/  : row-major Dense float64 matrices and their validators
//	burgess/ : transition probability matrices, the Markov order metric, the
//	           diagonal-alignment sifter and the parallel search over all F!
//	           facies numberings, plus ideal sequences and m distributions
//	synth/   : skew-normal parasequence stacking with compensational
//	           alternation and a noisy signal re-reader
//	render/  : PNG figures of profiles, coded profiles, TP matrices and
//	           m histograms
//	report/  : run summaries as terminal, Markdown or JSON output
//	config/  : YAML + dotenv + environment configuration
//	logging/ : structured zap logging
//
// The lithocycle command in cmd/lithocycle ties these together.
//
// Quick start:
//
//	p, _ := profile.Load("well.yaml")
//	a, _ := burgess.Analyze(ctx, p, burgess.DefaultOptions(), false)
//	for k, e := range a.Ideal {
//		fmt.Println(e.Index, e.M, a.Sequences[k].Facies)
//	}
package lithocycle
