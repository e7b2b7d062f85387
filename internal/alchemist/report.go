// Package alchemist repairs and scores candidate presets. Stages never
// raise for data-quality problems; they repair the working copy and
// annotate the report.
package alchemist

// Report is the structured output of the repair pipeline. Score starts at
// 100 and only ever decreases; Valid is true when no stage recorded an
// error.
type Report struct {
	Valid    bool     `json:"valid"`
	Score    float64  `json:"score"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Fixes    []string `json:"fixes"`
}

func newReport() *Report {
	return &Report{
		Score:    100,
		Errors:   []string{},
		Warnings: []string{},
		Fixes:    []string{},
	}
}

func (r *Report) addError(msg string, penalty float64) {
	r.Errors = append(r.Errors, msg)
	r.Score -= penalty
}

func (r *Report) addWarning(msg string, penalty float64) {
	r.Warnings = append(r.Warnings, msg)
	r.Score -= penalty
}

func (r *Report) addFix(msg string, penalty float64) {
	r.Fixes = append(r.Fixes, msg)
	r.Score -= penalty
}
