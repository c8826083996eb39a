// Package validation checks scenarios before a run: structural problems in
// the file itself (schema level) and route points that disagree with the
// loaded terrain (spatial level).
package validation

import "fmt"

// Level indicates which validation stage produced the result.
type Level string

const (
	// LevelSchema findings come from the scenario file alone.
	LevelSchema Level = "schema"
	// LevelSpatial findings relate the route to the loaded terrain.
	LevelSpatial Level = "spatial"
)

// Severity indicates how critical a validation result is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is a single validation finding. SpecPath names the scenario field
// the finding refers to, in dotted form ("optimizer.strategies").
type Result struct {
	Level        Level    `json:"level"`
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
	SpecPath     string   `json:"spec_path"`
	ActualValue  any      `json:"actual_value,omitempty"`
	Expected     string   `json:"expected,omitempty"`
	ConflictWith string   `json:"conflict_with,omitempty"`
	Suggestions  []string `json:"suggestions,omitempty"`
}

// Report collects findings by severity. Valid stays true until the first
// error; warnings and info never invalidate a scenario.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// NewReport returns an empty, valid report ready to collect findings.
func NewReport() *Report {
	return &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
}

// AddError records a blocking finding and invalidates the report.
func (r *Report) AddError(res Result) {
	res.Severity = SeverityError
	r.Valid = false
	r.file(res)
}

// AddWarning records a finding the run can proceed past.
func (r *Report) AddWarning(res Result) {
	res.Severity = SeverityWarning
	r.file(res)
}

// AddInfo records a neutral observation.
func (r *Report) AddInfo(res Result) {
	res.Severity = SeverityInfo
	r.file(res)
}

// Merge folds the findings of other into r. The result is invalid when
// either report was.
func (r *Report) Merge(other *Report) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	r.Valid = r.Valid && other.Valid
	r.refreshSummary()
}

// file puts res in the bucket matching its severity.
func (r *Report) file(res Result) {
	switch res.Severity {
	case SeverityError:
		r.Errors = append(r.Errors, res)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, res)
	default:
		r.Info = append(r.Info, res)
	}
	r.refreshSummary()
}

func (r *Report) refreshSummary() {
	r.Summary = fmt.Sprintf("%d errors, %d warnings, %d info",
		len(r.Errors), len(r.Warnings), len(r.Info))
}
