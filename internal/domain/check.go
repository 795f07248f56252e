package domain

// CheckOutcome is the result of a single post-deployment assertion
type CheckOutcome struct {
	Name     string `json:"name"`
	Passed   bool   `json:"passed"`
	Skipped  bool   `json:"skipped,omitempty"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
	Error    string `json:"error,omitempty"`
}

// CheckReport collects the outcomes of a verification run
type CheckReport struct {
	Address  string         `json:"address"`
	ChainID  uint64         `json:"chainId"`
	Now      uint64         `json:"now"`
	Outcomes []CheckOutcome `json:"outcomes"`
}

// Passed reports whether no check failed. Skipped checks don't count as failures.
func (r *CheckReport) Passed() bool {
	for _, o := range r.Outcomes {
		if !o.Passed && !o.Skipped {
			return false
		}
	}
	return true
}

// Failed returns the failed outcomes.
func (r *CheckReport) Failed() []CheckOutcome {
	var failed []CheckOutcome
	for _, o := range r.Outcomes {
		if !o.Passed && !o.Skipped {
			failed = append(failed, o)
		}
	}
	return failed
}
