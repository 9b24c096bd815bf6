package domain

import "time"

// CheckResult is the output of comparing one answer against its expected value.
type CheckResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// RunArtifact represents a persisted solve for reproducibility.
type RunArtifact struct {
	ID string `json:"id"`

	Day       int    `json:"day"`
	Part      Part   `json:"part"`
	Title     string `json:"title"`
	InputPath string `json:"input_path"`
	Lines     int    `json:"lines"`

	Answer   int          `json:"answer"`
	Expected *int         `json:"expected,omitempty"`
	Check    *CheckResult `json:"check,omitempty"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// Failed reports whether the answer was checked and did not match.
func (r RunArtifact) Failed() bool {
	return r.Check != nil && !r.Check.Passed
}

// RunRef is one entry of the run index.
type RunRef struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Day       int       `json:"day"`
	Part      Part      `json:"part"`
	Answer    int       `json:"answer"`
	StartedAt time.Time `json:"started_at"`
}
