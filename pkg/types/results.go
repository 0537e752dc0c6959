package types

// Plan is the full list of renames for one invocation, computed before any
// file is touched.
type Plan struct {
	SourceDir      string      `json:"sourceDir" yaml:"sourceDir"`
	SourcePattern  string      `json:"sourcePattern" yaml:"sourcePattern"`
	TargetDir      string      `json:"targetDir" yaml:"targetDir"`
	TargetTemplate string      `json:"targetTemplate" yaml:"targetTemplate"`
	Overwrite      bool        `json:"overwrite" yaml:"overwrite"`
	DryRun         bool        `json:"dryRun" yaml:"dryRun"`
	Operations     []Operation `json:"operations" yaml:"operations"`
}

// Result reports what Execute did with a plan.
type Result struct {
	DryRun bool `json:"dryRun" yaml:"dryRun"`
	// Operations mirrors the plan with statuses filled in
	Operations []Operation `json:"operations" yaml:"operations"`
	// Succeeded counts renames that completed, identity operations included
	Succeeded int `json:"succeeded" yaml:"succeeded"`
	Unchanged int `json:"unchanged" yaml:"unchanged"`
	// Failed is the operation that stopped the batch, if any
	Failed *Operation `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// Total returns the number of planned operations.
func (r *Result) Total() int {
	return len(r.Operations)
}

// Moved returns the number of files actually renamed.
func (r *Result) Moved() int {
	return r.Succeeded - r.Unchanged
}
