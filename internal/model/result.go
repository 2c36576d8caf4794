package model

// Result describes one generator run.
type Result struct {
	Input  Path `yaml:"input"`
	Output Path `yaml:"output"`
	Header Path `yaml:"header,omitempty"`
	// Files lists every file that participated, for build-system dependency tracking.
	Files []Path `yaml:"files,omitempty"`
	// Written lists the files rewritten on disk; unchanged files are left alone.
	Written []Path `yaml:"written,omitempty"`
	// Diff holds a unified diff of stale outputs in check mode.
	Diff  string `yaml:"-"`
	Tests int    `yaml:"tests"`
	// Failure holds the error message of a failed generation in batch mode.
	Failure string `yaml:"failure,omitempty"`
}

// Stale reports whether a check run found outdated output.
func (r Result) Stale() bool {
	return r.Diff != ""
}

// Failed reports whether the generation failed for a reason other than stale output.
func (r Result) Failed() bool {
	return r.Failure != ""
}
