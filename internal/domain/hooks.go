package domain

import (
	"regexp"

	m "runnergen.dev/pkg/runnergen/internal/model"
)

var (
	suiteSetupPattern    = regexp.MustCompile(`void\s+suiteSetUp\s*\(`)
	suiteTeardownPattern = regexp.MustCompile(`int\s+suiteTearDown\s*\(int\s+([a-zA-Z0-9_])+\s*\)`)
)

// DetectHooks reports which fixture functions the comment-stripped source
// defines and returns opts with the derived flags set. Suite flags already set
// by configuration, or implied by configured suite bodies, stay set.
func DetectHooks(source string, opts m.Options) m.Options {
	detected := opts.Clone()

	detected.HasSetup = functionPattern(opts.SetupName).MatchString(source)
	detected.HasTeardown = functionPattern(opts.TeardownName).MatchString(source)
	detected.HasSuiteSetup = opts.HasSuiteSetup || opts.SuiteSetup != "" || suiteSetupPattern.MatchString(source)
	detected.HasSuiteTeardown = opts.HasSuiteTeardown || opts.SuiteTeardown != "" || suiteTeardownPattern.MatchString(source)

	return detected
}

func functionPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`void\s+` + regexp.QuoteMeta(name) + `\s*\(`)
}
