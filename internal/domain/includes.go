package domain

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	m "runnergen.dev/pkg/runnergen/internal/model"
	"runnergen.dev/pkg/runnergen/internal/runerr"
)

var systemIncludePattern = regexp.MustCompile(`(?m)^\s*#include\s+<\s*(.+)\s*>`)

// Classifier extracts include directives and separates mock headers from them.
type Classifier struct {
	local          *regexp.Regexp
	linkOnly       *regexp.Regexp
	mock           *regexp.Regexp
	framework      *regexp.Regexp
	useSystemFiles bool
}

// NewClassifier compiles the include and mock patterns for opts.
func NewClassifier(opts m.Options) (*Classifier, error) {
	patterns := []struct {
		key  string
		expr string
	}{
		{"include_extensions", `(?m)^\s*#include\s+"\s*(.+\.` + opts.IncludeExtensions + `)\s*"`},
		{"source_extensions", `(?m)^TEST_SOURCE_FILE\(\s*"\s*(.+\.` + opts.SourceExtensions + `)\s*"`},
		{"mock_prefix", `(?i)^` + opts.MockPrefix + `.*` + opts.MockSuffix + `\.h$`},
		{"framework", `(` + regexp.QuoteMeta(opts.Framework) + `|cmock)`},
	}

	compiled := make([]*regexp.Regexp, len(patterns))

	for i, p := range patterns {
		re, err := regexp.Compile(p.expr)
		if err != nil {
			return nil, runerr.Wrap(runerr.Config, "", fmt.Sprintf("invalid pattern for %s", p.key), err)
		}

		compiled[i] = re
	}

	return &Classifier{
		local:          compiled[0],
		linkOnly:       compiled[1],
		mock:           compiled[2],
		framework:      compiled[3],
		useSystemFiles: opts.UseSystemFiles,
	}, nil
}

// FindIncludes returns the include directives of comment-stripped source.
func (c *Classifier) FindIncludes(source string) m.IncludeSets {
	sets := m.IncludeSets{
		Local:    firstGroups(c.local, source),
		LinkOnly: firstGroups(c.linkOnly, source),
	}

	for _, inc := range firstGroups(systemIncludePattern, source) {
		sets.System = append(sets.System, "<"+inc+">")
	}

	return sets
}

// Candidates returns the includes eligible for the runner.
func (c *Classifier) Candidates(sets m.IncludeSets) []string {
	candidates := slices.Clone(sets.Local)
	if c.useSystemFiles {
		candidates = append(candidates, sets.System...)
	}

	return candidates
}

// FindMocks returns the includes whose base filename matches the mock pattern.
func (c *Classifier) FindMocks(includes []string) []string {
	var mocks []string

	for _, inc := range includes {
		if c.mock.MatchString(baseName(inc)) {
			mocks = append(mocks, inc)
		}
	}

	return mocks
}

// Classify splits the candidate includes into ordinary includes and mocks.
// Framework and mocking-runtime headers are dropped from the ordinary includes.
func (c *Classifier) Classify(sets m.IncludeSets) (includes, mocks []string) {
	candidates := c.Candidates(sets)
	mocks = c.FindMocks(candidates)

	for _, inc := range candidates {
		if slices.Contains(mocks, inc) || c.framework.MatchString(inc) {
			continue
		}

		includes = append(includes, inc)
	}

	return includes, mocks
}

func firstGroups(re *regexp.Regexp, source string) []string {
	var groups []string
	for _, match := range re.FindAllStringSubmatch(source, -1) {
		groups = append(groups, match[1])
	}

	return groups
}

// baseName returns the last path element, accepting both separators.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}

	return path
}
