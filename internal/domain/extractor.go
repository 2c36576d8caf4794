package domain

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"runnergen.dev/pkg/runnergen/internal/domain/params"
	m "runnergen.dev/pkg/runnergen/internal/model"
	"runnergen.dev/pkg/runnergen/internal/runerr"
)

const testSignatureFormat = `(?ms)^((?:\s*(?:TEST_(?:CASE|RANGE|MATRIX))\s*\(.*?\)\s*)*)\s*void\s+((?:%s)\w*)\s*\(\s*(.*)\s*\)`

// Extractor recognizes test function signatures in scrubbed logical lines.
type Extractor struct {
	signature     *regexp.Regexp
	useParamTests bool
}

// NewExtractor compiles the signature pattern for the configured test prefix.
func NewExtractor(opts m.Options) (*Extractor, error) {
	signature, err := regexp.Compile(fmt.Sprintf(testSignatureFormat, opts.TestPrefix))
	if err != nil {
		return nil, runerr.Wrap(runerr.Config, "", fmt.Sprintf("invalid test_prefix %q", opts.TestPrefix), err)
	}

	return &Extractor{signature: signature, useParamTests: opts.UseParamTests}, nil
}

// FindTests scrubs source and returns its test records in order of first
// appearance, one per name, with line numbers resolved against source.
func (e *Extractor) FindTests(source string) []m.TestRecord {
	records := e.Extract(Scrub(source).Lines)
	ResolveLineNumbers(records, source)

	return records
}

// Extract returns one record per distinct test name found in lines.
func (e *Extractor) Extract(lines []string) []m.TestRecord {
	var records []m.TestRecord

	seen := make(map[string]struct{})

	for _, line := range lines {
		match := e.signature.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		record := m.TestRecord{
			Name:          match[2],
			CallSignature: match[3],
			FormalParams:  match[3],
			Annotations:   match[1],
		}

		if _, ok := seen[record.Name]; ok {
			continue
		}

		seen[record.Name] = struct{}{}

		if e.useParamTests && record.Annotations != "" {
			record.Parameterized = true
			record.ParameterSets = params.Expand(record.Annotations)

			if len(record.ParameterSets) == 0 {
				slog.Debug("annotations produced no parameter sets", "test", record.Name)
			}
		}

		records = append(records, record)
	}

	return records
}

// ResolveLineNumbers assigns 1-based line numbers by scanning the original
// source forward from the previous hit, so that repeated names resolve to
// successive occurrences. Records that cannot be found keep line 0.
func ResolveLineNumbers(records []m.TestRecord, source string) {
	sourceLines := strings.Split(source, "\n")
	index := 0

	for i := range records {
		pattern := regexp.MustCompile(`\s+` + regexp.QuoteMeta(records[i].Name) + `(?:\s|\()`)

		for offset, line := range sourceLines[index:] {
			if !pattern.MatchString(line) {
				continue
			}

			index += offset
			records[i].Line = index + 1

			break
		}
	}
}
