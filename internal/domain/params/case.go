package params

import "regexp"

var casePattern = regexp.MustCompile(`(?ms)^\s*\(\s*(.*?)\s*\)\s*$`)

// ExpandCase strips the outer parentheses of a TEST_CASE argument group and
// returns the contents verbatim.
func ExpandCase(body string) []string {
	loc := casePattern.FindStringSubmatchIndex(body)
	if loc == nil {
		return []string{body}
	}

	return []string{body[:loc[0]] + body[loc[2]:loc[3]] + body[loc[1]:]}
}
