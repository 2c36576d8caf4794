// Package domain contains the scanning stages and the runner generation pipeline.
package domain

import (
	"regexp"
	"strings"
)

// Sentinels hide characters inside string and char literals from the comment
// and statement patterns. '@' never appears in valid C outside literals.
var (
	literalHider = strings.NewReplacer(
		"{", "@co@",
		"}", "@cc@",
		";", "@ss@",
		"/", "@fs@",
	)
	literalRestorer = strings.NewReplacer(
		"@co@", "{",
		"@cc@", "}",
		"@ss@", ";",
		"@fs@", "/",
		"@quote@", `\"`,
		"@apos@", `\'`,
	)
)

var (
	literalPattern = regexp.MustCompile(`("[^"\n]*")|('[^'\n]*')`)

	// A line comment that itself contains a block opener, or that starts with
	// "//*", must go before block comments are considered.
	blockOpenerLineCommentPattern = regexp.MustCompile(`(?m)//(?:.+/\*|\*(?:$|[^/])).*$`)
	blockCommentPattern           = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentPattern            = regexp.MustCompile(`(?m)//.*$`)

	logicalLinePattern = regexp.MustCompile(`(?m)(^\s*#.*$)|(;|\{|\})`)
)

// Scrubbed is the output of the text scrubber.
type Scrubbed struct {
	// Text has comments removed and literal contents hidden behind sentinels.
	Text string
	// Lines are the logical lines of Text with every sentinel restored.
	Lines []string
}

// Scrub removes comments, protects literal contents and splits source into
// logical lines.
func Scrub(source string) Scrubbed {
	text := strings.ReplaceAll(source, `\"`, "@quote@")
	text = strings.ReplaceAll(text, `\'`, "@apos@")
	text = literalPattern.ReplaceAllStringFunc(text, literalHider.Replace)
	text = StripComments(text)

	pieces := splitLogicalLines(text)
	lines := make([]string, 0, len(pieces))

	for _, piece := range pieces {
		lines = append(lines, literalRestorer.Replace(piece))
	}

	return Scrubbed{Text: text, Lines: lines}
}

// StripComments removes block and line comments, in the order that keeps a
// line comment from hiding the start of a real block comment.
func StripComments(source string) string {
	text := blockOpenerLineCommentPattern.ReplaceAllString(source, "")
	text = blockCommentPattern.ReplaceAllString(text, "")

	return lineCommentPattern.ReplaceAllString(text, "")
}

// splitLogicalLines splits text at statement boundaries. Preprocessor lines and
// the boundary characters themselves are kept as lines of their own.
func splitLogicalLines(text string) []string {
	var lines []string

	appendLine := func(s string) {
		if s != "" {
			lines = append(lines, s)
		}
	}

	last := 0

	for _, loc := range logicalLinePattern.FindAllStringSubmatchIndex(text, -1) {
		appendLine(text[last:loc[0]])

		for group := 1; group < len(loc)/2; group++ {
			start, end := loc[2*group], loc[2*group+1]
			if start >= 0 {
				appendLine(text[start:end])
			}
		}

		last = loc[1]
	}

	appendLine(text[last:])

	return lines
}
