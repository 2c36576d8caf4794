// Package params expands TEST_CASE, TEST_RANGE and TEST_MATRIX annotations
// into the argument strings passed to parameterized test wrappers.
package params

import (
	"regexp"
	"strings"
)

// Kind is the annotation keyword suffix.
type Kind string

const (
	// KindCase is a TEST_CASE annotation.
	KindCase Kind = "CASE"
	// KindRange is a TEST_RANGE annotation.
	KindRange Kind = "RANGE"
	// KindMatrix is a TEST_MATRIX annotation.
	KindMatrix Kind = "MATRIX"
)

// Expander turns the text following one annotation keyword into argument strings.
type Expander func(body string) []string

var expanders = map[Kind]Expander{
	KindCase:   ExpandCase,
	KindRange:  ExpandRange,
	KindMatrix: ExpandMatrix,
}

var annotationPattern = regexp.MustCompile(`TEST_(CASE|RANGE|MATRIX)`)

// argSeparator joins the fields of one combination.
const argSeparator = ", "

// Annotation is one keyword and the text that follows it up to the next keyword.
type Annotation struct {
	Kind Kind
	Body string
}

// Split cuts annotation text at every TEST_CASE/TEST_RANGE/TEST_MATRIX keyword.
func Split(annotations string) []Annotation {
	locs := annotationPattern.FindAllStringSubmatchIndex(annotations, -1)
	result := make([]Annotation, 0, len(locs))

	for i, loc := range locs {
		end := len(annotations)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}

		result = append(result, Annotation{
			Kind: Kind(annotations[loc[2]:loc[3]]),
			Body: annotations[loc[1]:end],
		})
	}

	return result
}

// Expand returns the argument strings of every annotation in order. The result
// is never nil; it is empty when nothing could be expanded.
func Expand(annotations string) []string {
	args := []string{}

	for _, annotation := range Split(annotations) {
		expand, ok := expanders[annotation.Kind]
		if !ok {
			continue
		}

		args = append(args, expand(annotation.Body)...)
	}

	return args
}

// product combines lists row-major: the last list varies fastest.
func product(lists [][]string) []string {
	if len(lists) == 0 {
		return []string{}
	}

	combos := [][]string{{}}

	for _, list := range lists {
		next := make([][]string, 0, len(combos)*len(list))

		for _, combo := range combos {
			for _, value := range list {
				extended := make([]string, len(combo), len(combo)+1)
				copy(extended, combo)
				next = append(next, append(extended, value))
			}
		}

		combos = next
	}

	result := make([]string, 0, len(combos))
	for _, combo := range combos {
		result = append(result, strings.Join(combo, argSeparator))
	}

	return result
}
