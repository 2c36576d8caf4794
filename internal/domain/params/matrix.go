package params

import "regexp"

// matrixElement matches one list element: a run of double-quoted strings, a
// char literal, or a bare token possibly carrying [subscripts].
const matrixElement = `(?:(?:"(?:\\"|[^\\])*?")+|(?:'\\?.')+|(?:[^\s\]\["',]|\[[\d\S_-]+\])+)`

var (
	matrixListPattern    = regexp.MustCompile(`(?s)\[((?:\s*` + matrixElement + `\s*,?)*(?:\s*` + matrixElement + `)?\s*)\]`)
	matrixElementPattern = regexp.MustCompile(`(?s)\s*(` + matrixElement + `)\s*,\s*`)
)

// ParseMatrix returns the elements of every bracketed list in body.
func ParseMatrix(body string) [][]string {
	var lists [][]string

	for _, list := range matrixListPattern.FindAllStringSubmatch(body, -1) {
		var elements []string
		for _, element := range matrixElementPattern.FindAllStringSubmatch(list[1]+",", -1) {
			elements = append(elements, element[1])
		}

		lists = append(lists, elements)
	}

	return lists
}

// ExpandMatrix combines the lists of a TEST_MATRIX annotation by Cartesian product.
func ExpandMatrix(body string) []string {
	return product(ParseMatrix(body))
}
