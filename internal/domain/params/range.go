package params

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	rangePattern  = regexp.MustCompile(`(?s)(\[|<)\s*(-?\d+.?\d*)\s*,\s*(-?\d+.?\d*)\s*,\s*(-?\d+.?\d*)\s*(\]|>)`)
	leadingNumber = regexp.MustCompile(`^-?\d+(?:\.\d+)?`)
)

// Bounds is one parsed TEST_RANGE triple.
type Bounds struct {
	Start, End, Step string
	ExcludeEnd       bool
}

// ParseRanges extracts every [start, end, step] or <start, end, step> triple.
func ParseRanges(body string) []Bounds {
	matches := rangePattern.FindAllStringSubmatch(body, -1)
	bounds := make([]Bounds, 0, len(matches))

	for _, match := range matches {
		bounds = append(bounds, Bounds{
			Start:      match[2],
			End:        match[3],
			Step:       match[4],
			ExcludeEnd: match[1] == "<" && match[5] == ">",
		})
	}

	return bounds
}

// ExpandRange expands every triple to its arithmetic sequence and combines the
// sequences by Cartesian product. A triple that yields no value makes the whole
// annotation yield nothing.
func ExpandRange(body string) []string {
	bounds := ParseRanges(body)
	lists := make([][]string, 0, len(bounds))

	for _, b := range bounds {
		lists = append(lists, b.Values())
	}

	return product(lists)
}

// Values returns the formatted members of the sequence.
func (b Bounds) Values() []string {
	if isFloat(b.Start) || isFloat(b.End) || isFloat(b.Step) {
		return floatValues(parseFloat(b.Start), parseFloat(b.End), parseFloat(b.Step), b.ExcludeEnd)
	}

	start, okStart := parseInt(b.Start)
	end, okEnd := parseInt(b.End)
	step, okStep := parseInt(b.Step)

	if !okStart || !okEnd || !okStep {
		return []string{}
	}

	return intValues(start, end, step, b.ExcludeEnd)
}

// intValues stops before the next step would pass end, so bounds near the
// int64 limits never wrap around.
func intValues(start, end, step int64, excludeEnd bool) []string {
	values := []string{}
	if step <= 0 {
		return values
	}

	for v := start; v < end || (!excludeEnd && v == end); v += step {
		values = append(values, strconv.FormatInt(v, 10))

		// unsigned difference is exact for v <= end
		if uint64(end)-uint64(v) < uint64(step) {
			break
		}
	}

	return values
}

// floatValues derives the element count from the bounds with a rounding
// allowance, then computes each element as start+i*step so accumulated error
// never adds or drops the last element.
func floatValues(start, end, step float64, excludeEnd bool) []string {
	values := []string{}
	if step <= 0 || math.IsNaN(start) || math.IsNaN(end) || math.IsNaN(step) {
		return values
	}

	count := floatStepCount(start, end, step, excludeEnd)

	for i := 0; i < count; i++ {
		v := float64(i)*step + start
		if end < v {
			v = end
		}

		values = append(values, formatFloat(v))
	}

	return values
}

func floatStepCount(start, end, step float64, excludeEnd bool) int {
	n := (end - start) / step

	allowance := (math.Abs(start) + math.Abs(end) + math.Abs(end-start)) / math.Abs(step) * epsilon
	if allowance > 0.5 {
		allowance = 0.5
	}

	if !excludeEnd {
		if n < 0 {
			return 0
		}

		return int(math.Floor(n+allowance)) + 1
	}

	if n <= 0 {
		return 0
	}

	if n < 1 {
		n = 0
	} else {
		n = math.Floor(n - allowance)
	}

	if (n+1)*step+start < end {
		n++
	}

	return int(n) + 1
}

const epsilon = 2.220446049250313e-16

func isFloat(s string) bool {
	return strings.Contains(s, ".")
}

// parseInt reports false for literals outside the int64 range.
func parseInt(s string) (int64, bool) {
	v, err := strconv.ParseInt(leadingNumber.FindString(strings.SplitN(s, ".", 2)[0]), 10, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(leadingNumber.FindString(s), 64)
	if err != nil {
		return 0
	}

	return v
}

// formatFloat always renders a fractional part, so 1 prints as 1.0 and stays a
// floating-point literal in the generated C.
func formatFloat(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		s := strconv.FormatFloat(v, 'e', -1, 64)

		mantissa, exponent, _ := strings.Cut(s, "e")
		if !strings.Contains(mantissa, ".") {
			mantissa += ".0"
		}

		return mantissa + "e" + exponent
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
