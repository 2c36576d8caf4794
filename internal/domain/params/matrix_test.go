package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandMatrix(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			"row major product",
			"([1,2],[a,b])",
			[]string{"1, a", "1, b", "2, a", "2, b"},
		},
		{"single list", "([3, 4, 5])", []string{"3", "4", "5"}},
		{
			"strings with commas",
			`(["a,b", "c"], [1])`,
			[]string{`"a,b", 1`, `"c", 1`},
		},
		{
			"escaped quotes inside strings",
			`(["say \"hi\"", "x"])`,
			[]string{`"say \"hi\""`, `"x"`},
		},
		{"char literals", `(['a', '\n'])`, []string{`'a'`, `'\n'`}},
		{"subscripted tokens", "([arr[0], arr[1]])", []string{"arr[0]", "arr[1]"}},
		{"negative numbers", "([-1, -2.5])", []string{"-1", "-2.5"}},
		{"trailing comma", "([1, 2,])", []string{"1", "2"}},
		{"no list", "(1, 2)", []string{}},
		{"empty list empties the product", "([1, 2], [])", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandMatrix(tt.body))
		})
	}
}
