package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	got := Split("TEST_CASE(1, 2)\nTEST_RANGE([0, 3, 1])\n  TEST_MATRIX([a, b])\n")

	require.Len(t, got, 3)
	assert.Equal(t, KindCase, got[0].Kind)
	assert.Equal(t, "(1, 2)\n", got[0].Body)
	assert.Equal(t, KindRange, got[1].Kind)
	assert.Equal(t, "([0, 3, 1])\n  ", got[1].Body)
	assert.Equal(t, KindMatrix, got[2].Kind)
	assert.Equal(t, "([a, b])\n", got[2].Body)
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name        string
		annotations string
		want        []string
	}{
		{"no annotations", "", []string{}},
		{"single case", "TEST_CASE(1, 2)\n", []string{"1, 2"}},
		{
			"several cases keep declaration order",
			"TEST_CASE(1)\nTEST_CASE(2)\nTEST_CASE(3)\n",
			[]string{"1", "2", "3"},
		},
		{
			"mixed kinds append in order",
			"TEST_CASE(7)\nTEST_RANGE([0, 1, 1])\nTEST_MATRIX([x])\n",
			[]string{"7", "0", "1", "x"},
		},
		{"malformed range yields nothing", "TEST_RANGE(1, 2, 3)\n", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(tt.annotations)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandCase(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"plain", "(1, 2)", "1, 2"},
		{"surrounding whitespace", "  (  \"a\", 'b'  )  \n", "\"a\", 'b'"},
		{"nested parentheses", "(add(1, 2), 3)\n", "add(1, 2), 3"},
		{"multi line", "(1,\n           2)\n", "1,\n           2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, ExpandCase(tt.body))
		})
	}
}

func TestProduct(t *testing.T) {
	got := product([][]string{{"1", "2"}, {"a", "b"}, {"x"}})
	assert.Equal(t, []string{"1, a, x", "1, b, x", "2, a, x", "2, b, x"}, got)

	assert.Empty(t, product(nil))
	assert.Empty(t, product([][]string{{"1"}, {}}))
}
