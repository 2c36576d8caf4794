package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrub_LogicalLines(t *testing.T) {
	source := "#include \"unity.h\"\nint x = 1;\nvoid test_a(void) { x++; }\n"

	got := Scrub(source).Lines

	assert.Equal(t, []string{
		"#include \"unity.h\"",
		"\nint x = 1",
		";",
		"\nvoid test_a(void) ",
		"{",
		" x++",
		";",
		" ",
		"}",
		"\n",
	}, got)
}

func TestScrub_Literals(t *testing.T) {
	t.Run("boundaries inside strings are not split", func(t *testing.T) {
		got := Scrub(`const char* s = "a;b{c}";`).Lines

		assert.Equal(t, []string{`const char* s = "a;b{c}"`, ";"}, got)
	})

	t.Run("char literals keep their contents", func(t *testing.T) {
		got := Scrub(`char c = ';';`).Lines

		assert.Equal(t, []string{`char c = ';'`, ";"}, got)
	})

	t.Run("escaped quotes are restored", func(t *testing.T) {
		got := Scrub(`puts("say \"hi;\"");`).Lines

		assert.Equal(t, []string{`puts("say \"hi;\"")`, ";"}, got)
	})

	t.Run("slashes in strings do not start comments", func(t *testing.T) {
		got := Scrub(`char* url = "http://x/*y*/";`).Lines

		assert.Equal(t, []string{`char* url = "http://x/*y*/"`, ";"}, got)
	})
}

func TestStripComments(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "line comment",
			source: "int a; // note\nint b;",
			want:   "int a; \nint b;",
		},
		{
			name:   "block comment across lines",
			source: "int a; /* one\ntwo */ int b;",
			want:   "int a;  int b;",
		},
		{
			name:   "line comment holding a block opener does not eat the block",
			source: "// see /* here\nvoid test_a(void);\n/* real */\nvoid test_b(void);",
			want:   "\nvoid test_a(void);\n\nvoid test_b(void);",
		},
		{
			name:   "commented out block opener",
			source: "//* not a block\nvoid test_a(void);",
			want:   "\nvoid test_a(void);",
		},
		{
			name:   "lazy block match",
			source: "/* a */ keep /* b */",
			want:   " keep ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripComments(tt.source))
		})
	}
}

func TestScrub_CommentedTestsAreHidden(t *testing.T) {
	source := "/* void test_hidden(void) {} */\n// void test_also_hidden(void) {}\nvoid test_visible(void) {}\n"

	text := Scrub(source).Text

	assert.NotContains(t, text, "test_hidden")
	assert.NotContains(t, text, "test_also_hidden")
	assert.Contains(t, text, "test_visible")
}
