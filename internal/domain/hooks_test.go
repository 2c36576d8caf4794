package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "runnergen.dev/pkg/runnergen/internal/model"
)

func TestDetectHooks(t *testing.T) {
	tests := []struct {
		name   string
		source string
		mutate func(*m.Options)
		want   [4]bool // setup, teardown, suite setup, suite teardown
	}{
		{
			name:   "nothing defined",
			source: "void test_a(void) {}",
			want:   [4]bool{false, false, false, false},
		},
		{
			name:   "fixtures defined",
			source: "void setUp(void) {}\nvoid tearDown (void) {}",
			want:   [4]bool{true, true, false, false},
		},
		{
			name:   "suite hooks defined",
			source: "void suiteSetUp(void) {}\nint suiteTearDown(int failures) { return failures; }",
			want:   [4]bool{false, false, true, true},
		},
		{
			name:   "suite teardown needs an int parameter",
			source: "int suiteTearDown(void) { return 0; }",
			want:   [4]bool{false, false, false, false},
		},
		{
			name:   "custom fixture names",
			source: "void init_fixture(void) {}\nvoid setUp(void) {}",
			mutate: func(o *m.Options) { o.SetupName = "init_fixture"; o.TeardownName = "drop_fixture" },
			want:   [4]bool{true, false, false, false},
		},
		{
			name:   "configured suite flags stay set",
			source: "void test_a(void) {}",
			mutate: func(o *m.Options) { o.HasSuiteSetup = true; o.HasSuiteTeardown = true },
			want:   [4]bool{false, false, true, true},
		},
		{
			name:   "configured suite bodies imply the flags",
			source: "void test_a(void) {}",
			mutate: func(o *m.Options) { o.SuiteSetup = "  init();"; o.SuiteTeardown = "  return num_failures;" },
			want:   [4]bool{false, false, true, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := m.DefaultOptions()
			if tt.mutate != nil {
				tt.mutate(&opts)
			}

			got := DetectHooks(tt.source, opts)

			assert.Equal(t, tt.want, [4]bool{got.HasSetup, got.HasTeardown, got.HasSuiteSetup, got.HasSuiteTeardown})
		})
	}
}

func TestDetectHooks_DoesNotMutateInput(t *testing.T) {
	opts := m.DefaultOptions()
	opts.Includes = []string{"a.h"}

	got := DetectHooks("void setUp(void) {}", opts)
	got.Includes[0] = "changed.h"

	assert.False(t, opts.HasSetup)
	assert.Equal(t, "a.h", opts.Includes[0])
}
