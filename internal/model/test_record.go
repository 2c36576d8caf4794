package model

// TestRecord is the metadata discovered for one C test function.
type TestRecord struct {
	Name string
	// CallSignature is the raw parameter list as it appears between the parentheses.
	CallSignature string
	// FormalParams is the declared parameter list used for header prototypes.
	FormalParams string
	// Annotations holds the TEST_CASE/TEST_RANGE/TEST_MATRIX text preceding the signature.
	Annotations string
	// Parameterized is set once the annotations have been expanded.
	Parameterized bool
	// ParameterSets holds one argument-string per generated invocation.
	ParameterSets []string
	Line          int
}

// DirectCall reports whether the record is run by calling the test function itself.
func (r TestRecord) DirectCall() bool {
	return !r.Parameterized
}

// Skipped reports whether the record carried annotations that produced no expansion.
func (r TestRecord) Skipped() bool {
	return r.Parameterized && len(r.ParameterSets) == 0
}
