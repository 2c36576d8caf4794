package model

// IncludeSets holds the include directives found in a test file.
type IncludeSets struct {
	// Local are quoted includes, stored without quotes.
	Local []string
	// System are angle-bracket includes, stored with their brackets.
	System []string
	// LinkOnly are sources named by TEST_SOURCE_FILE directives.
	LinkOnly []string
}

// Scan is everything the scanning stages learned about one test file.
type Scan struct {
	Source   Source
	Options  Options
	Tests    []TestRecord
	Headers  IncludeSets
	Includes []string
	Mocks    []string
}
