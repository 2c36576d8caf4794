// Package model defines the data structures shared by the runner generator.
package model

// Path represents a file system path.
type Path string

// Source is a C test file loaded into memory with its text normalized to UTF-8.
type Source struct {
	Path Path
	Text string
	Hash string
}
