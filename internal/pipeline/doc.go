// Package pipeline turns textual step expressions and YAML pipeline files
// into chain operations, and decodes and encodes the documents they run
// over.
package pipeline
