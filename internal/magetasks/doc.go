// Package magetasks holds the build, test, lint and demo tasks behind the
// Magefile. Tasks shell out through mage's sh package and print progress with
// the helpers in console.go.
package magetasks
