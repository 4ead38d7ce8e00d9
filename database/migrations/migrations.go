// Package migrations holds every schema migration. Each file registers
// itself from init, so importing this package for side effects is enough.
package migrations
