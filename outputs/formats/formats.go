// Package formats renders profiled schemas for humans and for machines.
package formats

import "github.com/typelens/typelens/typelens"

// Formatter writes a profiled schema to some output.
type Formatter interface {
	Format(columns []typelens.Column) error
}
