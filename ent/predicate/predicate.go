// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CascadeSession is the predicate function for cascadesession builders.
type CascadeSession func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// LogRow is the predicate function for logrow builders.
type LogRow func(*sql.Selector)
