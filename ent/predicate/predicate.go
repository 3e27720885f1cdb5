// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)
