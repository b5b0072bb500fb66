// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Achievement is the predicate function for achievement builders.
type Achievement func(*sql.Selector)

// Certification is the predicate function for certification builders.
type Certification func(*sql.Selector)

// Education is the predicate function for education builders.
type Education func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Reference is the predicate function for reference builders.
type Reference func(*sql.Selector)

// Skill is the predicate function for skill builders.
type Skill func(*sql.Selector)

// WorkExperience is the predicate function for workexperience builders.
type WorkExperience func(*sql.Selector)
