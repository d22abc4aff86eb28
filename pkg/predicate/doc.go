// Package predicate is the catalogue of pure boolean checks used by the
// validator package. Every predicate takes the subject as an untyped value plus
// fixed parameters and reports whether the named condition holds.
//
// Predicates never panic and never mutate their input. A subject of the wrong
// shape (a length check on a number, a date check on a string) simply fails the
// check, which lets callers accumulate failures instead of aborting.
//
// # Text form
//
// Format and substring checks first convert the subject with Text: strings and
// named string types, byte slices, numbers, booleans, fmt.Stringer and error
// values have a text form; everything else fails.
//
// # Equality
//
// StrictEqual requires the same dynamic type and deep equality. Equal is the
// loose variant: numbers compare numerically across Go types (and against
// numeric strings), booleans compare by truthiness, text-like values compare by
// their text form and slices compare element by element.
//
// # Time
//
// Date predicates never read the wall clock. The caller passes the reference
// instant explicitly, so results are deterministic:
//
//	predicate.DateInPast(createdAt, clock.Now())
package predicate
