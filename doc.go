// Package fanout launches a set of tasks sharing one call signature
// concurrently and reduces their outcomes to a single result.
//
// A Task wraps a Func and can be run directly (Run/Get/Wait), composed with a
// transform (Then), or handed to a policy:
//
//   - All: every value, in launch order, failures omitted
//   - Any: the first value, failures ignored
//   - AnyWith: the first value satisfying a predicate
//   - OrderWith: the first value in launch order satisfying a predicate
//   - Best: every value, reduced by a preference comparator
//
// Each policy returns a new lazy Task, so policies compose with Then and with
// each other. Group exposes the same policies over an ordered registry of
// named tasks, reporting the winning name instead of an index.
//
// Deadlines and limits are per evaluation: WithTimeout fixes one absolute
// deadline at entry that every sub-wait shares, and WithLimit bounds how many
// candidates run at once.
//
// Failures inside candidates never escape a policy as errors; they only
// shrink the candidate set. A failure, including a panic (ErrPanic), reaches
// the caller only through Get, Wait, or Then on a single task.
//
// Candidates that lose a race are not forcibly stopped. Their context is
// cancelled when the policy returns, so cooperative candidates exit early;
// ones that ignore their context keep running until done and their results
// are discarded. Under sustained load this is a resource to keep an eye on,
// as is the default of one goroutine per candidate with no upper bound.
package fanout
