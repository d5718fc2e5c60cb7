package fanout

import "errors"

var (
	// ErrAllFailed is reported by Any when every candidate failed before any
	// produced a value.
	ErrAllFailed = errors.New("fanout: all candidates failed")

	// ErrNoMatch is reported by AnyWith and OrderWith when every candidate
	// was consumed, by failure or by predicate mismatch, without a match.
	ErrNoMatch = errors.New("fanout: no candidate result matched")

	// ErrNoTasks is reported when a policy is evaluated over no candidates,
	// such as an empty registry. Nothing is launched in that case.
	ErrNoTasks = errors.New("fanout: no candidates")
)
