package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors, which are caught at the
// adapter boundary and never escape to callers of core services.
var (
	// ErrEmptyQuestion indicates a blank or whitespace-only question.
	// There is nothing to retrieve or generate; this is the "nothing to
	// do" signal, distinct from a question that matched no topics.
	ErrEmptyQuestion = errors.New("empty question")

	// ErrTopicNotFound indicates a requested topic does not exist.
	ErrTopicNotFound = errors.New("topic not found")

	// ErrEmptyRegistry indicates a registry was built with no topics.
	ErrEmptyRegistry = errors.New("registry has no topics")

	// ErrDuplicateTopicID indicates two registry topics share an ID.
	ErrDuplicateTopicID = errors.New("duplicate topic id")

	// ErrInvalidTopic indicates a registry topic is missing its ID.
	ErrInvalidTopic = errors.New("topic missing id")

	// ErrNoTopics indicates answer generation was invoked without matched
	// topics. This is a programming error in the orchestrator, not a
	// recoverable runtime condition.
	ErrNoTopics = errors.New("generation requires matched topics")

	// ErrUnsupportedProvider indicates an unknown answer provider name.
	ErrUnsupportedProvider = errors.New("unsupported provider")
)
