package domain

// Topic represents one student-facing subject area in the knowledge base.
// Topics are created once at startup and never mutated afterwards.
type Topic struct {
	// ID is the unique, stable identifier (e.g. "accounts-and-logins").
	ID string

	// Title is the display name.
	Title string

	// ShortDescription is a one-line summary.
	ShortDescription string

	// Details is the long-form explanatory text.
	Details string

	// Tags are keyword strings used to widen match coverage.
	Tags []string

	// ExampleQuestions are sample phrasings used to widen match coverage.
	ExampleQuestions []string

	// Links point to external resources. They are presentation material
	// only and play no part in retrieval or answer generation.
	Links []Link
}

// Link is a labelled URL attached to a topic.
type Link struct {
	// Label is the display text.
	Label string

	// URL is the link target.
	URL string
}

// Registry is the ordered, read-only collection of topics loaded at
// startup. The order of topics is significant: it is the tie-break order
// for retrieval.
type Registry struct {
	topics []Topic
	byID   map[string]int
}

// NewRegistry builds a registry from an ordered topic list.
// The registry must be non-empty and topic IDs must be unique.
func NewRegistry(topics []Topic) (*Registry, error) {
	if len(topics) == 0 {
		return nil, ErrEmptyRegistry
	}

	byID := make(map[string]int, len(topics))
	for i, t := range topics {
		if t.ID == "" {
			return nil, ErrInvalidTopic
		}
		if _, exists := byID[t.ID]; exists {
			return nil, ErrDuplicateTopicID
		}
		byID[t.ID] = i
	}

	// Copy so callers cannot mutate the registry through their slice.
	owned := make([]Topic, len(topics))
	copy(owned, topics)

	return &Registry{topics: owned, byID: byID}, nil
}

// Topics returns the topics in registry order.
// Callers must treat the returned slice as read-only.
func (r *Registry) Topics() []Topic {
	return r.topics
}

// Len returns the number of topics.
func (r *Registry) Len() int {
	return len(r.topics)
}

// TopicByID looks up a topic by its identifier.
func (r *Registry) TopicByID(id string) (Topic, error) {
	i, ok := r.byID[id]
	if !ok {
		return Topic{}, ErrTopicNotFound
	}
	return r.topics[i], nil
}
