package grammar

import "errors"

var (
	// ErrUnknownLearningTarget means a learning-target word has no matching
	// vocabulary entry. This is a caller/config mismatch, never recovered.
	ErrUnknownLearningTarget = errors.New("unknown learning target")

	// ErrEmptyVocabulary means a selection step had no candidates to pick from
	ErrEmptyVocabulary = errors.New("empty vocabulary")

	// ErrMalformedConjugation means a verb's conjugation table lacks an entry
	// for the required person
	ErrMalformedConjugation = errors.New("malformed conjugation table")
)
