package grammar

import (
	"fmt"

	"github.com/example/frazbot/pkg/models"
)

// Index maps lower-cased surface text to its vocabulary entry. It is built
// once per run and used to resolve learning-target strings back into typed
// words. Surface-text uniqueness across the vocabulary is a construction
// precondition (validated by the config layer), not enforced here.
type Index map[string]models.Word

// NewIndex builds an index over the whole vocabulary, scanning question
// words, then pronouns, then verbs.
func NewIndex(vocab models.Vocabulary) Index {
	ix := make(Index, len(vocab.QuestionWords)+len(vocab.Pronouns)+len(vocab.Verbs))
	for _, q := range vocab.QuestionWords {
		ix[q.Surface()] = q
	}
	for _, p := range vocab.Pronouns {
		ix[p.Surface()] = p
	}
	for _, v := range vocab.Verbs {
		ix[v.Surface()] = v
	}
	return ix
}

// ResolveTargets converts learning-target strings into their vocabulary
// entries. Target strings are expected lower-cased already; any string with
// no vocabulary entry fails the whole resolution.
func (ix Index) ResolveTargets(targets []string) ([]models.Word, error) {
	words := make([]models.Word, 0, len(targets))
	for _, t := range targets {
		w, ok := ix[t]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLearningTarget, t)
		}
		words = append(words, w)
	}
	return words, nil
}
