package generator

import (
	"math/rand"

	"github.com/example/frazbot/internal/grammar"
	"github.com/example/frazbot/pkg/models"
)

// randomFrom picks one element uniformly at random
func randomFrom[T any](rng *rand.Rand, list []T) (T, error) {
	if len(list) == 0 {
		var zero T
		return zero, grammar.ErrEmptyVocabulary
	}
	return list[rng.Intn(len(list))], nil
}

// filter returns the elements of list for which keep is true
func filter[T any](list []T, keep func(T) bool) []T {
	var out []T
	for _, item := range list {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// targetedOrAny is the two-tier selection rule: whenever a learning-target
// candidate exists it is always preferred; otherwise the pick is uniform
// over the full pool.
func targetedOrAny[T any](rng *rand.Rand, targeted, pool []T) (T, error) {
	if len(targeted) > 0 {
		return randomFrom(rng, targeted)
	}
	return randomFrom(rng, pool)
}

// targetedQuestions extracts question words from resolved learning targets
func targetedQuestions(targets []models.Word) []models.QuestionWord {
	var out []models.QuestionWord
	for _, w := range targets {
		if q, ok := w.(models.QuestionWord); ok {
			out = append(out, q)
		}
	}
	return out
}

// targetedPronouns extracts pronouns from resolved learning targets
func targetedPronouns(targets []models.Word) []models.PronounWord {
	var out []models.PronounWord
	for _, w := range targets {
		if p, ok := w.(models.PronounWord); ok {
			out = append(out, p)
		}
	}
	return out
}

// targetedVerbs extracts verbs from resolved learning targets
func targetedVerbs(targets []models.Word) []models.VerbWord {
	var out []models.VerbWord
	for _, w := range targets {
		if v, ok := w.(models.VerbWord); ok {
			out = append(out, v)
		}
	}
	return out
}

func hasQuestionTarget(targets []models.Word) bool {
	for _, w := range targets {
		if w.Type() == models.WordTypeQuestion {
			return true
		}
	}
	return false
}

func anyExpectInfinitive(verbs []models.VerbWord) bool {
	for _, v := range verbs {
		if v.ExpectInfinitive {
			return true
		}
	}
	return false
}

func (g *Generator) pickQuestionWord(targets []models.Word) (models.QuestionWord, error) {
	return targetedOrAny(g.rng, targetedQuestions(targets), g.vocab.QuestionWords)
}

func (g *Generator) pickPronoun(targets []models.Word) (models.PronounWord, error) {
	return targetedOrAny(g.rng, targetedPronouns(targets), g.vocab.Pronouns)
}

// pickFiniteVerb chooses the sentence's inflected verb. Targeted verbs win
// outright when one of them governs an infinitive chain, and win a coin flip
// otherwise; a lost flip picks an infinitive-governing verb from the full
// vocabulary instead.
func (g *Generator) pickFiniteVerb(targets []models.Word) (models.VerbWord, error) {
	tv := targetedVerbs(targets)
	if len(tv) > 0 {
		if anyExpectInfinitive(tv) || g.coin() {
			return randomFrom(g.rng, tv)
		}
		governing := filter(g.vocab.Verbs, func(v models.VerbWord) bool { return v.ExpectInfinitive })
		return randomFrom(g.rng, governing)
	}
	return randomFrom(g.rng, g.vocab.Verbs)
}

// pickChainVerb chooses the second verb of an infinitive chain. Such a verb
// must not itself govern an infinitive, or the chain would never terminate.
func (g *Generator) pickChainVerb(targets []models.Word) (models.VerbWord, error) {
	plain := func(v models.VerbWord) bool { return !v.ExpectInfinitive }
	return targetedOrAny(g.rng,
		filter(targetedVerbs(targets), plain),
		filter(g.vocab.Verbs, plain))
}
