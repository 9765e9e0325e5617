package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/example/frazbot/internal/grammar"
	"github.com/example/frazbot/pkg/models"
)

// partKind names the next sentence part the state machine has to produce
type partKind int

const (
	partQuestion partKind = iota
	partPronoun
	partVerb
	partDone
)

// nextPart is the state machine's "next required part" descriptor.
// form is meaningful only for partVerb.
type nextPart struct {
	kind partKind
	form models.GrammaticalForm
}

// Generator produces drill sentences from a fixed vocabulary, biasing word
// choice toward the learning targets of each call. The vocabulary and index
// are read-only; the random source makes generation reproducible per seed.
type Generator struct {
	vocab models.Vocabulary
	index grammar.Index
	rng   *rand.Rand
}

// New creates a generator over the given vocabulary
func New(vocab models.Vocabulary, index grammar.Index, rng *rand.Rand) *Generator {
	return &Generator{
		vocab: vocab,
		index: index,
		rng:   rng,
	}
}

func (g *Generator) coin() bool {
	return g.rng.Intn(2) == 1
}

// Sentence generates one sentence. targets are lower-cased surface strings
// of the words currently being learned; callers subsample them before the
// call, the generator uses whatever it is given. A target with no vocabulary
// entry fails the call with ErrUnknownLearningTarget.
func (g *Generator) Sentence(targets []string) (string, error) {
	resolved, err := g.index.ResolveTargets(targets)
	if err != nil {
		return "", err
	}
	startWithQuestion := hasQuestionTarget(resolved) || g.coin()
	return g.build(startWithQuestion, resolved)
}

// build runs the state machine: optional question word, pronoun, finite verb
// agreeing with the pronoun, optional trailing infinitive.
func (g *Generator) build(startWithQuestion bool, targets []models.Word) (string, error) {
	state := nextPart{kind: partPronoun}
	if startWithQuestion {
		state = nextPart{kind: partQuestion}
	}

	var parts []string
	for state.kind != partDone {
		switch state.kind {
		case partQuestion:
			q, err := g.pickQuestionWord(targets)
			if err != nil {
				return "", fmt.Errorf("question word: %w", err)
			}
			parts = append(parts, q.Surface())
			state = nextPart{kind: partPronoun}

		case partPronoun:
			p, err := g.pickPronoun(targets)
			if err != nil {
				return "", fmt.Errorf("pronoun: %w", err)
			}
			parts = append(parts, p.Surface())
			state = nextPart{kind: partVerb, form: grammar.PronounForm(p)}

		case partVerb:
			if state.form.Person == models.PersonInfinitive {
				v, err := g.pickChainVerb(targets)
				if err != nil {
					return "", fmt.Errorf("infinitive verb: %w", err)
				}
				text, err := grammar.VerbText(v, state.form)
				if err != nil {
					return "", err
				}
				parts = append(parts, text)
				state = nextPart{kind: partDone}
				break
			}

			v, err := g.pickFiniteVerb(targets)
			if err != nil {
				return "", fmt.Errorf("finite verb: %w", err)
			}
			text, err := grammar.VerbText(v, state.form)
			if err != nil {
				return "", err
			}
			parts = append(parts, text)
			if v.ExpectInfinitive {
				state = nextPart{kind: partVerb, form: models.GrammaticalForm{Person: models.PersonInfinitive}}
			} else {
				state = nextPart{kind: partDone}
			}
		}
	}

	parts[0] = capitalizeFirst(parts[0])
	return strings.Join(parts, " "), nil
}

// capitalizeFirst upper-cases the first rune only; the rest of the token is
// already lower-cased by the pickers
func capitalizeFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
