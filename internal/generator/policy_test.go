package generator

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/example/frazbot/internal/grammar"
	"github.com/example/frazbot/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestRandomFromEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := randomFrom(rng, []models.VerbWord{})
	assert.True(t, errors.Is(err, grammar.ErrEmptyVocabulary))
}

func TestRandomFromSingle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ans, err := randomFrom(rng, []string{"любить"})
	assert.NoError(t, err)
	assert.Equal(t, "любить", ans)
}

func TestTargetedOrAnyPrefersTargeted(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := []string{"раз", "два", "три"}
	targeted := []string{"цель"}

	for i := 0; i < 50; i++ {
		ans, err := targetedOrAny(rng, targeted, pool)
		assert.NoError(t, err)
		assert.Equal(t, "цель", ans)
	}
}

func TestTargetedOrAnyFallsBack(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := []string{"раз", "два"}

	for i := 0; i < 50; i++ {
		ans, err := targetedOrAny(rng, nil, pool)
		assert.NoError(t, err)
		assert.Contains(t, pool, ans)
	}
}

func TestPickFiniteVerbPrefersTargetedGoverning(t *testing.T) {
	vocab := models.Vocabulary{
		Pronouns: models.AllPronouns(),
		Verbs:    []models.VerbWord{verbLyubit(), verbKhotet()},
	}

	// A targeted verb that governs an infinitive wins without a coin flip
	for seed := int64(0); seed < 30; seed++ {
		g := newTestGenerator(vocab, seed)
		v, err := g.pickFiniteVerb(resolve(t, g, "хотеть"))
		assert.NoError(t, err)
		assert.Equal(t, "хотеть", v.Surface())
	}
}

func TestPickFiniteVerbCoinFallback(t *testing.T) {
	// The targeted verb has no infinitive flag: a won coin keeps it, a lost
	// coin picks an infinitive-governing verb from the full vocabulary
	vocab := models.Vocabulary{
		Pronouns: models.AllPronouns(),
		Verbs:    []models.VerbWord{verbLyubit(), verbKhotet()},
	}
	g := newTestGenerator(vocab, 7)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		v, err := g.pickFiniteVerb(resolve(t, g, "любить"))
		assert.NoError(t, err)
		seen[v.Surface()] = true
	}

	assert.True(t, seen["любить"], "targeted verb must be reachable")
	assert.True(t, seen["хотеть"], "governing fallback must be reachable")
	assert.Len(t, seen, 2)
}

func TestPickFiniteVerbNoTargets(t *testing.T) {
	vocab := models.Vocabulary{
		Pronouns: models.AllPronouns(),
		Verbs:    []models.VerbWord{verbLyubit(), verbKhotet()},
	}
	g := newTestGenerator(vocab, 3)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		v, err := g.pickFiniteVerb(nil)
		assert.NoError(t, err)
		seen[v.Surface()] = true
	}

	// Without targets the pick is uniform over the whole verb vocabulary
	assert.Len(t, seen, 2)
}

func TestPickChainVerbNeverGoverning(t *testing.T) {
	vocab := models.Vocabulary{
		Pronouns: models.AllPronouns(),
		Verbs:    []models.VerbWord{verbLyubit(), verbKhotet()},
	}
	g := newTestGenerator(vocab, 5)

	for i := 0; i < 100; i++ {
		v, err := g.pickChainVerb(nil)
		assert.NoError(t, err)
		assert.False(t, v.ExpectInfinitive)
	}
}

func TestPickChainVerbPrefersTargeted(t *testing.T) {
	second := verbLyubit()
	second.Forms.Infinitive = "читать"

	vocab := models.Vocabulary{
		Pronouns: models.AllPronouns(),
		Verbs:    []models.VerbWord{verbLyubit(), second, verbKhotet()},
	}

	for seed := int64(0); seed < 30; seed++ {
		g := newTestGenerator(vocab, seed)
		v, err := g.pickChainVerb(resolve(t, g, "читать"))
		assert.NoError(t, err)
		assert.Equal(t, "читать", v.Surface())
	}
}

func TestPickChainVerbIgnoresGoverningTarget(t *testing.T) {
	vocab := models.Vocabulary{
		Pronouns: models.AllPronouns(),
		Verbs:    []models.VerbWord{verbLyubit(), verbKhotet()},
	}

	// хотеть is targeted but governs an infinitive, so the chain slot skips
	// it and falls back to the plain verbs of the full vocabulary
	for seed := int64(0); seed < 30; seed++ {
		g := newTestGenerator(vocab, seed)
		v, err := g.pickChainVerb(resolve(t, g, "хотеть"))
		assert.NoError(t, err)
		assert.Equal(t, "любить", v.Surface())
	}
}

func TestPickQuestionWordTargeted(t *testing.T) {
	vocab := models.Vocabulary{
		QuestionWords: []models.QuestionWord{{Text: "Кто"}, {Text: "Когда"}},
		Pronouns:      models.AllPronouns(),
		Verbs:         []models.VerbWord{verbLyubit()},
	}

	for seed := int64(0); seed < 30; seed++ {
		g := newTestGenerator(vocab, seed)
		q, err := g.pickQuestionWord(resolve(t, g, "когда"))
		assert.NoError(t, err)
		assert.Equal(t, "когда", q.Surface())
	}
}

func TestHasQuestionTarget(t *testing.T) {
	vocab := models.Vocabulary{
		QuestionWords: []models.QuestionWord{{Text: "Кто"}},
		Pronouns:      models.AllPronouns(),
		Verbs:         []models.VerbWord{verbLyubit()},
	}
	g := newTestGenerator(vocab, 1)

	assert.True(t, hasQuestionTarget(resolve(t, g, "кто", "я")))
	assert.False(t, hasQuestionTarget(resolve(t, g, "я", "любить")))
	assert.False(t, hasQuestionTarget(nil))
}
