package config

import (
	"math/rand"
	"testing"

	"github.com/example/frazbot/pkg/models"
	"github.com/stretchr/testify/assert"
)

const sampleConfig = `{
	"words": {
		"questionWords": [
			{"text": "Кто"},
			{"text": "Когда"}
		],
		"verbs": [
			{
				"forms": {
					"infinitive": "любить",
					"conjugations": [
						{"singular": "люблю", "plural": "любим"},
						{"singular": "любишь", "plural": "любите"},
						{"singular": "любит", "plural": "любят"}
					]
				},
				"expectInfinitive": false,
				"questions": ["Whom"]
			},
			{
				"forms": {
					"infinitive": "хотеть",
					"conjugations": [
						{"singular": "хочу", "plural": "хотим"},
						{"singular": "хочешь", "plural": "хотите"},
						{"singular": "хочет", "plural": "хотят"}
					]
				},
				"expectInfinitive": true,
				"questions": []
			}
		]
	},
	"learn": {
		"words": ["Я", "Хотеть"]
	}
}`

func TestParseSampleConfig(t *testing.T) {
	vocab, learn, err := Parse([]byte(sampleConfig))
	assert.NoError(t, err)

	assert.Len(t, vocab.QuestionWords, 2)
	assert.Len(t, vocab.Pronouns, 7, "the pronoun set is fixed")
	assert.Len(t, vocab.Verbs, 2)

	assert.Equal(t, "любить", vocab.Verbs[0].Surface())
	assert.False(t, vocab.Verbs[0].ExpectInfinitive)
	assert.Equal(t, []models.VerbQuestion{models.VerbQuestionWhom}, vocab.Verbs[0].Questions)
	assert.True(t, vocab.Verbs[1].ExpectInfinitive)

	// Learning targets come out lower-cased
	assert.Equal(t, []string{"я", "хотеть"}, learn)
}

func TestParseRejectsShortConjugationTable(t *testing.T) {
	data := `{
		"words": {
			"verbs": [
				{
					"forms": {
						"infinitive": "мочь",
						"conjugations": [{"singular": "могу", "plural": "можем"}]
					}
				}
			]
		}
	}`
	_, _, err := Parse([]byte(data))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 3 conjugations")
}

func TestParseRejectsUnknownQuestionTag(t *testing.T) {
	data := `{
		"words": {
			"verbs": [
				{
					"forms": {
						"infinitive": "любить",
						"conjugations": [
							{"singular": "люблю", "plural": "любим"},
							{"singular": "любишь", "plural": "любите"},
							{"singular": "любит", "plural": "любят"}
						]
					},
					"questions": ["HowMuch"]
				}
			]
		}
	}`
	_, _, err := Parse([]byte(data))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown question tag")
}

func TestParseRejectsDuplicateSurfaceText(t *testing.T) {
	// "Я" collides with the fixed pronoun
	data := `{
		"words": {
			"questionWords": [{"text": "я"}]
		}
	}`
	_, _, err := Parse([]byte(data))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate word text")
}

func TestParseRejectsEmptyInfinitive(t *testing.T) {
	data := `{
		"words": {
			"verbs": [{"forms": {"infinitive": " "}}]
		}
	}`
	_, _, err := Parse([]byte(data))
	assert.Error(t, err)
}

func TestValidateAcceptsFixedPronouns(t *testing.T) {
	assert.NoError(t, Validate(models.Vocabulary{Pronouns: models.AllPronouns()}))
}

func TestSampleTargetsSmallList(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	ans := SampleTargets(rng, []string{"я"}, MaxTargetsPerDrill)
	assert.Equal(t, []string{"я"}, ans)

	ans = SampleTargets(rng, nil, MaxTargetsPerDrill)
	assert.Empty(t, ans)
}

func TestSampleTargetsWithoutReplacement(t *testing.T) {
	targets := []string{"я", "хотеть", "любить", "кто"}

	for seed := int64(0); seed < 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		ans := SampleTargets(rng, targets, MaxTargetsPerDrill)

		assert.Len(t, ans, MaxTargetsPerDrill)
		assert.NotEqual(t, ans[0], ans[1], "sampling is without replacement")
		assert.Contains(t, targets, ans[0])
		assert.Contains(t, targets, ans[1])
	}
}

func TestSampleTargetsDoesNotMutateInput(t *testing.T) {
	targets := []string{"я", "хотеть", "любить"}
	rng := rand.New(rand.NewSource(2))

	SampleTargets(rng, targets, 2)
	assert.Equal(t, []string{"я", "хотеть", "любить"}, targets)
}
