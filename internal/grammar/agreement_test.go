package grammar

import (
	"errors"
	"testing"

	"github.com/example/frazbot/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestPronounFormTable(t *testing.T) {
	cases := []struct {
		name models.PronounName
		form models.GrammaticalForm
	}{
		{models.PronounI, models.GrammaticalForm{Person: models.PersonFirst, Number: models.NumberSingular}},
		{models.PronounYou, models.GrammaticalForm{Person: models.PersonSecond, Number: models.NumberSingular}},
		{models.PronounHe, models.GrammaticalForm{Person: models.PersonThird, Number: models.NumberSingular}},
		{models.PronounShe, models.GrammaticalForm{Person: models.PersonThird, Number: models.NumberSingular}},
		{models.PronounWe, models.GrammaticalForm{Person: models.PersonFirst, Number: models.NumberPlural}},
		{models.PronounYouPlural, models.GrammaticalForm{Person: models.PersonSecond, Number: models.NumberPlural}},
		{models.PronounThey, models.GrammaticalForm{Person: models.PersonThird, Number: models.NumberPlural}},
	}
	for _, c := range cases {
		p := models.PronounWord{Name: c.name}
		assert.Equal(t, c.form, PronounForm(p), "pronoun %s", c.name)
		// The mapping is pure: a second call yields the same form
		assert.Equal(t, PronounForm(p), PronounForm(p))
	}
}

func TestPronounHeSheShareForm(t *testing.T) {
	he := PronounForm(models.PronounWord{Name: models.PronounHe})
	she := PronounForm(models.PronounWord{Name: models.PronounShe})
	assert.Equal(t, he, she)
}

func testVerb() models.VerbWord {
	return models.VerbWord{
		Forms: models.VerbForms{
			Infinitive: "Любить",
			Conjugations: []models.Conjugation{
				{Singular: "люблю", Plural: "любим"},
				{Singular: "любишь", Plural: "любите"},
				{Singular: "любит", Plural: "любят"},
			},
		},
	}
}

func TestVerbTextInfinitive(t *testing.T) {
	ans, err := VerbText(testVerb(), models.GrammaticalForm{Person: models.PersonInfinitive})
	assert.NoError(t, err)
	assert.Equal(t, "любить", ans)
}

func TestVerbTextFinite(t *testing.T) {
	verb := testVerb()

	ans, err := VerbText(verb, models.GrammaticalForm{Person: models.PersonFirst, Number: models.NumberSingular})
	assert.NoError(t, err)
	assert.Equal(t, "люблю", ans)

	ans, err = VerbText(verb, models.GrammaticalForm{Person: models.PersonSecond, Number: models.NumberPlural})
	assert.NoError(t, err)
	assert.Equal(t, "любите", ans)

	ans, err = VerbText(verb, models.GrammaticalForm{Person: models.PersonThird, Number: models.NumberPlural})
	assert.NoError(t, err)
	assert.Equal(t, "любят", ans)
}

func TestVerbTextIdempotent(t *testing.T) {
	verb := testVerb()
	form := models.GrammaticalForm{Person: models.PersonThird, Number: models.NumberSingular}

	first, err := VerbText(verb, form)
	assert.NoError(t, err)
	second, err := VerbText(verb, form)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestVerbTextLowercases(t *testing.T) {
	verb := models.VerbWord{
		Forms: models.VerbForms{
			Infinitive: "ХОТЕТЬ",
			Conjugations: []models.Conjugation{
				{Singular: "ХОЧУ", Plural: "хотим"},
				{Singular: "хочешь", Plural: "хотите"},
				{Singular: "хочет", Plural: "хотят"},
			},
		},
	}

	ans, err := VerbText(verb, models.GrammaticalForm{Person: models.PersonInfinitive})
	assert.NoError(t, err)
	assert.Equal(t, "хотеть", ans)

	ans, err = VerbText(verb, models.GrammaticalForm{Person: models.PersonFirst, Number: models.NumberSingular})
	assert.NoError(t, err)
	assert.Equal(t, "хочу", ans)
}

func TestVerbTextMalformedTable(t *testing.T) {
	verb := models.VerbWord{
		Forms: models.VerbForms{
			Infinitive: "мочь",
			Conjugations: []models.Conjugation{
				{Singular: "могу", Plural: "можем"},
			},
		},
	}

	_, err := VerbText(verb, models.GrammaticalForm{Person: models.PersonThird, Number: models.NumberSingular})
	assert.True(t, errors.Is(err, ErrMalformedConjugation))

	// The infinitive never touches the conjugation table
	ans, err := VerbText(verb, models.GrammaticalForm{Person: models.PersonInfinitive})
	assert.NoError(t, err)
	assert.Equal(t, "мочь", ans)
}
