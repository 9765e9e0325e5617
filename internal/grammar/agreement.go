package grammar

import (
	"fmt"
	"strings"

	"github.com/example/frazbot/pkg/models"
)

// PronounForm maps a pronoun to its grammatical form. The mapping is a fixed
// table: он and она share the same third-person singular form.
func PronounForm(p models.PronounWord) models.GrammaticalForm {
	switch p.Name {
	case models.PronounI:
		return models.GrammaticalForm{Person: models.PersonFirst, Number: models.NumberSingular}
	case models.PronounYou:
		return models.GrammaticalForm{Person: models.PersonSecond, Number: models.NumberSingular}
	case models.PronounHe, models.PronounShe:
		return models.GrammaticalForm{Person: models.PersonThird, Number: models.NumberSingular}
	case models.PronounWe:
		return models.GrammaticalForm{Person: models.PersonFirst, Number: models.NumberPlural}
	case models.PronounYouPlural:
		return models.GrammaticalForm{Person: models.PersonSecond, Number: models.NumberPlural}
	case models.PronounThey:
		return models.GrammaticalForm{Person: models.PersonThird, Number: models.NumberPlural}
	}
	// Unreachable with the fixed pronoun set; default keeps the function total
	return models.GrammaticalForm{Person: models.PersonThird, Number: models.NumberSingular}
}

// VerbText renders a verb's lower-cased surface text for a grammatical form.
// The infinitive form ignores Number. Returns ErrMalformedConjugation when
// the conjugation table has no entry for the requested person.
func VerbText(verb models.VerbWord, form models.GrammaticalForm) (string, error) {
	if form.Person == models.PersonInfinitive {
		return strings.ToLower(verb.Forms.Infinitive), nil
	}
	idx := int(form.Person)
	if idx < 0 || idx >= len(verb.Forms.Conjugations) {
		return "", fmt.Errorf("%w: verb %q has no conjugation for person %d",
			ErrMalformedConjugation, verb.Forms.Infinitive, idx)
	}
	conj := verb.Forms.Conjugations[idx]
	if form.Number == models.NumberSingular {
		return strings.ToLower(conj.Singular), nil
	}
	return strings.ToLower(conj.Plural), nil
}
