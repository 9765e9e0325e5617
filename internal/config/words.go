package config

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/example/frazbot/pkg/models"
)

// MaxTargetsPerDrill limits how many learning targets a single sentence is
// biased toward; more than a couple and the bias stops meaning anything
const MaxTargetsPerDrill = 2

// wordsFile mirrors the vocabulary config file layout
type wordsFile struct {
	Words struct {
		QuestionWords []questionEntry `json:"questionWords"`
		Verbs         []verbEntry     `json:"verbs"`
	} `json:"words"`
	Learn struct {
		Words []string `json:"words"`
	} `json:"learn"`
}

type questionEntry struct {
	Text string `json:"text"`
}

type verbEntry struct {
	Forms            models.VerbForms `json:"forms"`
	ExpectInfinitive bool             `json:"expectInfinitive"`
	Questions        []string         `json:"questions"`
}

// Load reads a vocabulary config file and returns the vocabulary (with the
// fixed pronoun set added) and the lower-cased learning-target words.
func Load(path string) (models.Vocabulary, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Vocabulary{}, nil, fmt.Errorf("failed to read words config: %v", err)
	}
	return Parse(data)
}

// Parse builds a validated vocabulary from raw config JSON
func Parse(data []byte) (models.Vocabulary, []string, error) {
	var file wordsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return models.Vocabulary{}, nil, fmt.Errorf("failed to parse words config: %v", err)
	}

	vocab := models.Vocabulary{
		Pronouns: models.AllPronouns(),
	}

	for _, q := range file.Words.QuestionWords {
		if strings.TrimSpace(q.Text) == "" {
			return models.Vocabulary{}, nil, fmt.Errorf("question word with empty text")
		}
		vocab.QuestionWords = append(vocab.QuestionWords, models.QuestionWord{Text: q.Text})
	}

	for _, v := range file.Words.Verbs {
		verb, err := buildVerb(v)
		if err != nil {
			return models.Vocabulary{}, nil, err
		}
		vocab.Verbs = append(vocab.Verbs, verb)
	}

	if err := Validate(vocab); err != nil {
		return models.Vocabulary{}, nil, err
	}

	learn := make([]string, 0, len(file.Learn.Words))
	for _, w := range file.Learn.Words {
		learn = append(learn, strings.ToLower(w))
	}

	return vocab, learn, nil
}

func buildVerb(entry verbEntry) (models.VerbWord, error) {
	if strings.TrimSpace(entry.Forms.Infinitive) == "" {
		return models.VerbWord{}, fmt.Errorf("verb with empty infinitive")
	}
	if len(entry.Forms.Conjugations) != 3 {
		return models.VerbWord{}, fmt.Errorf("verb %q must have exactly 3 conjugations, got %d",
			entry.Forms.Infinitive, len(entry.Forms.Conjugations))
	}

	questions := make([]models.VerbQuestion, 0, len(entry.Questions))
	for _, q := range entry.Questions {
		tag, ok := models.ParseVerbQuestion(q)
		if !ok {
			return models.VerbWord{}, fmt.Errorf("verb %q has unknown question tag %q",
				entry.Forms.Infinitive, q)
		}
		questions = append(questions, tag)
	}

	return models.VerbWord{
		Forms:            entry.Forms,
		ExpectInfinitive: entry.ExpectInfinitive,
		Questions:        questions,
	}, nil
}

// Validate checks the lexical-index precondition: every word's lower-cased
// surface text must be unique across the whole vocabulary.
func Validate(vocab models.Vocabulary) error {
	seen := make(map[string]struct{})
	check := func(w models.Word) error {
		text := w.Surface()
		if _, dup := seen[text]; dup {
			return fmt.Errorf("duplicate word text %q in vocabulary", text)
		}
		seen[text] = struct{}{}
		return nil
	}
	for _, q := range vocab.QuestionWords {
		if err := check(q); err != nil {
			return err
		}
	}
	for _, p := range vocab.Pronouns {
		if err := check(p); err != nil {
			return err
		}
	}
	for _, v := range vocab.Verbs {
		if err := check(v); err != nil {
			return err
		}
	}
	return nil
}

// SampleTargets picks at most n learning targets without replacement.
// The generator itself never subsamples; this reduction happens on the
// caller's side of every drill.
func SampleTargets(rng *rand.Rand, targets []string, n int) []string {
	if len(targets) <= n {
		out := make([]string, len(targets))
		copy(out, targets)
		return out
	}
	out := make([]string, 0, n)
	for _, i := range rng.Perm(len(targets))[:n] {
		out = append(out, targets[i])
	}
	return out
}
