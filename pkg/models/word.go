package models

import "strings"

// WordType classifies every vocabulary entry
type WordType int

const (
	// WordTypeQuestion is a question word opening a sentence
	WordTypeQuestion WordType = iota
	// WordTypePronoun is a personal pronoun
	WordTypePronoun
	// WordTypeVerb is a verb with a full conjugation table
	WordTypeVerb
)

// String returns a human-readable name of the word type
func (t WordType) String() string {
	switch t {
	case WordTypeQuestion:
		return "question"
	case WordTypePronoun:
		return "pronoun"
	case WordTypeVerb:
		return "verb"
	}
	return "unknown"
}

// Person is the grammatical person of a verb form
type Person int

const (
	PersonFirst Person = iota
	PersonSecond
	PersonThird
	// PersonInfinitive marks the uninflected form; Number is ignored for it
	PersonInfinitive
)

// Number is the grammatical number of a verb or pronoun form
type Number int

const (
	NumberSingular Number = iota
	NumberPlural
)

// GrammaticalForm selects one surface rendering of a verb.
// Number is irrelevant when Person is PersonInfinitive.
type GrammaticalForm struct {
	Person Person
	Number Number
}

// Word is any vocabulary entry the generator can pick
type Word interface {
	// Type returns the word's classification
	Type() WordType
	// Surface returns the word's lower-cased surface text
	Surface() string
}

// QuestionWord represents a question word (кто, что, когда...)
type QuestionWord struct {
	ID   int64  `json:"id" db:"id"`
	Text string `json:"text" db:"text"`
}

// Type implements Word
func (q QuestionWord) Type() WordType { return WordTypeQuestion }

// Surface implements Word
func (q QuestionWord) Surface() string { return strings.ToLower(q.Text) }

// PronounName identifies one of the 7 fixed personal pronouns
type PronounName string

const (
	PronounI         PronounName = "Я"
	PronounYou       PronounName = "Ты"
	PronounHe        PronounName = "Он"
	PronounShe       PronounName = "Она"
	PronounWe        PronounName = "Мы"
	PronounYouPlural PronounName = "Вы"
	PronounThey      PronounName = "Они"
)

// PronounWord represents a personal pronoun. The pronoun set is fixed and
// never configured; see AllPronouns.
type PronounWord struct {
	Name PronounName `json:"pronounName"`
}

// Type implements Word
func (p PronounWord) Type() WordType { return WordTypePronoun }

// Surface implements Word
func (p PronounWord) Surface() string { return strings.ToLower(string(p.Name)) }

// AllPronouns returns the fixed pronoun vocabulary in canonical order
func AllPronouns() []PronounWord {
	return []PronounWord{
		{Name: PronounI},
		{Name: PronounYou},
		{Name: PronounHe},
		{Name: PronounShe},
		{Name: PronounWe},
		{Name: PronounYouPlural},
		{Name: PronounThey},
	}
}

// VerbQuestion is a semantic case-role tag a verb governs (кому, кого...).
// Tags are vocabulary metadata only; sentence generation never consults them.
type VerbQuestion string

const (
	VerbQuestionToWhom    VerbQuestion = "ToWhom"
	VerbQuestionWhom      VerbQuestion = "Whom"
	VerbQuestionWithWhom  VerbQuestion = "WithWhom"
	VerbQuestionAboutWhom VerbQuestion = "AboutWhom"
)

// ParseVerbQuestion converts a tag name into a VerbQuestion
func ParseVerbQuestion(s string) (VerbQuestion, bool) {
	switch VerbQuestion(strings.TrimSpace(s)) {
	case VerbQuestionToWhom:
		return VerbQuestionToWhom, true
	case VerbQuestionWhom:
		return VerbQuestionWhom, true
	case VerbQuestionWithWhom:
		return VerbQuestionWithWhom, true
	case VerbQuestionAboutWhom:
		return VerbQuestionAboutWhom, true
	}
	return "", false
}

// Conjugation holds the singular and plural surface forms for one person
type Conjugation struct {
	Singular string `json:"singular"`
	Plural   string `json:"plural"`
}

// VerbForms holds the infinitive and the per-person conjugation table.
// Conjugations is indexed by Person (first, second, third) and must contain
// exactly 3 entries in a valid vocabulary.
type VerbForms struct {
	Infinitive   string        `json:"infinitive"`
	Conjugations []Conjugation `json:"conjugations"`
}

// VerbWord represents a verb with its full conjugation table
type VerbWord struct {
	ID    int64     `json:"id"`
	Forms VerbForms `json:"forms"`
	// ExpectInfinitive marks verbs whose finite form must be followed by a
	// second verb in infinitive form (хотеть, мочь...)
	ExpectInfinitive bool           `json:"expectInfinitive"`
	Questions        []VerbQuestion `json:"questions"`
}

// Type implements Word
func (v VerbWord) Type() WordType { return WordTypeVerb }

// Surface implements Word
func (v VerbWord) Surface() string { return strings.ToLower(v.Forms.Infinitive) }

// Vocabulary is the full word inventory available to the generator.
// It is built once per run and read-only afterwards. Lower-cased surface
// text must be unique across all three collections.
type Vocabulary struct {
	QuestionWords []QuestionWord
	Pronouns      []PronounWord
	Verbs         []VerbWord
}
