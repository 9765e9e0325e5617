package database

import (
	"fmt"
	"strings"

	"github.com/example/frazbot/pkg/models"
)

// VocabularyRepository handles database operations for the word inventory
type VocabularyRepository struct{}

// NewVocabularyRepository creates a new repository instance
func NewVocabularyRepository() *VocabularyRepository {
	return &VocabularyRepository{}
}

// GetVocabulary loads the full vocabulary: question words and verbs from the
// database plus the fixed pronoun set.
func (r *VocabularyRepository) GetVocabulary() (models.Vocabulary, error) {
	vocab := models.Vocabulary{
		Pronouns: models.AllPronouns(),
	}

	questions, err := r.GetQuestionWords()
	if err != nil {
		return models.Vocabulary{}, err
	}
	vocab.QuestionWords = questions

	verbs, err := r.GetVerbs()
	if err != nil {
		return models.Vocabulary{}, err
	}
	vocab.Verbs = verbs

	return vocab, nil
}

// GetQuestionWords returns all question words
func (r *VocabularyRepository) GetQuestionWords() ([]models.QuestionWord, error) {
	var words []models.QuestionWord
	err := DB.Select(&words, "SELECT id, text FROM question_words ORDER BY text")
	if err != nil {
		return nil, fmt.Errorf("failed to get question words: %v", err)
	}
	return words, nil
}

// verbRow is the flat table shape of a verb
type verbRow struct {
	ID               int64  `db:"id"`
	Infinitive       string `db:"infinitive"`
	FirstSingular    string `db:"first_singular"`
	FirstPlural      string `db:"first_plural"`
	SecondSingular   string `db:"second_singular"`
	SecondPlural     string `db:"second_plural"`
	ThirdSingular    string `db:"third_singular"`
	ThirdPlural      string `db:"third_plural"`
	ExpectInfinitive bool   `db:"expect_infinitive"`
	Questions        string `db:"questions"`
}

func (row verbRow) toModel() models.VerbWord {
	verb := models.VerbWord{
		ID: row.ID,
		Forms: models.VerbForms{
			Infinitive: row.Infinitive,
			Conjugations: []models.Conjugation{
				{Singular: row.FirstSingular, Plural: row.FirstPlural},
				{Singular: row.SecondSingular, Plural: row.SecondPlural},
				{Singular: row.ThirdSingular, Plural: row.ThirdPlural},
			},
		},
		ExpectInfinitive: row.ExpectInfinitive,
	}
	for _, tag := range strings.Split(row.Questions, ",") {
		if q, ok := models.ParseVerbQuestion(tag); ok {
			verb.Questions = append(verb.Questions, q)
		}
	}
	return verb
}

// GetVerbs returns all verbs with their conjugation tables
func (r *VocabularyRepository) GetVerbs() ([]models.VerbWord, error) {
	var rows []verbRow
	err := DB.Select(&rows, `
		SELECT id, infinitive, first_singular, first_plural, second_singular,
		       second_plural, third_singular, third_plural, expect_infinitive, questions
		FROM verbs ORDER BY infinitive`)
	if err != nil {
		return nil, fmt.Errorf("failed to get verbs: %v", err)
	}

	verbs := make([]models.VerbWord, 0, len(rows))
	for _, row := range rows {
		verbs = append(verbs, row.toModel())
	}
	return verbs, nil
}

// GetVerbByInfinitive returns a verb by its infinitive text
func (r *VocabularyRepository) GetVerbByInfinitive(infinitive string) (*models.VerbWord, error) {
	query := `
		SELECT id, infinitive, first_singular, first_plural, second_singular,
		       second_plural, third_singular, third_plural, expect_infinitive, questions
		FROM verbs WHERE LOWER(infinitive) = LOWER(?)`

	// Replace ? with $ for PostgreSQL if needed
	if DB.DriverName() == "postgres" {
		query = strings.Replace(query, "?", "$1", -1)
	}

	var row verbRow
	if err := DB.Get(&row, query, infinitive); err != nil {
		return nil, fmt.Errorf("failed to get verb by infinitive: %v", err)
	}
	verb := row.toModel()
	return &verb, nil
}

// CreateQuestionWord inserts a question word, ignoring duplicates
func (r *VocabularyRepository) CreateQuestionWord(word *models.QuestionWord) error {
	var query string

	if DB.DriverName() == "postgres" {
		query = `
			INSERT INTO question_words (text) VALUES ($1)
			ON CONFLICT (text) DO NOTHING
		`
	} else {
		query = `INSERT OR IGNORE INTO question_words (text) VALUES (?)`
	}

	if _, err := DB.Exec(query, word.Text); err != nil {
		return fmt.Errorf("failed to create question word: %v", err)
	}
	return nil
}

// CreateVerb inserts a new verb with its full conjugation table
func (r *VocabularyRepository) CreateVerb(verb *models.VerbWord) error {
	if len(verb.Forms.Conjugations) != 3 {
		return fmt.Errorf("verb %q must have exactly 3 conjugations", verb.Forms.Infinitive)
	}

	tags := make([]string, 0, len(verb.Questions))
	for _, q := range verb.Questions {
		tags = append(tags, string(q))
	}

	c := verb.Forms.Conjugations
	var query string

	if DB.DriverName() == "postgres" {
		query = `
			INSERT INTO verbs (infinitive, first_singular, first_plural, second_singular,
			                   second_plural, third_singular, third_plural, expect_infinitive, questions)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`
		return DB.QueryRow(
			query,
			verb.Forms.Infinitive,
			c[0].Singular, c[0].Plural,
			c[1].Singular, c[1].Plural,
			c[2].Singular, c[2].Plural,
			verb.ExpectInfinitive,
			strings.Join(tags, ","),
		).Scan(&verb.ID)
	}

	// Для SQLite (без RETURNING)
	query = `
		INSERT INTO verbs (infinitive, first_singular, first_plural, second_singular,
		                   second_plural, third_singular, third_plural, expect_infinitive, questions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := DB.Exec(
		query,
		verb.Forms.Infinitive,
		c[0].Singular, c[0].Plural,
		c[1].Singular, c[1].Plural,
		c[2].Singular, c[2].Plural,
		verb.ExpectInfinitive,
		strings.Join(tags, ","),
	)
	if err != nil {
		return fmt.Errorf("failed to create verb: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	verb.ID = id

	return nil
}

// UpdateVerb modifies an existing verb
func (r *VocabularyRepository) UpdateVerb(verb *models.VerbWord) error {
	if len(verb.Forms.Conjugations) != 3 {
		return fmt.Errorf("verb %q must have exactly 3 conjugations", verb.Forms.Infinitive)
	}

	tags := make([]string, 0, len(verb.Questions))
	for _, q := range verb.Questions {
		tags = append(tags, string(q))
	}

	c := verb.Forms.Conjugations
	query := `
		UPDATE verbs SET
			first_singular = ?, first_plural = ?,
			second_singular = ?, second_plural = ?,
			third_singular = ?, third_plural = ?,
			expect_infinitive = ?, questions = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	if DB.DriverName() == "postgres" {
		query = `
			UPDATE verbs SET
				first_singular = $1, first_plural = $2,
				second_singular = $3, second_plural = $4,
				third_singular = $5, third_plural = $6,
				expect_infinitive = $7, questions = $8,
				updated_at = NOW()
			WHERE id = $9
		`
	}

	_, err := DB.Exec(
		query,
		c[0].Singular, c[0].Plural,
		c[1].Singular, c[1].Plural,
		c[2].Singular, c[2].Plural,
		verb.ExpectInfinitive,
		strings.Join(tags, ","),
		verb.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update verb: %v", err)
	}
	return nil
}

// DeleteVerb removes a verb
func (r *VocabularyRepository) DeleteVerb(id int64) error {
	query := "DELETE FROM verbs WHERE id = ?"
	if DB.DriverName() == "postgres" {
		query = "DELETE FROM verbs WHERE id = $1"
	}

	if _, err := DB.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete verb: %v", err)
	}
	return nil
}
