package excel

import (
	"testing"

	"github.com/example/frazbot/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestColumnToIndex(t *testing.T) {
	assert.Equal(t, 0, columnToIndex("A"))
	assert.Equal(t, 7, columnToIndex("H"))
	assert.Equal(t, 25, columnToIndex("Z"))
	assert.Equal(t, 26, columnToIndex("AA"))
	assert.Equal(t, 0, columnToIndex("a"))
}

func TestParseFlag(t *testing.T) {
	assert.True(t, parseFlag("1"))
	assert.True(t, parseFlag("true"))
	assert.True(t, parseFlag("Да"))
	assert.True(t, parseFlag(" yes "))
	assert.True(t, parseFlag("+"))

	assert.False(t, parseFlag(""))
	assert.False(t, parseFlag("0"))
	assert.False(t, parseFlag("нет"))
}

func TestCellValue(t *testing.T) {
	row := []string{" любить ", "люблю"}
	assert.Equal(t, "любить", cellValue(row, "A"))
	assert.Equal(t, "люблю", cellValue(row, "B"))
	assert.Equal(t, "", cellValue(row, "C"), "out-of-range cells are empty")
	assert.Equal(t, "", cellValue(row, ""))
}

func TestRowToVerb(t *testing.T) {
	row := []string{"хотеть", "хочу", "хотим", "хочешь", "хотите", "хочет", "хотят", "да", "Whom, ToWhom"}

	verb, err := rowToVerb(row, DefaultImportConfig())
	assert.NoError(t, err)
	assert.Equal(t, "хотеть", verb.Forms.Infinitive)
	assert.Len(t, verb.Forms.Conjugations, 3)
	assert.Equal(t, "хочу", verb.Forms.Conjugations[0].Singular)
	assert.Equal(t, "хотите", verb.Forms.Conjugations[1].Plural)
	assert.Equal(t, "хотят", verb.Forms.Conjugations[2].Plural)
	assert.True(t, verb.ExpectInfinitive)
	assert.Equal(t, []models.VerbQuestion{models.VerbQuestionWhom, models.VerbQuestionToWhom}, verb.Questions)
}

func TestRowToVerbIncompleteConjugation(t *testing.T) {
	row := []string{"хотеть", "хочу", "", "хочешь", "хотите", "хочет", "хотят"}

	_, err := rowToVerb(row, DefaultImportConfig())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete conjugation")
}

func TestRowToVerbUnknownTag(t *testing.T) {
	row := []string{"хотеть", "хочу", "хотим", "хочешь", "хотите", "хочет", "хотят", "", "HowMuch"}

	_, err := rowToVerb(row, DefaultImportConfig())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown question tag")
}

func TestIsQuestionRow(t *testing.T) {
	config := DefaultImportConfig()

	assert.True(t, isQuestionRow([]string{"Кто"}, config))
	assert.True(t, isQuestionRow([]string{"Когда", "", "", "", "", "", ""}, config))
	assert.False(t, isQuestionRow([]string{"хотеть", "хочу", "хотим", "хочешь", "хотите", "хочет", "хотят"}, config))
}
