package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/frazbot/internal/database"
	"github.com/example/frazbot/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ImportConfig defines the import configuration. A verb row carries the
// infinitive, six conjugation cells (person by number), the infinitive-chain
// flag and the case-question tags. A row with only the first cell filled is
// treated as a question word.
type ImportConfig struct {
	FilePath         string // Path to the Excel or CSV file
	InfinitiveColumn string // Column with the infinitive
	FirstSgColumn    string // Column with the 1st person singular form
	FirstPlColumn    string // Column with the 1st person plural form
	SecondSgColumn   string // Column with the 2nd person singular form
	SecondPlColumn   string // Column with the 2nd person plural form
	ThirdSgColumn    string // Column with the 3rd person singular form
	ThirdPlColumn    string // Column with the 3rd person plural form
	ExpectInfColumn  string // Column with the "expects infinitive" flag
	QuestionsColumn  string // Column with comma-separated case-question tags
	SheetName        string // Name of the sheet to import
	StartRow         int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		InfinitiveColumn: "A",
		FirstSgColumn:    "B",
		FirstPlColumn:    "C",
		SecondSgColumn:   "D",
		SecondPlColumn:   "E",
		ThirdSgColumn:    "F",
		ThirdPlColumn:    "G",
		ExpectInfColumn:  "H",
		QuestionsColumn:  "I",
		SheetName:        "Sheet1",
		StartRow:         2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	VerbsCreated   int
	QuestionsAdded int
	Skipped        int
	Errors         []string
}

// ImportWords imports verbs and question words from an Excel or CSV file
func ImportWords(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))

	if ext == ".csv" {
		return importFromCSV(config)
	}

	return importFromExcel(config)
}

// importFromExcel imports words from an Excel file
func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	vocabRepo := database.NewVocabularyRepository()
	result := &ImportResult{
		Errors: make([]string, 0),
	}

	for i, row := range rows {
		// Skip header rows
		if i < config.StartRow-1 {
			continue
		}

		result.TotalProcessed++

		if err := processRow(row, config, vocabRepo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return result, nil
}

// importFromCSV imports words from a CSV file using the same column layout
func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	vocabRepo := database.NewVocabularyRepository()
	result := &ImportResult{
		Errors: make([]string, 0),
	}

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++

		// Skip header rows
		if rowNum < config.StartRow {
			continue
		}

		result.TotalProcessed++

		if err := processRow(row, config, vocabRepo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	return result, nil
}

// processRow turns one spreadsheet row into a vocabulary entry
func processRow(row []string, config ImportConfig, vocabRepo *database.VocabularyRepository, result *ImportResult) error {
	text := cellValue(row, config.InfinitiveColumn)
	if text == "" {
		result.Skipped++
		return nil
	}

	// Question-word rows have only the first cell filled
	if isQuestionRow(row, config) {
		if err := vocabRepo.CreateQuestionWord(&models.QuestionWord{Text: text}); err != nil {
			return err
		}
		result.QuestionsAdded++
		return nil
	}

	verb, err := rowToVerb(row, config)
	if err != nil {
		return err
	}

	if err := vocabRepo.CreateVerb(&verb); err != nil {
		return err
	}
	result.VerbsCreated++
	return nil
}

// isQuestionRow reports whether every conjugation cell of the row is empty
func isQuestionRow(row []string, config ImportConfig) bool {
	for _, col := range []string{
		config.FirstSgColumn, config.FirstPlColumn,
		config.SecondSgColumn, config.SecondPlColumn,
		config.ThirdSgColumn, config.ThirdPlColumn,
	} {
		if cellValue(row, col) != "" {
			return false
		}
	}
	return true
}

// rowToVerb builds a verb entry from a spreadsheet row
func rowToVerb(row []string, config ImportConfig) (models.VerbWord, error) {
	conjugations := []models.Conjugation{
		{Singular: cellValue(row, config.FirstSgColumn), Plural: cellValue(row, config.FirstPlColumn)},
		{Singular: cellValue(row, config.SecondSgColumn), Plural: cellValue(row, config.SecondPlColumn)},
		{Singular: cellValue(row, config.ThirdSgColumn), Plural: cellValue(row, config.ThirdPlColumn)},
	}

	for i, c := range conjugations {
		if c.Singular == "" || c.Plural == "" {
			return models.VerbWord{}, fmt.Errorf("incomplete conjugation for person %d", i+1)
		}
	}

	verb := models.VerbWord{
		Forms: models.VerbForms{
			Infinitive:   cellValue(row, config.InfinitiveColumn),
			Conjugations: conjugations,
		},
		ExpectInfinitive: parseFlag(cellValue(row, config.ExpectInfColumn)),
	}

	for _, tag := range splitTags(cellValue(row, config.QuestionsColumn)) {
		q, ok := models.ParseVerbQuestion(tag)
		if !ok {
			return models.VerbWord{}, fmt.Errorf("unknown question tag %q", tag)
		}
		verb.Questions = append(verb.Questions, q)
	}

	return verb, nil
}

// cellValue returns the trimmed cell at the given column letter, or ""
func cellValue(row []string, column string) string {
	if column == "" {
		return ""
	}
	idx := columnToIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseFlag interprets the "expects infinitive" cell
func parseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "да", "+":
		return true
	}
	return false
}

// splitTags splits a comma-separated tag cell, dropping empty entries
func splitTags(s string) []string {
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Helper function to convert Excel column letter to index
func columnToIndex(column string) int {
	column = strings.ToUpper(column)
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
