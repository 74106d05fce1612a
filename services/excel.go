package services

import (
	"fmt"
	"strings"

	"lead-intake/logger"
	"lead-intake/models"

	"github.com/xuri/excelize/v2"
)

// ParseExcel reads an Excel file and returns lead submissions with flexible
// column detection. Rows missing every required field are skipped; field
// validation itself happens later in the registration workflow.
func ParseExcel(filePath string) ([]models.LeadSubmission, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	// Get first available sheet
	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}
	sheetName := sheetList[0]

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data in sheet")
	}

	// Auto-detect column order from headers
	colIndices := detectColumns(rows[0])
	logger.Debug("Detected column indices: Email=%d, Name=%d, CNPJ=%d, Phone=%d, Note=%d",
		colIndices["email"], colIndices["name"], colIndices["cnpj"], colIndices["phone"], colIndices["note"])

	var subs []models.LeadSubmission

	for i := 1; i < len(rows); i++ {
		row := rows[i]

		// Skip empty rows
		if len(row) == 0 {
			continue
		}

		sub := models.LeadSubmission{
			Email: extractField(row, colIndices["email"]),
			Name:  extractField(row, colIndices["name"]),
			CNPJ:  extractField(row, colIndices["cnpj"]),
			Phone: extractField(row, colIndices["phone"]),
			Note:  extractField(row, colIndices["note"]),
		}

		if sub.Email == "" && sub.Name == "" && sub.CNPJ == "" && sub.Phone == "" {
			logger.Debug("Row %d has no lead fields, skipping", i+1)
			continue
		}

		subs = append(subs, sub)
	}
	return subs, nil
}

// detectColumns finds column indices by matching header names
func detectColumns(headers []string) map[string]int {
	indices := map[string]int{
		"email": -1,
		"name":  -1,
		"cnpj":  -1,
		"phone": -1,
		"note":  -1,
	}

	for i, header := range headers {
		lower := strings.ToLower(strings.TrimSpace(header))

		switch {
		case lower == "email" || lower == "e-mail" || lower == "email address":
			indices["email"] = i
		case lower == "name" || lower == "nome" || lower == "company" || lower == "razao social":
			indices["name"] = i
		case lower == "cnpj" || lower == "tax id" || lower == "tax identifier":
			indices["cnpj"] = i
		case lower == "phone" || lower == "fone" || lower == "telefone" || lower == "phone number":
			indices["phone"] = i
		case lower == "note" || lower == "obs" || lower == "observacao" || lower == "notes":
			indices["note"] = i
		}
	}

	return indices
}

// extractField safely extracts a field from a row
func extractField(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
