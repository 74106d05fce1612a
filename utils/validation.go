package utils

import (
	"regexp"

	"lead-intake/errors"
	"lead-intake/models"
)

// EmailRegex matches standard email syntax
var EmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateSubmission checks every business rule on a lead submission and
// returns the full list of violations. Rules are evaluated independently so a
// caller can display all problems at once; an empty result means valid.
func ValidateSubmission(sub *models.LeadSubmission) []errors.FieldViolation {
	var violations []errors.FieldViolation

	if sub.Email == "" {
		violations = append(violations, errors.FieldViolation{Field: "email", Message: "Email é obrigatório"})
	} else if !EmailRegex.MatchString(sub.Email) {
		violations = append(violations, errors.FieldViolation{Field: "email", Message: "Email inválido"})
	}

	if sub.Name == "" {
		violations = append(violations, errors.FieldViolation{Field: "nome", Message: "Nome é obrigatório"})
	}

	if sub.Phone == "" {
		violations = append(violations, errors.FieldViolation{Field: "fone", Message: "Fone é obrigatório"})
	}

	if sub.CNPJ == "" {
		violations = append(violations, errors.FieldViolation{Field: "cnpj", Message: "Cnpj é obrigatório"})
	} else if !ValidateCNPJ(sub.CNPJ) {
		violations = append(violations, errors.FieldViolation{Field: "cnpj", Message: "O CNPJ fornecido é inválido."})
	}

	return violations
}
