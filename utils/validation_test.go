package utils

import (
	"testing"

	"lead-intake/errors"
	"lead-intake/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateSubmission_Valid(t *testing.T) {
	sub := &models.LeadSubmission{
		Email: "a@b.com",
		Name:  "Acme",
		CNPJ:  "11222333000181",
		Phone: "1199999999",
	}

	assert.Empty(t, ValidateSubmission(sub))
}

func TestValidateSubmission_AggregatesAllViolations(t *testing.T) {
	// Every violated rule must be reported, not just the first.
	violations := ValidateSubmission(&models.LeadSubmission{})

	fields := violatedFields(violations)
	assert.ElementsMatch(t, []string{"email", "nome", "cnpj", "fone"}, fields)
}

func TestValidateSubmission_InvalidEmailAndCNPJ(t *testing.T) {
	sub := &models.LeadSubmission{
		Email: "not-an-email",
		Name:  "Acme",
		CNPJ:  "11222333000180",
		Phone: "1199999999",
	}

	violations := ValidateSubmission(sub)
	assert.ElementsMatch(t, []string{"email", "cnpj"}, violatedFields(violations))
}

func TestValidateSubmission_Messages(t *testing.T) {
	violations := ValidateSubmission(&models.LeadSubmission{Name: "Acme", Phone: "1199999999"})

	messages := map[string]string{}
	for _, v := range violations {
		messages[v.Field] = v.Message
	}

	assert.Equal(t, "Email é obrigatório", messages["email"])
	assert.Equal(t, "Cnpj é obrigatório", messages["cnpj"])
}

func TestValidateSubmission_EmailSyntax(t *testing.T) {
	cases := map[string]bool{
		"a@b.com":         true,
		"user.name@x.org": true,
		"a@b":             false,
		"@b.com":          false,
		"a b@c.com":       false,
	}

	for email, valid := range cases {
		sub := &models.LeadSubmission{
			Email: email,
			Name:  "Acme",
			CNPJ:  "11222333000181",
			Phone: "1199999999",
		}
		violations := ValidateSubmission(sub)
		if valid {
			assert.Empty(t, violations, "email %q should be valid", email)
		} else {
			assert.Equal(t, []string{"email"}, violatedFields(violations), "email %q should be invalid", email)
		}
	}
}

func violatedFields(violations []errors.FieldViolation) []string {
	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	return fields
}
