package utils

import (
	"testing"
)

func TestValidateCNPJ_KnownValid(t *testing.T) {
	valid := []string{
		"11222333000181",
		"11444777000161",
		"11.222.333/0001-81", // formatting punctuation is ignored
		" 11222333000181 ",
	}

	for _, cnpj := range valid {
		if !ValidateCNPJ(cnpj) {
			t.Errorf("ValidateCNPJ(%q) = false, want true", cnpj)
		}
	}
}

func TestValidateCNPJ_CheckDigitMismatch(t *testing.T) {
	// Any value other than the computed one in either check digit position
	// must fail.
	base := "112223330001"
	for first := 0; first <= 9; first++ {
		for second := 0; second <= 9; second++ {
			cnpj := base + string(rune('0'+first)) + string(rune('0'+second))
			want := first == 8 && second == 1
			if got := ValidateCNPJ(cnpj); got != want {
				t.Errorf("ValidateCNPJ(%q) = %v, want %v", cnpj, got, want)
			}
		}
	}
}

func TestValidateCNPJ_AlteredDigit(t *testing.T) {
	// Single-digit changes to the weighted portion break the checksum.
	invalid := []string{
		"01222333000181",
		"12222333000181",
		"11122333000181",
		"11222433000181",
		"11222333100181",
	}

	for _, cnpj := range invalid {
		if ValidateCNPJ(cnpj) {
			t.Errorf("ValidateCNPJ(%q) = true, want false", cnpj)
		}
	}
}

func TestValidateCNPJ_Malformed(t *testing.T) {
	// Wrong length and non-numeric input are checksum failures, not a
	// separate error kind.
	invalid := []string{
		"",
		"1122233300018",    // 13 digits
		"112223330001811",  // 15 digits
		"1122233300018a",   // non-numeric
		"aaaaaaaaaaaaaa",   //
		"11 222333000181",  // inner space is not formatting
	}

	for _, cnpj := range invalid {
		if ValidateCNPJ(cnpj) {
			t.Errorf("ValidateCNPJ(%q) = true, want false", cnpj)
		}
	}
}
