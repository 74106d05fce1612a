package utils

import (
	"strings"
)

// Check digit weights for the two verification passes of a CNPJ.
var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidateCNPJ reports whether the given national business tax identifier
// passes the two-pass weighted mod-11 checksum. Formatting punctuation is
// ignored; anything that is not 14 numeric digits fails the check.
func ValidateCNPJ(cnpj string) bool {
	digits := stripCNPJFormatting(cnpj)
	if len(digits) != 14 {
		return false
	}

	nums := make([]int, 14)
	for i, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
		nums[i] = int(r - '0')
	}

	if cnpjCheckDigit(nums, cnpjFirstWeights) != nums[12] {
		return false
	}
	return cnpjCheckDigit(nums, cnpjSecondWeights) == nums[13]
}

// cnpjCheckDigit computes one verification digit over len(weights) digits.
func cnpjCheckDigit(nums, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += nums[i] * w
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func stripCNPJFormatting(cnpj string) string {
	replacer := strings.NewReplacer(".", "", "-", "", "/", "")
	return strings.TrimSpace(replacer.Replace(cnpj))
}
