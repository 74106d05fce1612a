package utils

import (
	"log"
	"strings"

	"lead-intake/models"
)

// DeduplicateSubmissions removes duplicate submissions within the same batch
// based on email, compared case-insensitively. The first occurrence wins.
func DeduplicateSubmissions(subs []models.LeadSubmission) []models.LeadSubmission {
	seen := make(map[string]bool)
	unique := []models.LeadSubmission{}

	for _, sub := range subs {
		key := strings.ToLower(sub.Email)
		if !seen[key] {
			seen[key] = true
			unique = append(unique, sub)
		}
	}

	if len(unique) < len(subs) {
		log.Printf("Removed %d duplicate submissions from batch", len(subs)-len(unique))
	}

	return unique
}
