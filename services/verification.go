package services

import (
	"context"

	"lead-intake/models"

	"github.com/google/uuid"
)

// VerificationService gates token issuance behind a captcha check
type VerificationService struct {
	captcha CaptchaVerifier
	issuer  *TokenIssuer
}

// NewVerificationService creates a new verification service
func NewVerificationService(captcha CaptchaVerifier, issuer *TokenIssuer) *VerificationService {
	return &VerificationService{captcha: captcha, issuer: issuer}
}

// VerifyAndIssueToken runs the captcha check and, on success, mints an access
// token for a fresh anonymous identity. A rejected captcha comes back as a
// result with Success false and the upstream error codes; an unreachable
// verification service comes back as an Unavailable error.
func (s *VerificationService) VerifyAndIssueToken(ctx context.Context, token string) (*models.CaptchaVerificationResult, error) {
	outcome, err := s.captcha.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	if !outcome.Success {
		return &models.CaptchaVerificationResult{
			Success:    false,
			ErrorCodes: outcome.ErrorCodes,
		}, nil
	}

	// The identity is anonymous: a fresh value not tied to any stored lead.
	signed, err := s.issuer.Issue(uuid.NewString())
	if err != nil {
		return nil, err
	}

	return &models.CaptchaVerificationResult{
		Success: true,
		Token:   signed,
	}, nil
}
