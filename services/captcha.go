package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lead-intake/config"
	"lead-intake/errors"
)

// CaptchaOutcome is the interpreted upstream verification response
type CaptchaOutcome struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// CaptchaVerifier checks a challenge-response token against a third-party
// human-verification service.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) (*CaptchaOutcome, error)
}

// RecaptchaVerifier calls a reCAPTCHA-compatible siteverify endpoint
type RecaptchaVerifier struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
}

// NewRecaptchaVerifier builds a verifier from the loaded application config
func NewRecaptchaVerifier() *RecaptchaVerifier {
	return &RecaptchaVerifier{
		secret:     config.AppConfig.CaptchaSecret,
		verifyURL:  config.AppConfig.CaptchaVerifyURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewRecaptchaVerifierWith builds a verifier against an explicit endpoint,
// used by tests.
func NewRecaptchaVerifierWith(secret, verifyURL string) *RecaptchaVerifier {
	return &RecaptchaVerifier{
		secret:     secret,
		verifyURL:  verifyURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify posts the server secret and client token to the verification
// endpoint. Transport errors and non-2xx responses are Unavailable errors; a
// well-formed rejection comes back as an outcome with Success false.
func (v *RecaptchaVerifier) Verify(ctx context.Context, token string) (*CaptchaOutcome, error) {
	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.E(errors.Unavailable, "error building captcha request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, errors.E(errors.Unavailable, "captcha verification request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.E(errors.Unavailable, "captcha verification endpoint returned "+resp.Status)
	}

	var outcome CaptchaOutcome
	if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil {
		return nil, errors.E(errors.Unavailable, "error decoding captcha response", err)
	}

	return &outcome, nil
}
