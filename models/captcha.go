package models

// CaptchaVerificationRequest carries the challenge-response token a client
// obtained from the captcha widget.
type CaptchaVerificationRequest struct {
	Token string `json:"token"`
}

// CaptchaVerificationResult is the outcome of one verification call. Token is
// only populated when Success is true; ErrorCodes only when it is false.
type CaptchaVerificationResult struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes,omitempty"`
	Token      string   `json:"token,omitempty"`
}
