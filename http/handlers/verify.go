package handlers

import (
	"encoding/json"
	"net/http"

	resp "lead-intake/http/response"
	"lead-intake/logger"
	"lead-intake/models"
	"lead-intake/services"
)

// VerifyHandler exposes captcha verification and token issuance over HTTP
type VerifyHandler struct {
	verification *services.VerificationService
}

func NewVerifyHandler(verification *services.VerificationService) *VerifyHandler {
	return &VerifyHandler{verification: verification}
}

// VerifyToken runs the captcha check and returns an access token on success.
// The response body is the raw verification result, not the standard
// envelope, matching the public API contract.
func (h *VerifyHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CaptchaVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("Error decoding JSON: %v", err)
		respondError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.verification.VerifyAndIssueToken(r.Context(), req.Token)
	if err != nil {
		logger.Error("Error verifying captcha: %v", err)
		respondError(w, "Verification service unavailable", http.StatusInternalServerError)
		return
	}

	if !result.Success {
		resp.SendJSON(w, http.StatusBadRequest, result)
		return
	}

	resp.SendJSON(w, http.StatusOK, result)
}

// Public handler wrapper used by route setup
var verifyHandler *VerifyHandler

func VerifyToken(w http.ResponseWriter, r *http.Request) {
	if verifyHandler == nil {
		respondError(w, "Verification not configured", http.StatusInternalServerError)
		return
	}
	verifyHandler.VerifyToken(w, r)
}
