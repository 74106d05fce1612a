package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"lead-intake/db"
	"lead-intake/errors"
	resp "lead-intake/http/response"
	"lead-intake/logger"
	"lead-intake/models"
	"lead-intake/services"
	"lead-intake/store"
	"lead-intake/utils"
)

// LeadHandler exposes lead registration over HTTP
type LeadHandler struct {
	registration *services.RegistrationService
}

func NewLeadHandler(registration *services.RegistrationService) *LeadHandler {
	return &LeadHandler{registration: registration}
}

// RegisterLead handles single lead registration
func (h *LeadHandler) RegisterLead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var sub models.LeadSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		logger.Error("Error decoding JSON: %v", err)
		respondError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	identity, err := h.registration.RegisterLead(r.Context(), &sub)
	if err != nil {
		logger.Error("Error registering lead: %v", err)
		respondRegistrationError(w, err)
		return
	}

	resp.SuccessResponse(w, http.StatusCreated, "Lead created successfully", identity)
}

// GetLeads lists every stored lead
func (h *LeadHandler) GetLeads(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	leads, err := h.registration.ListLeads(r.Context())
	if err != nil {
		logger.Error("Error fetching leads: %v", err)
		respondError(w, "Error fetching leads", http.StatusInternalServerError)
		return
	}

	resp.SuccessResponse(w, http.StatusOK, fmt.Sprintf("Retrieved %d leads successfully", len(leads)), leads)
}

// UploadLeads handles bulk lead intake via Excel file upload
func (h *LeadHandler) UploadLeads(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Error("Error getting form file: %v", err)
		respondError(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	logger.Info("Processing file upload: %s", header.Filename)

	// Create temp file with proper cleanup
	tempFile, err := os.CreateTemp("", "leads_*.xlsx")
	if err != nil {
		logger.Error("Error creating temp file: %v", err)
		respondError(w, "Error processing file", http.StatusInternalServerError)
		return
	}
	tempFilePath := tempFile.Name()
	defer func() {
		tempFile.Close()
		os.Remove(tempFilePath)
	}()

	if _, err = io.Copy(tempFile, file); err != nil {
		logger.Error("Error copying file: %v", err)
		respondError(w, "Error saving file", http.StatusInternalServerError)
		return
	}

	if err := tempFile.Close(); err != nil {
		logger.Warn("Error closing temp file: %v", err)
	}

	subs, err := services.ParseExcel(tempFilePath)
	if err != nil {
		logger.Error("Error parsing Excel: %v", err)
		respondError(w, "Error parsing Excel: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Remove duplicates within the uploaded file
	subs = utils.DeduplicateSubmissions(subs)

	successCount := 0
	failedRows := []map[string]string{}

	for i, sub := range subs {
		if _, err := h.registration.RegisterLead(ctx, &sub); err != nil {
			logger.Warn("Failed to register lead %d (%s): %v", i+1, sub.Email, err)
			failedRows = append(failedRows, map[string]string{
				"row":   fmt.Sprintf("%d", i+2), // +2 for header row
				"email": sub.Email,
				"error": errors.MessageOf(err),
			})
			continue
		}
		successCount++
	}

	logger.Info("Bulk upload completed: %d successful, %d failed", successCount, len(failedRows))

	result := map[string]interface{}{
		"message":       fmt.Sprintf("Successfully registered %d leads", successCount),
		"success_count": successCount,
		"failed_count":  len(failedRows),
		"total_count":   len(subs),
	}

	if len(failedRows) > 0 {
		result["failed_leads"] = failedRows
	}

	respondJSON(w, http.StatusOK, result)
}

// respondRegistrationError maps workflow error kinds onto HTTP statuses
func respondRegistrationError(w http.ResponseWriter, err error) {
	switch errors.KindOf(err) {
	case errors.Invalid:
		resp.ValidationErrorResponse(w, errors.FieldsOf(err))
	case errors.Conflict:
		respondError(w, errors.MessageOf(err), http.StatusBadRequest)
	default:
		respondError(w, "Error registering lead", http.StatusInternalServerError)
	}
}

// Helper functions (wrappers around response package)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	resp.SendJSON(w, status, data)
}

func respondError(w http.ResponseWriter, message string, status int) {
	resp.ErrorResponse(w, status, message)
}

// Public handler wrappers used by route setup
var leadHandler *LeadHandler

func InitHandlers(registration *services.RegistrationService, verification *services.VerificationService) {
	leadHandler = NewLeadHandler(registration)
	verifyHandler = NewVerifyHandler(verification)
}

func defaultLeadHandler() *LeadHandler {
	if leadHandler == nil {
		leadStore := store.NewLeadStore(db.DB)
		leadHandler = NewLeadHandler(services.NewRegistrationService(leadStore, services.NewSMTPNotifier()))
	}
	return leadHandler
}

func RegisterLead(w http.ResponseWriter, r *http.Request) {
	defaultLeadHandler().RegisterLead(w, r)
}

func GetLeads(w http.ResponseWriter, r *http.Request) {
	defaultLeadHandler().GetLeads(w, r)
}

func UploadLeads(w http.ResponseWriter, r *http.Request) {
	defaultLeadHandler().UploadLeads(w, r)
}
