package http

import (
	"net/http"

	"lead-intake/http/handlers"
	"lead-intake/http/middleware"
)

// SetupRoutes configures all HTTP routes and middleware
func SetupRoutes() {
	// Lead intake APIs
	http.HandleFunc("/register-lead", middleware.EnableCORS(handlers.RegisterLead))
	http.HandleFunc("/leads", middleware.EnableCORS(handlers.GetLeads))
	http.HandleFunc("/upload-leads", middleware.EnableCORS(handlers.UploadLeads))

	// Captcha verification API
	http.HandleFunc("/verify-token", middleware.EnableCORS(handlers.VerifyToken))
}
