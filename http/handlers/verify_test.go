package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lead-intake/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupVerifyHandlerTest(t *testing.T, upstream http.HandlerFunc) (*VerifyHandler, func()) {
	t.Helper()

	server := httptest.NewServer(upstream)

	issuer, err := services.NewTokenIssuerWith("test-secret", "test-issuer", "test-audience")
	require.NoError(t, err)

	verification := services.NewVerificationService(
		services.NewRecaptchaVerifierWith("server-secret", server.URL), issuer)

	return NewVerifyHandler(verification), server.Close
}

func TestVerifyToken_Success(t *testing.T) {
	h, cleanup := setupVerifyHandlerTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	})
	defer cleanup()

	rec := postJSON(t, h.VerifyToken, "/verify-token", `{"token":"client-token"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Token)
}

func TestVerifyToken_Rejected(t *testing.T) {
	h, cleanup := setupVerifyHandlerTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error-codes": ["x"]}`))
	})
	defer cleanup()

	rec := postJSON(t, h.VerifyToken, "/verify-token", `{"token":"bad-token"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Success    bool     `json:"success"`
		ErrorCodes []string `json:"error-codes"`
		Token      string   `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, []string{"x"}, body.ErrorCodes)
	assert.Empty(t, body.Token)
}

func TestVerifyToken_UpstreamUnavailable(t *testing.T) {
	h, cleanup := setupVerifyHandlerTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer cleanup()

	rec := postJSON(t, h.VerifyToken, "/verify-token", `{"token":"client-token"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestVerifyToken_InvalidJSON(t *testing.T) {
	h, cleanup := setupVerifyHandlerTest(t, func(w http.ResponseWriter, r *http.Request) {})
	defer cleanup()

	rec := postJSON(t, h.VerifyToken, "/verify-token", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyToken_MethodNotAllowed(t *testing.T) {
	h, cleanup := setupVerifyHandlerTest(t, func(w http.ResponseWriter, r *http.Request) {})
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/verify-token", nil)
	rec := httptest.NewRecorder()
	h.VerifyToken(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
