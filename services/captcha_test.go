package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lead-intake/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecaptchaVerifier_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "server-secret", r.FormValue("secret"))
		assert.Equal(t, "client-token", r.FormValue("response"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	v := NewRecaptchaVerifierWith("server-secret", server.URL)

	outcome, err := v.Verify(context.Background(), "client-token")
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Empty(t, outcome.ErrorCodes)
}

func TestRecaptchaVerifier_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer server.Close()

	v := NewRecaptchaVerifierWith("server-secret", server.URL)

	outcome, err := v.Verify(context.Background(), "bad-token")
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Equal(t, []string{"invalid-input-response"}, outcome.ErrorCodes)
}

func TestRecaptchaVerifier_Non2xxIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	v := NewRecaptchaVerifierWith("server-secret", server.URL)

	_, err := v.Verify(context.Background(), "client-token")
	require.Error(t, err)
	assert.Equal(t, errors.Unavailable, errors.KindOf(err))
}

func TestRecaptchaVerifier_TransportErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	v := NewRecaptchaVerifierWith("server-secret", server.URL)

	_, err := v.Verify(context.Background(), "client-token")
	require.Error(t, err)
	assert.Equal(t, errors.Unavailable, errors.KindOf(err))
}

func TestRecaptchaVerifier_MalformedResponseIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	v := NewRecaptchaVerifierWith("server-secret", server.URL)

	_, err := v.Verify(context.Background(), "client-token")
	require.Error(t, err)
	assert.Equal(t, errors.Unavailable, errors.KindOf(err))
}
