package regression

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betterrest-backend/config"
	"betterrest-backend/internal/logging"
)

func TestRemoteModel_Predict(t *testing.T) {
	var got InferenceRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(InferenceResponse{Code: 0, ActualSleep: 27000})
	}))
	defer server.Close()

	m := NewRemoteModel(config.RemoteConfig{
		URL:     server.URL,
		Headers: map[string]string{"X-Api-Key": "secret"},
		Timeout: time.Second,
	}, logging.Nop())

	seconds, err := m.Predict(context.Background(), 23520, 8, 1)
	require.NoError(t, err)
	assert.Equal(t, 27000.0, seconds)
	assert.Equal(t, InferenceRequest{Wake: 23520, EstimatedSleep: 8, Coffee: 1}, got)
}

func TestRemoteModel_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: "non-200 status code: 500",
		},
		{
			name: "application error code",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(InferenceResponse{Code: 3, Message: "model not loaded"})
			},
			wantErr: "inference service returned code 3: model not loaded",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>"))
			},
			wantErr: "failed to unmarshal inference response",
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
			},
			wantErr: "http request failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			m := NewRemoteModel(config.RemoteConfig{URL: server.URL, Timeout: 50 * time.Millisecond}, logging.Nop())
			_, err := m.Predict(context.Background(), 0, 8, 0)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestNewRemoteModel_InvalidProxyFallsBack(t *testing.T) {
	m := NewRemoteModel(config.RemoteConfig{URL: "http://localhost", HTTPProxy: "://bad", Timeout: time.Second}, logging.Nop())
	transport, ok := m.client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Nil(t, transport.Proxy)
}
