package auth

import (
	"net/http"
	"net/http/httptest"
	"roomie/internal/core/domain/user"
	coreauth "roomie/internal/core/services/auth"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	cases := []struct {
		id            string
		header        string
		expectedOK    bool
		expectedToken user.AccessToken
	}{
		{
			id:            "valid bearer token",
			header:        "Bearer test-token",
			expectedOK:    true,
			expectedToken: "test-token",
		},
		{
			id:         "no header",
			header:     "",
			expectedOK: false,
		},
		{
			id:         "prefix matched as a substring",
			header:     "XBearer test-token",
			expectedOK: false,
		},
		{
			id:         "prefix only",
			header:     "Bearer ",
			expectedOK: false,
		},
		{
			id:         "different scheme",
			header:     "Basic dGVzdDp0ZXN0",
			expectedOK: false,
		},
		{
			id:         "token too long",
			header:     "Bearer " + strings.Repeat("a", AUTH_TOKEN_MAX_LEN+1),
			expectedOK: false,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			request := httptest.NewRequest(http.MethodGet, "/me", nil)
			if testcase.header != "" {
				request.Header.Set("authorization", testcase.header)
			}

			// Exercise ---
			token, ok := ParseToken(request)

			// Verify ---
			require.Equal(t, testcase.expectedOK, ok)
			if testcase.expectedOK {
				assert.Equal(t, testcase.expectedToken, token)
			}
		})
	}
}

func TestSetAuthTokenToContext(t *testing.T) {
	cases := []struct {
		id            string
		header        string
		expectedToken interface{}
	}{
		{id: "token is set", header: "Bearer test-token", expectedToken: user.AccessToken("test-token")},
		{id: "no token in context", header: "XBearer test-token", expectedToken: nil},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			var gotToken interface{}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotToken = r.Context().Value(coreauth.CONTEXT_AUTH_TOKEN_KEY)
			})
			request := httptest.NewRequest(http.MethodGet, "/me", nil)
			request.Header.Set("authorization", testcase.header)

			// Exercise ---
			SetAuthTokenToContext(next).ServeHTTP(httptest.NewRecorder(), request)

			// Verify ---
			require.Equal(t, testcase.expectedToken, gotToken)
		})
	}
}
