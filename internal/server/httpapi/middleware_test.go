package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"evaluation_service/internal/domain"
	"evaluation_service/pkg/ctxdata"
	"evaluation_service/pkg/logger"
)

const (
	testSecret = "test-secret"
	testIssuer = "studyflow"
)

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(subject string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
}

func TestAuthMiddleware(t *testing.T) {
	auth := NewAuthenticator(testSecret, testIssuer)

	var gotActor string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotActor, _ = ctxdata.GetActorID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	h := auth.Middleware(next)

	expired := validClaims("u")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	otherIssuer := validClaims("u")
	otherIssuer.Issuer = "elsewhere"

	tests := []struct {
		name   string
		header string
		status int
		actor  string
	}{
		{"Success", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("student-1")), http.StatusOK, "student-1"},
		{"MissingHeader", "", http.StatusUnauthorized, ""},
		{"NotBearer", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, ""},
		{"WrongSecret", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims("u")), http.StatusUnauthorized, ""},
		{"WrongAlgorithm", "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims("u")), http.StatusUnauthorized, ""},
		{"Expired", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired), http.StatusUnauthorized, ""},
		{"WrongIssuer", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), otherIssuer), http.StatusUnauthorized, ""},
		{"NoSubject", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("")), http.StatusUnauthorized, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotActor = ""
			r := httptest.NewRequest(http.MethodGet, "/api/v1/permissions/begin", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.actor, gotActor)
		})
	}
}

func TestLoggingMiddleware_SetsTraceID(t *testing.T) {
	var traceInCtx string
	h := NewLoggingMiddleware(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceInCtx, _ = ctxdata.GetTraceID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.NotEmpty(t, traceInCtx)
	assert.Equal(t, traceInCtx, w.Header().Get("X-Trace-Id"))
}

func TestRouter(t *testing.T) {
	f := setup(t)
	router := NewRouter(f.handler, logger.Nop(), NewAuthenticator(testSecret, testIssuer))

	t.Run("HealthIsOpen", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("APIRequiresAuth", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/evaluations/eval-1/state", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("RefreshRoute", func(t *testing.T) {
		f.lifecycle.On("RefreshState", mock.Anything, "eval-1", true).Return(domain.StateActive, nil).Once()

		r := httptest.NewRequest(http.MethodPost, "/api/v1/evaluations/eval-1/state:refresh", nil)
		r.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(actor)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.StateActive, decodeBody[stateResponse](t, w).State)
	})

	t.Run("ActorReachesService", func(t *testing.T) {
		f.assignments.On("Unassign", mock.Anything, actor, "ag-9").Return(nil).Once()

		r := httptest.NewRequest(http.MethodDelete, "/api/v1/groups/ag-9", nil)
		r.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(actor)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
