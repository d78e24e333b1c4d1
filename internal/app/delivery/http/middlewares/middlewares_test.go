package middlewares

import (
	"net/http"
	"net/http/httptest"
	"sehatnama-service/internal/app/config"
	"sehatnama-service/internal/app/contracts/mocks"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestMiddlewares(authUsecase *mocks.AuthUsecase) *Middlewares {
	return &Middlewares{
		Log:         zap.NewNop(),
		AuthUsecase: authUsecase,
		InternalConfig: &config.InternalConfig{
			App: config.App{RequestBodyLimitInMegabyte: 1},
		},
	}
}

func TestAuthenticate(t *testing.T) {
	actor := &models.Actor{UserID: "user-1", Role: constvars.RolePatient, PatientID: "P-1001"}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resolved, ok := utils.GetActor(r.Context())
		assert.True(t, ok, "actor should be set in context")
		assert.Equal(t, "P-1001", resolved.PatientID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid Token", func(t *testing.T) {
		authUsecase := new(mocks.AuthUsecase)
		authUsecase.On("ResolveActor", mock.Anything, "good-token").Return(actor, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rr := httptest.NewRecorder()
		newTestMiddlewares(authUsecase).Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing Token", func(t *testing.T) {
		authUsecase := new(mocks.AuthUsecase)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		rr := httptest.NewRecorder()
		newTestMiddlewares(authUsecase).Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		authUsecase.AssertNotCalled(t, "ResolveActor", mock.Anything, mock.Anything)
	})

	t.Run("Not A Bearer Token", func(t *testing.T) {
		authUsecase := new(mocks.AuthUsecase)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Basic dXNlcjpwYXNz")
		rr := httptest.NewRecorder()
		newTestMiddlewares(authUsecase).Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Expired Session", func(t *testing.T) {
		authUsecase := new(mocks.AuthUsecase)
		authUsecase.On("ResolveActor", mock.Anything, "stale-token").Return(nil, exceptions.ErrSessionInvalid(nil))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer stale-token")
		rr := httptest.NewRecorder()
		newTestMiddlewares(authUsecase).Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(new(mocks.AuthUsecase))
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	t.Run("Echo Client ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-123", seen)
		assert.Equal(t, "client-123", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Generate ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares(new(mocks.AuthUsecase))
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), constvars.ErrClientSomethingWrongWithApplication)

	t.Run("Abort Handler Is Re-Raised", func(t *testing.T) {
		aborting := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		}))
		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			aborting.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}

func TestUploadRateLimiter(t *testing.T) {
	limiter := NewUploadRateLimiter(1, 2, zap.NewNop())
	now := time.Now()

	assert.True(t, limiter.allow("10.0.0.1", now))
	assert.True(t, limiter.allow("10.0.0.1", now))
	assert.False(t, limiter.allow("10.0.0.1", now), "burst exhausted")
	assert.True(t, limiter.allow("10.0.0.2", now), "other clients keep their own bucket")
	assert.True(t, limiter.allow("10.0.0.1", now.Add(time.Minute)), "token refilled after a minute")

	t.Run("Rejects With 429", func(t *testing.T) {
		limiter := NewUploadRateLimiter(1, 1, zap.NewNop())
		handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))

		first := httptest.NewRecorder()
		handler.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/", nil))
		second := httptest.NewRecorder()
		handler.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusCreated, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.Equal(t, "60", second.Header().Get(constvars.HeaderRetryAfter))
	})
}
