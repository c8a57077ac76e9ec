package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
)

//go:generate moq -out auth_service_mock_test.go -pkg rest . authService profileService
//go:generate moq -out record_service_mock_test.go -pkg rest . recordService leaderboardService
//go:generate moq -out weather_provider_mock_test.go -pkg rest . weatherProvider
//go:generate moq -out token_validator_mock_test.go -pkg rest . tokenValidator

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), "body: %s", rec.Body.String())
	return v
}

func ptr[T any](v T) *T { return &v }

var (
	testUserID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testCreated = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
)

func testUser() *domain.User {
	return &domain.User{
		ID:        testUserID,
		Name:      "Alice",
		Email:     "alice@example.com",
		CreatedAt: testCreated,
		UpdatedAt: testCreated,
	}
}

func doRequest(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}
