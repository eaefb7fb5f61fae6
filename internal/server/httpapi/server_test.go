package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/earntrack/internal/logging"
	"github.com/dmitrijs2005/earntrack/internal/server/config"
	"github.com/dmitrijs2005/earntrack/internal/server/models"
	"github.com/dmitrijs2005/earntrack/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/earntrack/internal/server/services"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{SecretKey: "test_secret"}
	rm := repomanager.NewInMemoryRepositoryManager()

	us := services.NewUserService(nil, rm, cfg)
	is := services.NewIncomeService(nil, rm)
	ts := services.NewTargetService(nil, rm)
	ss := services.NewSummaryService(nil, rm)

	srv := NewServer(":0", logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), us, is, ts, ss)
	return srv.Routes()
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func registerUser(t *testing.T, h http.Handler, email string) string {
	t.Helper()
	rec := doRequest(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": email, "password": "pw12345",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	resp := decodeJSON[tokenResponse](t, rec)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestRegister(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "alice@example.com", "password": "pw12345",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[tokenResponse](t, rec)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "alice@example.com", resp.User.Email)

	t.Run("duplicate email", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
			"email": "alice@example.com", "password": "other",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeJSON[map[string]string](t, rec)
		assert.Equal(t, "Email already registered", body["error"])
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
			"email": "bob@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	h := newTestHandler(t)
	registerUser(t, h, "alice@example.com")

	t.Run("valid credentials", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "alice@example.com", "password": "pw12345",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeJSON[tokenResponse](t, rec)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		recWrong := doRequest(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "alice@example.com", "password": "nope",
		})
		recUnknown := doRequest(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "ghost@example.com", "password": "nope",
		})

		assert.Equal(t, http.StatusUnauthorized, recWrong.Code)
		assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
		assert.Equal(t, recWrong.Body.String(), recUnknown.Body.String())
	})
}

func TestAuthGate(t *testing.T) {
	h := newTestHandler(t)

	paths := []struct {
		method, path string
	}{
		{http.MethodPost, "/api/income/"},
		{http.MethodGet, "/api/income/"},
		{http.MethodGet, "/api/income/monthly-summary"},
		{http.MethodGet, "/api/income/ytd"},
		{http.MethodGet, "/api/income/yearly"},
		{http.MethodDelete, "/api/income/some-id"},
		{http.MethodPost, "/api/target/"},
		{http.MethodGet, "/api/target/"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rec := doRequest(t, h, p.method, p.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	t.Run("garbage token", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/income/", "not.a.token", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestIncomeFlow(t *testing.T) {
	h := newTestHandler(t)
	token := registerUser(t, h, "alice@example.com")

	rec := doRequest(t, h, http.MethodPost, "/api/income/", token, map[string]any{
		"date": "2024-03-15", "amount": 150.5, "source": "freelance",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	entry := decodeJSON[models.IncomeEntry](t, rec)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, 3, entry.Month)
	assert.Equal(t, 2024, entry.Year)
	assert.Equal(t, 150.5, entry.Amount)

	t.Run("invalid date", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/api/income/", token, map[string]any{
			"date": "15.03.2024", "amount": 10, "source": "job",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative amount", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/api/income/", token, map[string]any{
			"date": "2024-03-15", "amount": -5, "source": "job",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list filtered by month", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/income/?month=3&year=2024", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		entries := decodeJSON[[]models.IncomeEntry](t, rec)
		assert.Len(t, entries, 1)
	})

	t.Run("list other month is empty", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/income/?month=4&year=2024", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		entries := decodeJSON[[]models.IncomeEntry](t, rec)
		assert.Empty(t, entries)
	})

	t.Run("bad month parameter", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/income/?month=abc", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodDelete, "/api/income/"+entry.ID, token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON[map[string]string](t, rec)
		assert.Equal(t, "Entry deleted successfully", body["message"])

		rec = doRequest(t, h, http.MethodDelete, "/api/income/"+entry.ID, token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete is owner scoped", func(t *testing.T) {
		otherToken := registerUser(t, h, "bob@example.com")

		rec := doRequest(t, h, http.MethodPost, "/api/income/", token, map[string]any{
			"date": "2024-05-01", "amount": 40, "source": "job",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		created := decodeJSON[models.IncomeEntry](t, rec)

		rec = doRequest(t, h, http.MethodDelete, "/api/income/"+created.ID, otherToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTargetFlow(t *testing.T) {
	h := newTestHandler(t)
	token := registerUser(t, h, "alice@example.com")

	t.Run("get before set", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/target/", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeJSON[map[string]string](t, rec)
		assert.Equal(t, "Target not set", body["error"])
	})

	rec := doRequest(t, h, http.MethodPost, "/api/target/", token, map[string]any{"monthly_target": 5000.0})
	require.Equal(t, http.StatusOK, rec.Code)
	first := decodeJSON[models.MonthlyTarget](t, rec)
	assert.Equal(t, 5000.0, first.MonthlyTarget)

	t.Run("overwrite keeps single row", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/api/target/", token, map[string]any{"monthly_target": 6000.0})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(t, h, http.MethodGet, "/api/target/", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeJSON[models.MonthlyTarget](t, rec)
		assert.Equal(t, 6000.0, got.MonthlyTarget)
		assert.Equal(t, first.ID, got.ID)
	})
}

func TestMonthlySummary(t *testing.T) {
	h := newTestHandler(t)
	token := registerUser(t, h, "alice@example.com")

	for _, amount := range []float64{100, 200.5} {
		rec := doRequest(t, h, http.MethodPost, "/api/income/", token, map[string]any{
			"date": "2024-03-15", "amount": amount, "source": "job",
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := doRequest(t, h, http.MethodPost, "/api/target/", token, map[string]any{"monthly_target": 500.0})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/income/monthly-summary?month=3&year=2024", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	summary := decodeJSON[models.MonthlySummary](t, rec)
	assert.Equal(t, 3, summary.Month)
	assert.Equal(t, "March", summary.MonthName)
	assert.Equal(t, 300.5, summary.Total)
	assert.Equal(t, 500.0, summary.Target)
	assert.Equal(t, 199.5, summary.Remaining)
	assert.Equal(t, 2, summary.EntriesCount)

	t.Run("month and year are required", func(t *testing.T) {
		for _, q := range []string{"", "?month=3", "?year=2024", "?month=13&year=2024", "?month=0&year=2024"} {
			rec := doRequest(t, h, http.MethodGet, "/api/income/monthly-summary"+q, token, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "query %q", q)
		}
	})
}

func TestYearToDateAndYearly(t *testing.T) {
	h := newTestHandler(t)
	token := registerUser(t, h, "alice@example.com")

	today := time.Now().UTC().Format("2006-01-02")
	rec := doRequest(t, h, http.MethodPost, "/api/income/", token, map[string]any{
		"date": today, "amount": 321.0, "source": "job",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("ytd", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/income/ytd", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeJSON[map[string]any](t, rec)
		assert.Equal(t, 321.0, resp["ytd_total"])
		assert.Equal(t, float64(time.Now().UTC().Year()), resp["year"])
	})

	t.Run("yearly returns twelve buckets", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/income/yearly", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		summaries := decodeJSON[[]models.MonthlySummary](t, rec)
		require.Len(t, summaries, 12)

		now := time.Now().UTC()
		assert.Equal(t, int(now.Month()), summaries[0].Month)
		assert.Equal(t, now.Year(), summaries[0].Year)
		assert.Equal(t, 321.0, summaries[0].Total)
	})
}

func TestHealthCheck(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
