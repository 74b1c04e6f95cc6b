package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"quotepilot/core/engine"
	"quotepilot/core/registry"
	"quotepilot/models"
)

func newTestServer(t *testing.T, uiPath string) *Server {
	t.Helper()
	return NewServer(engine.New(models.MustBootstrap()), Options{
		Version: "test",
		UIPath:  uiPath,
		Mode:    gin.TestMode,
	})
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t, ""), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["version"])
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t, "")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()

	s.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestListEngines(t *testing.T) {
	rec := do(t, newTestServer(t, ""), http.MethodGet, "/engines", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body EnginesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"QPSAH200S", "QPMAG"}, body.Models)
	assert.Equal(t, 2, body.Count)
}

func TestListEnginesEmptyRegistry(t *testing.T) {
	s := NewServer(engine.New(registry.Empty()), Options{Mode: gin.TestMode})

	rec := do(t, s, http.MethodGet, "/engines", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"models":[],"count":0}`, rec.Body.String())
}

func TestDescribeEngine(t *testing.T) {
	s := newTestServer(t, "")

	rec := do(t, s, http.MethodGet, "/engines/QPMAG", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "QPMAG", body["name"])
	assert.Equal(t, "1800", body["base_price"])
	assert.Len(t, body["segments"], 9)

	rec = do(t, s, http.MethodGet, "/engines/qpmag", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "QPMAG", decode(t, rec)["name"])

	rec = do(t, s, http.MethodGet, "/engines/NOPE", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "UNKNOWN_MODEL", decode(t, rec)["code"])
}

func TestQuoteSuccess(t *testing.T) {
	rec := do(t, newTestServer(t, ""), http.MethodPost, "/quote",
		`{"model":"QPSAH200S","part_number":"QPSAH200S-A-M-G-3-C-3-1-1-C-1-02"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "1000", body["total_price"])
	assert.Len(t, body["breakdown"], 11)
}

func TestQuoteInfersModel(t *testing.T) {
	rec := do(t, newTestServer(t, ""), http.MethodPost, "/quote",
		`{"part_number":"qpmag-04-PT-SS-F1-C-1-1-C-00"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "QPMAG", body["model"])
	assert.Equal(t, "QPMAG-04-PT-SS-F1-C-1-1-C-00", body["part_number"])
}

func TestQuoteValidationFailure(t *testing.T) {
	rec := do(t, newTestServer(t, ""), http.MethodPost, "/quote",
		`{"model":"QPSAH200S","part_number":"QPSAH200S-Z-M-G-3-C-3-1-1-C-1-02"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Output signal type", body["segment"])
	assert.Equal(t, "Z", body["invalid_code"])
	assert.Equal(t, map[string]interface{}{
		"A": "Hart communication with four to twenty milliamp analog signal",
		"B": "Fieldbus digital communication",
		"C": "Profibus digital communication",
	}, body["valid_codes"])
	assert.Contains(t, body["error"], "Invalid code [Z]")
}

func TestQuoteCountMismatch(t *testing.T) {
	rec := do(t, newTestServer(t, ""), http.MethodPost, "/quote",
		`{"model":"QPMAG","part_number":"QPMAG-04-PT"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Electrode material", body["segment"])
	assert.Equal(t, "", body["invalid_code"])
	assert.Equal(t, "Expected 9 segments for model QPMAG but got 2", body["error"])
}

func TestQuoteForeignModelPrefix(t *testing.T) {
	rec := do(t, newTestServer(t, ""), http.MethodPost, "/quote",
		`{"model":"QPSAH200S","part_number":"QPMAG-A-M-G-3-C-3-1-1-C-1-02"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "model", body["segment"])
	assert.Equal(t, "QPMAG", body["invalid_code"])
	assert.Equal(t, map[string]interface{}{"QPSAH200S": "Differential pressure transmitter"}, body["valid_codes"])
}

func TestQuoteUnknownModel(t *testing.T) {
	rec := do(t, newTestServer(t, ""), http.MethodPost, "/quote",
		`{"model":"QPX","part_number":"QPX-1"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "unknown_model", body["kind"])
}

func TestQuoteMalformedBody(t *testing.T) {
	s := newTestServer(t, "")

	for _, body := range []string{`{`, `{"model":"QPMAG"}`} {
		rec := do(t, s, http.MethodPost, "/quote", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		resp := decode(t, rec)
		assert.Equal(t, false, resp["ok"])
		assert.Equal(t, "INVALID_REQUEST", resp["code"])
	}
}

func TestUnknownRoute(t *testing.T) {
	rec := do(t, newTestServer(t, ""), http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStaticUI(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quote.html"), []byte("<h1>quotepilot</h1>"), 0644))
	s := newTestServer(t, dir)

	rec := do(t, s, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/ui/", rec.Header().Get("Location"))

	rec = do(t, s, http.MethodGet, "/ui/quote.html", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "quotepilot")
}

func TestRecoveryReturnsInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.ErrorLevel)
	router := gin.New()
	router.Use(RequestID(), Recovery(zap.New(core)))
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
	assert.NotEmpty(t, body["request_id"])

	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].ContextMap()["error"], "panic recovered: boom")
}
