package zeit

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oarkflow/squealx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/zeit/pkg/http/handlers"
	"github.com/oarkflow/zeit/pkg/libs"
	"github.com/oarkflow/zeit/pkg/models"
)

const testSecret = "zeit-2024"

func testConfig(t *testing.T, secret string) *libs.Config {
	t.Helper()
	return &libs.Config{
		AppName:           "Zeit AI Logistics",
		Env:               "test",
		UserName:          "Roberto Dávila",
		UserRole:          "Director de Operaciones",
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		Gate: libs.GateConfig{
			Secret:         secret,
			MaxAttempts:    3,
			ProtectedViews: []string{"methodology"},
			SessionName:    "zeit_session",
			SessionTTL:     30 * time.Minute,
			TokenSecret:    []byte("0123456789abcdef0123456789abcdef"),
		},
		DB:  squealx.Config{Driver: "sqlite"},
		DSN: filepath.Join(t.TempDir(), "zeit.db"),
	}
}

func newTestApp(t *testing.T, cfg *libs.Config) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	plugin := NewPluginWithOptions(WithApp(app), WithConfig(cfg))
	require.NoError(t, plugin.Register())
	t.Cleanup(func() { _ = plugin.Close() })
	app.Use(handlers.NotFound)
	return app
}

// browser replays the cookies a real browser would keep between requests.
type browser struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]string
}

func newBrowser(t *testing.T, app *fiber.App) *browser {
	return &browser{t: t, app: app, cookies: map[string]string{}}
}

func (b *browser) do(req *http.Request) (*http.Response, string) {
	b.t.Helper()
	for name, value := range b.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	resp, err := b.app.Test(req, -1)
	require.NoError(b.t, err)
	for _, c := range resp.Cookies() {
		expired := c.MaxAge < 0 || c.Value == "" || (!c.Expires.IsZero() && c.Expires.Before(time.Now()))
		if expired {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c.Value
	}
	body, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)
	return resp, string(body)
}

func (b *browser) get(path string) (*http.Response, string) {
	return b.do(httptest.NewRequest(fiber.MethodGet, path, nil))
}

func (b *browser) postForm(path string, form url.Values) (*http.Response, string) {
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return b.do(req)
}

func (b *browser) postJSON(path string, payload any) (*http.Response, map[string]any) {
	b.t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(b.t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(string(raw)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	resp, body := b.do(req)
	var out map[string]any
	require.NoError(b.t, json.Unmarshal([]byte(body), &out), body)
	return resp, out
}

func gateOf(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	g, ok := body["gate"].(map[string]any)
	require.True(t, ok, "missing gate in %v", body)
	return g
}

func TestLandingRedirectsToDashboard(t *testing.T) {
	app := newTestApp(t, testConfig(t, testSecret))
	resp, _ := newBrowser(t, app).get("/")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/views/dashboard", resp.Header.Get(fiber.HeaderLocation))
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t, testConfig(t, testSecret))
	b := newBrowser(t, app)
	resp, body := b.get("/health")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","sessions":0}`, body)

	b.get("/views/methodology")
	_, body = b.get("/health")
	assert.JSONEq(t, `{"status":"ok","sessions":1}`, body)
}

func TestRegisterRejectsBadTokenSecret(t *testing.T) {
	for _, key := range []string{"", "short-secret", strings.Repeat("k", 33)} {
		cfg := testConfig(t, testSecret)
		cfg.Gate.TokenSecret = []byte(key)
		plugin := NewPluginWithOptions(WithApp(fiber.New()), WithConfig(cfg))
		err := plugin.Register()
		require.ErrorIs(t, err, libs.ErrTokenSecret, "key %q", key)
		assert.Nil(t, plugin.store, "storage must not be opened for key %q", key)
	}
}

func TestUnprotectedViewsRender(t *testing.T) {
	app := newTestApp(t, testConfig(t, testSecret))
	b := newBrowser(t, app)
	cases := map[string]string{
		"dashboard":    "Ingresos vs Costos",
		"ai-ecosystem": "Mapa del Ecosistema",
		"routes":       "Mapa de Rutas",
		"analytics":    "Pronóstico de Demanda",
		"customs":      "Documentos Aduanales",
		"operations":   "Centro de Comando",
	}
	for id, marker := range cases {
		resp, body := b.get("/views/" + id)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, id)
		assert.Contains(t, body, marker, id)
		assert.Contains(t, body, "Roberto Dávila", id)
	}
}

func TestUnknownViewFallsBackToDashboard(t *testing.T) {
	app := newTestApp(t, testConfig(t, testSecret))
	resp, body := newBrowser(t, app).get("/views/does-not-exist")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Ingresos vs Costos")
}

func TestProtectedViewStartsLocked(t *testing.T) {
	app := newTestApp(t, testConfig(t, testSecret))
	resp, body := newBrowser(t, app).get("/views/methodology")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "Contraseña de Acceso")
	assert.Contains(t, body, "Contenido protegido - Solo personal autorizado")
	assert.NotContains(t, body, "Fases de Implementación")
	assert.NotContains(t, body, "Intentos restantes")
	assert.Contains(t, resp.Header.Get(fiber.HeaderCacheControl), "no-store")
}

func TestGateAuthenticatesWithJSON(t *testing.T) {
	app := newTestApp(t, testConfig(t, testSecret))
	b := newBrowser(t, app)

	resp, body := b.postJSON("/views/methodology/gate", map[string]string{"secret": "wrong"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Contraseña incorrecta. Intente nuevamente.", body["error"])
	g := gateOf(t, body)
	assert.Equal(t, "locked", g["state"])
	assert.EqualValues(t, 1, g["attempt_count"])
	assert.EqualValues(t, 2, g["remaining_attempts"])

	resp, body = b.postJSON("/views/methodology/gate", map[string]string{"secret": testSecret})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "authenticated", gateOf(t, body)["state"])
	assert.NotContains(t, body, "error")

	resp, html := b.get("/views/methodology")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, html, "Fases de Implementación")
	assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header.Get(fiber.HeaderCacheControl))
}

func TestGateFormSubmissionRedirects(t *testing.T) {
	app := newTestApp(t, testConfig(t, testSecret))
	b := newBrowser(t, app)

	resp, _ := b.postForm("/views/methodology/gate", url.Values{"secret": {"nope"}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/views/methodology", resp.Header.Get(fiber.HeaderLocation))

	resp, body := b.get("/views/methodology")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "Contraseña incorrecta. Intente nuevamente.")
	assert.Contains(t, body, "Intentos restantes: 2")

	resp, _ = b.postForm("/views/methodology/gate", url.Values{"secret": {testSecret}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	resp, body = b.get("/views/methodology")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Fases de Implementación")
}

func TestGateBlocksAfterMaxAttempts(t *testing.T) {
	app := newTestApp(t, testConfig(t, testSecret))
	b := newBrowser(t, app)

	for i := 0; i < 2; i++ {
		resp, _ := b.postJSON("/views/methodology/gate", map[string]string{"secret": "bad"})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	}
	resp, body := b.postJSON("/views/methodology/gate", map[string]string{"secret": "bad"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Demasiados intentos fallidos. Contacte al administrador.", body["error"])
	g := gateOf(t, body)
	assert.Equal(t, "blocked", g["state"])
	assert.EqualValues(t, 0, g["remaining_attempts"])

	// The correct secret no longer opens a blocked gate.
	resp, body = b.postJSON("/views/methodology/gate", map[string]string{"secret": testSecret})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "blocked", gateOf(t, body)["state"])
	assert.EqualValues(t, 3, gateOf(t, body)["attempt_count"])

	resp, html := b.get("/views/methodology")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Contains(t, html, "Acceso Bloqueado")
	assert.Contains(t, html, "Contacte al administrador del sistema para restablecer el acceso.")
	assert.NotContains(t, html, "Fases de Implementación")
}

func TestAuthenticatedGateIgnoresFurtherSubmissions(t *testing.T) {
	app := newTestApp(t, testConfig(t, testSecret))
	b := newBrowser(t, app)

	_, body := b.postJSON("/views/methodology/gate", map[string]string{"secret": testSecret})
	require.Equal(t, "authenticated", gateOf(t, body)["state"])
	resp, body := b.postJSON("/views/methodology/gate", map[string]string{"secret": "anything"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "authenticated", gateOf(t, body)["state"])
	assert.EqualValues(t, 0, gateOf(t, body)["attempt_count"])
}

func TestEmptySecretKeepsGateClosed(t *testing.T) {
	app := newTestApp(t, testConfig(t, ""))
	b := newBrowser(t, app)
	resp, body := b.postJSON("/views/methodology/gate", map[string]string{"secret": ""})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "locked", gateOf(t, body)["state"])
	assert.EqualValues(t, 1, gateOf(t, body)["attempt_count"])
}

func TestGatesAreScopedToTheBrowserSession(t *testing.T) {
	app := newTestApp(t, testConfig(t, testSecret))
	alice := newBrowser(t, app)
	_, body := alice.postJSON("/views/methodology/gate", map[string]string{"secret": testSecret})
	require.Equal(t, "authenticated", gateOf(t, body)["state"])

	resp, _ := newBrowser(t, app).get("/views/methodology")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = alice.get("/views/methodology")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLogoutStartsFreshGates(t *testing.T) {
	app := newTestApp(t, testConfig(t, testSecret))
	b := newBrowser(t, app)
	_, body := b.postJSON("/views/methodology/gate", map[string]string{"secret": testSecret})
	require.Equal(t, "authenticated", gateOf(t, body)["state"])

	resp, _ := b.postForm("/logout", url.Values{})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
	assert.NotContains(t, b.cookies, "zeit_session")

	resp, _ = b.get("/views/methodology")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRevealKeepsTypedSecret(t *testing.T) {
	app := newTestApp(t, testConfig(t, testSecret))
	b := newBrowser(t, app)

	resp, _ := b.postForm("/views/methodology/gate/reveal", url.Values{"secret": {"half-typed"}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	_, body := b.get("/views/methodology")
	assert.Contains(t, body, `type="text"`)
	assert.Contains(t, body, `value="half-typed"`)

	resp, _ = b.postForm("/views/methodology/gate/hide", url.Values{"secret": {"half-typed"}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	_, body = b.get("/views/methodology")
	assert.Contains(t, body, `type="password"`)

	// Toggling visibility never counts as an attempt.
	_, out := b.postJSON("/views/methodology/gate/reveal", map[string]string{})
	g := gateOf(t, out)
	assert.Equal(t, true, g["revealed"])
	assert.EqualValues(t, 0, g["attempt_count"])
}

func TestGateEndpointsRejectUnprotectedViews(t *testing.T) {
	app := newTestApp(t, testConfig(t, testSecret))
	resp, body := newBrowser(t, app).postJSON("/views/dashboard/gate", map[string]string{"secret": testSecret})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestAuditTrailRecordsOutcomes(t *testing.T) {
	app := newTestApp(t, testConfig(t, testSecret))
	b := newBrowser(t, app)
	b.postJSON("/views/methodology/gate", map[string]string{"secret": "bad"})
	b.postJSON("/views/methodology/gate", map[string]string{"secret": testSecret})
	b.postJSON("/views/methodology/gate", map[string]string{"secret": "again"})

	resp, body := b.get("/api/audit?limit=10")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out struct {
		Events []models.GateEvent `json:"events"`
		Count  int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	require.Equal(t, 3, out.Count)
	assert.Equal(t, models.OutcomeIgnored, out.Events[0].Outcome)
	assert.Equal(t, models.OutcomeAuthenticated, out.Events[1].Outcome)
	assert.Equal(t, models.OutcomeInvalidCredential, out.Events[2].Outcome)
	assert.Equal(t, "methodology", out.Events[2].ViewID)
	assert.Equal(t, out.Events[0].SessionID, out.Events[2].SessionID)
}

func TestGateEndpointsAreRateLimited(t *testing.T) {
	cfg := testConfig(t, testSecret)
	cfg.RateLimitRequests = 2
	app := newTestApp(t, cfg)
	b := newBrowser(t, app)

	for i := 0; i < 2; i++ {
		resp, _ := b.postJSON("/views/methodology/gate/reveal", map[string]string{})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	resp, body := b.postJSON("/views/methodology/gate/reveal", map[string]string{})
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.EqualValues(t, 60, body["retry_after"])

	// A forged forwarding header does not buy a fresh budget.
	req := httptest.NewRequest(fiber.MethodPost, "/views/methodology/gate/reveal", strings.NewReader(`{}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderXForwardedFor, "203.0.113.99")
	resp, _ = b.do(req)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestSuspiciousPathsAreRejected(t *testing.T) {
	app := newTestApp(t, testConfig(t, testSecret))
	resp, _ := newBrowser(t, app).get("/views/.env")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUnknownRouteRendersNotFound(t *testing.T) {
	app := newTestApp(t, testConfig(t, testSecret))
	resp, body := newBrowser(t, app).get("/nowhere")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Página no encontrada")
}

func TestStaticAssetsAreServed(t *testing.T) {
	app := newTestApp(t, testConfig(t, testSecret))
	resp, body := newBrowser(t, app).get("/static/app.css")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, ".chart-legend")
}
