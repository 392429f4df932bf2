package routes

import (
	"EAsha/config"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testUsersFile = "username,password,name,mobile,location,photo\n" +
	"asha1,pw1,Sita Devi,9999999999,Wardha,default.jpg\n"

const testAdminFile = "username,password,name,mobile,location,photo\n" +
	"admin,adminpw,Head Admin,9000000000,Nagpur,default.jpg\n"

// testClient drives the router the way a browser would, carrying the session
// cookie between requests.
type testClient struct {
	t       *testing.T
	router  http.Handler
	cookies map[string]string
}

func newTestApp(t *testing.T) (*testClient, *config.AppConfig) {
	t.Helper()
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	dir := t.TempDir()
	cfg := &config.AppConfig{
		DataDir:   dir,
		UploadDir: filepath.Join(dir, "uploads"),
	}
	if err := os.WriteFile(cfg.UsersFile(), []byte(testUsersFile), 0o644); err != nil {
		t.Fatalf("seed users file: %v", err)
	}
	if err := os.WriteFile(cfg.AdminFile(), []byte(testAdminFile), 0o644); err != nil {
		t.Fatalf("seed admin file: %v", err)
	}

	return &testClient{
		t:       t,
		router:  SetupRoutes(nil, cfg),
		cookies: map[string]string{},
	}, cfg
}

func (c *testClient) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for name, value := range c.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(c.cookies, cookie.Name)
		} else {
			c.cookies[cookie.Name] = cookie.Value
		}
	}
	return rec
}

func (c *testClient) decode(rec *httptest.ResponseRecorder) map[string]any {
	c.t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		c.t.Fatalf("response not JSON: %v (%q)", err, rec.Body.String())
	}
	return body
}

func TestWorkerLogin(t *testing.T) {
	client, _ := newTestApp(t)

	rec := client.do(http.MethodPost, "/login", url.Values{"username": {"asha1"}, "password": {"wrong"}})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad password status = %d", rec.Code)
	}
	body := client.decode(rec)
	if body["error"] != "Invalid username or password." {
		t.Fatalf("error = %q", body["error"])
	}

	rec = client.do(http.MethodPost, "/login", url.Values{"username": {"asha1"}, "password": {"pw1"}})
	if rec.Code != http.StatusFound {
		t.Fatalf("login status = %d, body %q", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/page1" {
		t.Fatalf("redirect = %q, want /page1", loc)
	}
	if client.cookies["sessionToken"] == "" {
		t.Fatal("login did not set the session cookie")
	}
}

func TestWorkerRoutesRequireSession(t *testing.T) {
	client, _ := newTestApp(t)

	for _, path := range []string{"/page1", "/select", "/history", "/dashboard", "/profile", "/chat"} {
		rec := client.do(http.MethodGet, path, nil)
		if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
			t.Fatalf("%s without session: status %d, location %q", path, rec.Code, rec.Header().Get("Location"))
		}
	}

	rec := client.do(http.MethodGet, "/allview", nil)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/admin_login" {
		t.Fatalf("/allview without session: status %d, location %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestWorkerSessionDoesNotOpenAdminRoutes(t *testing.T) {
	client, _ := newTestApp(t)

	client.do(http.MethodPost, "/login", url.Values{"username": {"asha1"}, "password": {"pw1"}})
	rec := client.do(http.MethodGet, "/manage_asha", nil)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/admin_login" {
		t.Fatalf("worker reached admin route: status %d, location %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestVisitWorkflow(t *testing.T) {
	client, cfg := newTestApp(t)

	client.do(http.MethodPost, "/login", url.Values{"username": {"asha1"}, "password": {"pw1"}})

	// The selection step is unreachable before intake completes.
	rec := client.do(http.MethodGet, "/select", nil)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/page1" {
		t.Fatalf("premature /select: status %d, location %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = client.do(http.MethodPost, "/page1", url.Values{"name": {"Sita"}, "age": {"30"}, "mobile": {"9999999999"}})
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/select" {
		t.Fatalf("intake: status %d, location %q, body %q", rec.Code, rec.Header().Get("Location"), rec.Body.String())
	}

	rec = client.do(http.MethodGet, "/select", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("/select status = %d", rec.Code)
	}
	body := client.decode(rec)
	if body["name"] != "Sita" {
		t.Fatalf("draft not echoed: %+v", body)
	}

	// An empty submission stays on the step and records nothing.
	rec = client.do(http.MethodPost, "/select", url.Values{"disease": {""}})
	if rec.Code != http.StatusOK {
		t.Fatalf("empty disease status = %d", rec.Code)
	}
	body = client.decode(rec)
	if body["error"] != "⚠️ Please select a disease." {
		t.Fatalf("error = %q", body["error"])
	}
	if _, err := os.Stat(cfg.ReportsFile()); !os.IsNotExist(err) {
		t.Fatal("empty disease submission created the report file")
	}

	rec = client.do(http.MethodPost, "/select", url.Values{"disease": {"Fever"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("disease submit status = %d", rec.Code)
	}
	body = client.decode(rec)
	if body["medicine"] != "Dolo 650, Crocin" {
		t.Fatalf("medicine = %q", body["medicine"])
	}

	data, err := os.ReadFile(cfg.ReportsFile())
	if err != nil {
		t.Fatalf("read reports file: %v", err)
	}
	if !strings.HasPrefix(string(data), "asha1,Sita,30,9999999999,Fever,\"Dolo 650, Crocin\",") {
		t.Fatalf("report row = %q", data)
	}

	rec = client.do(http.MethodGet, "/history", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Sita") {
		t.Fatalf("history: status %d, body %q", rec.Code, rec.Body.String())
	}
}

func TestAdminExports(t *testing.T) {
	client, _ := newTestApp(t)

	rec := client.do(http.MethodPost, "/admin_login", url.Values{"username": {"admin"}, "password": {"adminpw"}})
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/home_admin" {
		t.Fatalf("admin login: status %d, location %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = client.do(http.MethodGet, "/export", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("/export status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); got != "attachment; filename=asha_users.csv" {
		t.Fatalf("disposition = %q", got)
	}
	if strings.Contains(rec.Body.String(), "pw1") {
		t.Fatalf("account export leaked a password: %q", rec.Body.String())
	}
	if !strings.HasPrefix(rec.Body.String(), "username,name,mobile,location,photo\n") {
		t.Fatalf("export header = %q", rec.Body.String())
	}

	rec = client.do(http.MethodGet, "/export_reports", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("/export_reports status = %d", rec.Code)
	}
}

func TestLogoutEndsSession(t *testing.T) {
	client, _ := newTestApp(t)

	client.do(http.MethodPost, "/login", url.Values{"username": {"asha1"}, "password": {"pw1"}})
	rec := client.do(http.MethodGet, "/logout", nil)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
		t.Fatalf("logout: status %d, location %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = client.do(http.MethodGet, "/page1", nil)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("session survived logout: status %d, location %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestPublicPages(t *testing.T) {
	client, _ := newTestApp(t)

	rec := client.do(http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("role select status = %d", rec.Code)
	}

	rec = client.do(http.MethodGet, "/emergency", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "108") {
		t.Fatalf("emergency: status %d, body %q", rec.Code, rec.Body.String())
	}
}

func TestAskWithoutMessage(t *testing.T) {
	client, _ := newTestApp(t)

	client.do(http.MethodPost, "/login", url.Values{"username": {"asha1"}, "password": {"pw1"}})

	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"message":""}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "sessionToken", Value: client.cookies["sessionToken"]})
	rec := httptest.NewRecorder()
	client.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("/ask status = %d", rec.Code)
	}
	body := client.decode(rec)
	if body["reply"] != "Please type a message." {
		t.Fatalf("reply = %q", body["reply"])
	}
}
