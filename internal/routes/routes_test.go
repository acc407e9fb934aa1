package routes_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/handlers"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/routes"
	"github.com/BruksfildServices01/salon-booking/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ---------- Fake appointment API ----------

type apiCall struct {
	Method string
	Path   string
	Body   map[string]any
}

type fakeAPI struct {
	mu       sync.Mutex
	calls    []apiCall
	lookup   string
	write    string
	status   int
	upstream *httptest.Server
}

func newFakeAPI(t *testing.T) *fakeAPI {
	f := &fakeAPI{lookup: `{"exists":false,"pastAppointment":false}`, write: `{}`, status: http.StatusOK}
	f.upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		call := apiCall{Method: r.Method, Path: r.URL.Path}
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			_ = json.Unmarshal(b, &call.Body)
		}
		f.calls = append(f.calls, call)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		if r.Method == http.MethodGet {
			_, _ = io.WriteString(w, f.lookup)
			return
		}
		_, _ = io.WriteString(w, f.write)
	}))
	t.Cleanup(f.upstream.Close)
	return f
}

func (f *fakeAPI) set(fn func(f *fakeAPI)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *fakeAPI) recorded() []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]apiCall(nil), f.calls...)
}

// ---------- Browser ----------

type browser struct {
	t      *testing.T
	engine *gin.Engine
	cookie *http.Cookie
}

func newBrowser(t *testing.T, api *fakeAPI) *browser {
	t.Helper()

	d := audit.NewDispatcher(audit.NewLogSink(zerolog.Nop()), zerolog.Nop())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = d.Close(ctx)
	})

	cfg := &config.Config{
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
		Timezone:      "UTC",
	}

	r := gin.New()
	routes.RegisterRoutes(r, cfg, routes.Deps{
		Repo:   repository.NewAppointmentAPIRepository(api.upstream.URL, 2*time.Second, nil),
		Store:  session.NewMemoryStore(),
		Audit:  d,
		Logger: zerolog.Nop(),
	})
	return &browser{t: t, engine: r}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}
	rec := httptest.NewRecorder()
	b.engine.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			b.cookie = ck
		}
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html")
	return b.do(req)
}

func (b *browser) postJSON(path string, body string) (*httptest.ResponseRecorder, handlers.ActionResponse) {
	b.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	rec := b.do(req)

	var resp handlers.ActionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		b.t.Fatalf("decode action response: %v (%s)", err, rec.Body.String())
	}
	return rec, resp
}

var draftForm = url.Values{
	"name":            {"Ana"},
	"date":            {"2030-02-03"},
	"time":            {"11:30"},
	"service":         {"manicure"},
	"specialRequests": {"gel"},
}

const draftJSON = `{"name":"Ana","date":"2030-02-03","time":"11:30","service":"manicure","specialRequests":"gel"}`

const upcomingJSON = `{"exists":true,"pastAppointment":false,"appointment":{"phone":"555-1234","name":"Bea","date":"2030-01-02T00:00:00.000Z","time":"10:00","service":"facial","specialRequests":"quiet"}}`

// ---------- Tests ----------

func TestHealth(t *testing.T) {
	b := newBrowser(t, newFakeAPI(t))
	rec := b.get("/health")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("health: %d %s", rec.Code, rec.Body.String())
	}
}

func TestPage_InitialRender(t *testing.T) {
	b := newBrowser(t, newFakeAPI(t))
	rec := b.get("/")

	body := rec.Body.String()
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	if !strings.Contains(body, `name="phone"`) || !strings.Contains(body, "Check Appointment") {
		t.Errorf("phone form missing")
	}
	if strings.Contains(body, "create-form") || strings.Contains(body, "update-form") {
		t.Errorf("no branch should be shown before a lookup")
	}
	if b.cookie == nil {
		t.Errorf("session cookie should be set")
	}
}

func TestCheck_NotFoundShowsEmptyCreateForm(t *testing.T) {
	api := newFakeAPI(t)
	b := newBrowser(t, api)

	rec := b.post("/check", url.Values{"phone": {"555-1234"}})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to /, got %d %s", rec.Code, rec.Header().Get("Location"))
	}

	body := b.get("/").Body.String()
	if !strings.Contains(body, "Create Appointment") {
		t.Errorf("create form missing")
	}
	if !strings.Contains(body, `name="name" placeholder="Name" value=""`) {
		t.Errorf("create form should start empty")
	}
	if !strings.Contains(body, "No appointment found. You can create a new one.") || !strings.Contains(body, `class="toast toast-info"`) {
		t.Errorf("info toast missing")
	}
	if !strings.Contains(body, `value="555-1234"`) {
		t.Errorf("phone input should keep its value")
	}

	if again := b.get("/").Body.String(); strings.Contains(again, "No appointment found") {
		t.Errorf("toast should only be shown once")
	}

	calls := api.recorded()
	if len(calls) != 1 || calls[0].Method != http.MethodGet || calls[0].Path != "/appointments/555-1234" {
		t.Errorf("api calls: %+v", calls)
	}
}

func TestCheck_UpcomingShowsExistingAndUpdateForm(t *testing.T) {
	api := newFakeAPI(t)
	api.set(func(f *fakeAPI) { f.lookup = upcomingJSON })
	b := newBrowser(t, api)

	b.post("/check", url.Values{"phone": {"555-1234"}})
	body := b.get("/").Body.String()

	for _, want := range []string{
		"Existing Appointment",
		"Name: Bea",
		"Date: 1/2/2030",
		"Service: Facial",
		"Special Requests: quiet",
		"Appointment found!",
		`value="2030-01-02"`,
		`<option value="facial" selected>`,
		"delete-form",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(body, "create-form") {
		t.Errorf("create form must not be shown for an upcoming appointment")
	}
}

func TestCheck_PastWarnsAndOffersCreate(t *testing.T) {
	api := newFakeAPI(t)
	api.set(func(f *fakeAPI) {
		f.lookup = strings.Replace(upcomingJSON, `"pastAppointment":false`, `"pastAppointment":true`, 1)
	})
	b := newBrowser(t, api)

	_, resp := b.postJSON("/check", `{"phone":"555-1234"}`)

	if resp.State.Mode != "create" {
		t.Errorf("mode: got %q", resp.State.Mode)
	}
	if len(resp.Toasts) != 1 || resp.Toasts[0].Level != "warning" {
		t.Errorf("toasts: %+v", resp.Toasts)
	}
}

func TestCreate_JSONFlow(t *testing.T) {
	api := newFakeAPI(t)
	b := newBrowser(t, api)

	b.postJSON("/check", `{"phone":"555-1234"}`)
	rec, resp := b.postJSON("/appointments/create", draftJSON)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d %s", rec.Code, rec.Body.String())
	}
	if resp.State.Mode != "none" || resp.State.Lookup != nil || resp.State.Draft.Name != "" {
		t.Errorf("state should be cleared: %+v", resp.State)
	}
	if len(resp.Toasts) != 1 || resp.Toasts[0].Message != "Appointment created successfully!" {
		t.Errorf("toasts: %+v", resp.Toasts)
	}

	calls := api.recorded()
	last := calls[len(calls)-1]
	if last.Method != http.MethodPost || last.Path != "/appointments" {
		t.Fatalf("api call: %+v", last)
	}
	if last.Body["phone"] != "555-1234" || last.Body["service"] != "manicure" || last.Body["specialRequests"] != "gel" {
		t.Errorf("api body: %+v", last.Body)
	}
}

func TestCreate_FormPostRedirects(t *testing.T) {
	api := newFakeAPI(t)
	b := newBrowser(t, api)

	b.post("/check", url.Values{"phone": {"555-1234"}})
	rec := b.post("/appointments/create", draftForm)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: %d", rec.Code)
	}

	body := b.get("/").Body.String()
	if !strings.Contains(body, "Appointment created successfully!") {
		t.Errorf("success toast missing")
	}
	if strings.Contains(body, "create-form") {
		t.Errorf("form should be closed after success")
	}
}

func TestCreate_RejectionKeepsForm(t *testing.T) {
	api := newFakeAPI(t)
	api.set(func(f *fakeAPI) { f.write = `{"message":"That time is already booked."}` })
	b := newBrowser(t, api)

	b.postJSON("/check", `{"phone":"555-1234"}`)
	rec, resp := b.postJSON("/appointments/create", draftJSON)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status: %d", rec.Code)
	}
	if resp.Error == nil || resp.Error.Code != "rejected" {
		t.Errorf("error: %+v", resp.Error)
	}
	if resp.State.Mode != "create" || resp.State.Draft.Name != "Ana" {
		t.Errorf("form should be kept for correction: %+v", resp.State)
	}
	if len(resp.Toasts) != 1 || resp.Toasts[0].Level != "error" || resp.Toasts[0].Message != "That time is already booked." {
		t.Errorf("toasts: %+v", resp.Toasts)
	}
}

func TestCheck_APIFailureLeavesStateUntouched(t *testing.T) {
	api := newFakeAPI(t)
	api.set(func(f *fakeAPI) { f.lookup = upcomingJSON })
	b := newBrowser(t, api)
	b.postJSON("/check", `{"phone":"555-1234"}`)

	api.set(func(f *fakeAPI) { f.status = http.StatusInternalServerError })
	rec, resp := b.postJSON("/check", `{"phone":"555-0000"}`)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status: %d", rec.Code)
	}
	if resp.State.Mode != "updateOrDelete" || resp.State.Phone != "555-1234" {
		t.Errorf("state should be untouched: %+v", resp.State)
	}
	if len(resp.Toasts) != 1 || resp.Toasts[0].Message != "Error checking appointment." {
		t.Errorf("toasts: %+v", resp.Toasts)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	api := newFakeAPI(t)
	api.set(func(f *fakeAPI) { f.lookup = upcomingJSON })
	b := newBrowser(t, api)

	b.postJSON("/check", `{"phone":"555-1234"}`)
	_, resp := b.postJSON("/appointments/update", draftJSON)
	if resp.State.Mode != "none" || resp.Toasts[0].Message != "Appointment updated successfully!" {
		t.Fatalf("update: %+v", resp)
	}

	calls := api.recorded()
	upd := calls[len(calls)-1]
	if upd.Method != http.MethodPut || upd.Path != "/appointments/555-1234" {
		t.Errorf("update call: %+v", upd)
	}
	if _, ok := upd.Body["phone"]; ok {
		t.Errorf("update body must not carry the phone: %+v", upd.Body)
	}

	b.postJSON("/check", `{"phone":"555-1234"}`)
	_, resp = b.postJSON("/appointments/delete", `{}`)
	if resp.State.Mode != "none" || resp.Toasts[0].Message != "Appointment deleted successfully!" {
		t.Fatalf("delete: %+v", resp)
	}
	calls = api.recorded()
	if del := calls[len(calls)-1]; del.Method != http.MethodDelete || del.Path != "/appointments/555-1234" {
		t.Errorf("delete call: %+v", del)
	}
}

func TestDelete_WithoutLookupIsRefused(t *testing.T) {
	api := newFakeAPI(t)
	b := newBrowser(t, api)

	rec, resp := b.postJSON("/appointments/delete", `{}`)

	if rec.Code != http.StatusBadRequest || resp.Error == nil || resp.Error.Code != "invalid_mode" {
		t.Errorf("expected invalid_mode, got %d %+v", rec.Code, resp.Error)
	}
	if len(api.recorded()) != 0 {
		t.Errorf("no api call expected")
	}
}

func TestAPIState(t *testing.T) {
	api := newFakeAPI(t)
	b := newBrowser(t, api)
	b.post("/check", url.Values{"phone": {"555-1234"}})

	rec := b.get("/api/state")
	var st struct {
		Phone string `json:"phone"`
		Mode  string `json:"mode"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Phone != "555-1234" || st.Mode != "create" {
		t.Errorf("state: %+v", st)
	}

	if body := b.get("/").Body.String(); !strings.Contains(body, "No appointment found") {
		t.Errorf("reading the state must not consume toasts")
	}
}

func TestNoRoute(t *testing.T) {
	b := newBrowser(t, newFakeAPI(t))
	rec := b.get("/nope")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), `"error_code":"not_found"`) {
		t.Errorf("no route: %d %s", rec.Code, rec.Body.String())
	}
}
