// Package testutil provides testing utilities.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Article is one search hit served by the fake search endpoint.
type Article struct {
	PageID  int    `json:"pageid"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// MockAPI is an in-memory REST backend for testing. Every top-level path
// segment is a collection: GET/POST /{c}, GET/PUT/DELETE /{c}/{id}.
// /w/api.php serves a Wikipedia-style search response.
type MockAPI struct {
	Server *httptest.Server

	mu          sync.Mutex
	collections map[string][]map[string]any
	calls       map[string]int // "METHOD collection" -> count
	total       int

	// Error injection for testing
	failures map[string]int  // "METHOD collection" -> status
	garbled  map[string]bool // "METHOD collection" -> 2xx with invalid body

	articles   []Article
	lastSearch map[string]string
}

// NewMockAPI starts a MockAPI and closes it when the test ends.
func NewMockAPI(t testing.TB) *MockAPI {
	t.Helper()
	m := &MockAPI{
		collections: make(map[string][]map[string]any),
		calls:       make(map[string]int),
		failures:    make(map[string]int),
		garbled:     make(map[string]bool),
	}

	r := mux.NewRouter()
	r.HandleFunc("/w/api.php", m.search).Methods(http.MethodGet)
	r.HandleFunc("/{collection}", m.list).Methods(http.MethodGet)
	r.HandleFunc("/{collection}", m.create).Methods(http.MethodPost)
	r.HandleFunc("/{collection}/{id}", m.get).Methods(http.MethodGet)
	r.HandleFunc("/{collection}/{id}", m.update).Methods(http.MethodPut)
	r.HandleFunc("/{collection}/{id}", m.remove).Methods(http.MethodDelete)
	r.Use(m.record)

	m.Server = httptest.NewServer(r)
	t.Cleanup(m.Server.Close)
	return m
}

// URL returns the base URL of a collection.
func (m *MockAPI) URL(collection string) string {
	return m.Server.URL + "/" + collection
}

// SearchURL returns the URL of the search endpoint.
func (m *MockAPI) SearchURL() string {
	return m.Server.URL + "/w/api.php"
}

// Seed stores rec (any JSON-encodable value) in a collection with a fresh
// id and returns the id. Seeding does not count as a call.
func (m *MockAPI) Seed(collection string, rec any) string {
	obj := toObject(rec)
	id := uuid.NewString()
	obj["id"] = id

	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], obj)
	return id
}

// Records returns the stored records of a collection.
func (m *MockAPI) Records(collection string) []map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]map[string]any, len(m.collections[collection]))
	copy(out, m.collections[collection])
	return out
}

// Calls returns how many requests hit method on collection.
func (m *MockAPI) Calls(method, collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method+" "+collection]
}

// TotalCalls returns the number of requests served.
func (m *MockAPI) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}

// Fail makes every request for method on collection answer with status.
func (m *MockAPI) Fail(method, collection string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[method+" "+collection] = status
}

// Garble makes method on collection succeed on the server side but answer
// with a body that is not JSON.
func (m *MockAPI) Garble(method, collection string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.garbled[method+" "+collection] = true
}

// SetArticles sets the search hits.
func (m *MockAPI) SetArticles(articles ...Article) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.articles = articles
}

// LastSearch returns the query parameters of the last search request.
func (m *MockAPI) LastSearch() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastSearch
}

func (m *MockAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		collection := strings.Split(strings.Trim(r.URL.Path, "/"), "/")[0]
		key := r.Method + " " + collection

		m.mu.Lock()
		m.calls[key]++
		m.total++
		status := m.failures[key]
		m.mu.Unlock()

		if status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *MockAPI) isGarbled(r *http.Request) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.garbled[r.Method+" "+mux.Vars(r)["collection"]]
}

func (m *MockAPI) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.Records(mux.Vars(r)["collection"]))
}

func (m *MockAPI) create(w http.ResponseWriter, r *http.Request) {
	var obj map[string]any
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	obj["id"] = uuid.NewString()

	m.mu.Lock()
	c := mux.Vars(r)["collection"]
	m.collections[c] = append(m.collections[c], obj)
	m.mu.Unlock()

	if m.isGarbled(r) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("<html>ok</html>"))
		return
	}
	writeJSON(w, http.StatusCreated, obj)
}

func (m *MockAPI) get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexOf(vars["collection"], vars["id"]); i >= 0 {
		writeJSON(w, http.StatusOK, m.collections[vars["collection"]][i])
		return
	}
	http.Error(w, `"Not found"`, http.StatusNotFound)
}

func (m *MockAPI) update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var obj map[string]any
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(vars["collection"], vars["id"])
	if i < 0 {
		http.Error(w, `"Not found"`, http.StatusNotFound)
		return
	}
	cur := m.collections[vars["collection"]][i]
	for k, v := range obj {
		cur[k] = v
	}
	cur["id"] = vars["id"]
	writeJSON(w, http.StatusOK, cur)
}

func (m *MockAPI) remove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	c := vars["collection"]
	i := m.indexOf(c, vars["id"])
	if i < 0 {
		http.Error(w, `"Not found"`, http.StatusNotFound)
		return
	}
	removed := m.collections[c][i]
	m.collections[c] = append(m.collections[c][:i], m.collections[c][i+1:]...)
	writeJSON(w, http.StatusOK, removed)
}

func (m *MockAPI) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := make(map[string]string, len(q))
	for k := range q {
		params[k] = q.Get(k)
	}

	m.mu.Lock()
	m.lastSearch = params
	hits := append([]Article(nil), m.articles...)
	m.mu.Unlock()

	if hits == nil {
		hits = []Article{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"batchcomplete": "",
		"query":         map[string]any{"search": hits},
	})
}

// indexOf must be called with m.mu held.
func (m *MockAPI) indexOf(collection, id string) int {
	for i, obj := range m.collections[collection] {
		if obj["id"] == id {
			return i
		}
	}
	return -1
}

func toObject(v any) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		panic(err)
	}
	return obj
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
