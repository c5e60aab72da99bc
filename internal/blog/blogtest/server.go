// Package blogtest provides an in-memory stand-in for the remote blog service, for tests.
package blogtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gorilla/mux"

	"github.com/2beens/blogdesk/internal/blog"
)

const (
	RouteList   = "list-blogs"
	RouteGet    = "get-blog"
	RouteCreate = "create-blog"
)

type Server struct {
	*httptest.Server

	mutex    sync.Mutex
	blogs    map[string]*blog.Blog
	order    []string
	calls    map[string]int
	statuses map[string]int
	created  [][]byte
	// closed when a handler should hold the response, see Hold
	gates map[string]chan struct{}
}

func NewServer() *Server {
	s := &Server{
		blogs:    make(map[string]*blog.Blog),
		calls:    make(map[string]int),
		statuses: make(map[string]int),
		gates:    make(map[string]chan struct{}),
	}

	r := mux.NewRouter()
	r.HandleFunc("/blogs", s.handleList).Methods("GET").Name(RouteList)
	r.HandleFunc("/blogs/{id}", s.handleGet).Methods("GET").Name(RouteGet)
	r.HandleFunc("/blogs", s.handleCreate).Methods("POST").Name(RouteCreate)

	s.Server = httptest.NewServer(r)
	return s
}

// Add stores blogs as if they were created earlier.
func (s *Server) Add(blogs ...*blog.Blog) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, b := range blogs {
		if _, ok := s.blogs[b.ID]; !ok {
			s.order = append(s.order, b.ID)
		}
		s.blogs[b.ID] = b
	}
}

// FailWith makes the given route respond with status until reset with 0.
func (s *Server) FailWith(route string, status int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.statuses[route] = status
}

// Hold blocks responses of route until the returned release func is called.
func (s *Server) Hold(route string) (release func()) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	gate := make(chan struct{})
	s.gates[route] = gate
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mutex.Lock()
			delete(s.gates, route)
			s.mutex.Unlock()
			close(gate)
		})
	}
}

func (s *Server) Calls(route string) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.calls[route]
}

// CreatedBodies returns the raw bodies of all POST /blogs requests.
func (s *Server) CreatedBodies() [][]byte {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append([][]byte(nil), s.created...)
}

func (s *Server) BlogsCount() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.blogs)
}

func (s *Server) enter(route string) (status int) {
	s.mutex.Lock()
	s.calls[route]++
	status = s.statuses[route]
	gate := s.gates[route]
	s.mutex.Unlock()

	if gate != nil {
		<-gate
	}
	return status
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	if status := s.enter(RouteList); status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}

	s.mutex.Lock()
	blogs := make([]*blog.Blog, 0, len(s.order))
	for _, id := range s.order {
		blogs = append(blogs, s.blogs[id])
	}
	s.mutex.Unlock()

	writeJSON(w, http.StatusOK, blogs)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	if status := s.enter(RouteGet); status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}

	id := mux.Vars(r)["id"]
	s.mutex.Lock()
	b, ok := s.blogs[id]
	s.mutex.Unlock()
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if status := s.enter(RouteCreate); status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		http.Error(w, "expected json", http.StatusUnsupportedMediaType)
		return
	}

	var b blog.Blog
	dec := json.NewDecoder(r.Body)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if err := json.Unmarshal(raw, &b); err != nil || b.ID == "" {
		http.Error(w, "bad blog", http.StatusBadRequest)
		return
	}

	s.mutex.Lock()
	s.created = append(s.created, raw)
	s.mutex.Unlock()

	s.Add(&b)
	writeJSON(w, http.StatusCreated, &b)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// FakeBlog returns a blog filled with fake data and the given id.
func FakeBlog(id string) *blog.Blog {
	likes := gofakeit.Number(0, 500)
	dislikes := gofakeit.Number(0, 50)
	return &blog.Blog{
		ID:          id,
		Title:       strings.TrimSuffix(gofakeit.Sentence(4), "."),
		Category:    []string{strings.ToUpper(gofakeit.Word()), "TECH"},
		Description: gofakeit.Sentence(12),
		Date:        gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()).UTC().Format(time.RFC3339),
		CoverImage:  gofakeit.URL(),
		Content:     gofakeit.Paragraph(3, 3, 10, blog.ParagraphSeparator),
		Likes:       &likes,
		Dislikes:    &dislikes,
	}
}

// FakeBlogs returns n fake blogs with ids "1".."n".
func FakeBlogs(n int) []*blog.Blog {
	blogs := make([]*blog.Blog, 0, n)
	for i := 1; i <= n; i++ {
		blogs = append(blogs, FakeBlog(strconv.Itoa(i)))
	}
	return blogs
}

func IntPtr(i int) *int {
	return &i
}

func (s *Server) String() string {
	return fmt.Sprintf("blogtest.Server[%s, %d blogs]", s.URL, s.BlogsCount())
}
