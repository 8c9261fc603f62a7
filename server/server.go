// Package server exposes the quiz HTTP API: test catalog, quiz runs,
// answer checking, uploads, and per-session missed-question history.
package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hazyhaar/examdeck/catalog"
	"github.com/hazyhaar/examdeck/examparse"
	"github.com/hazyhaar/examdeck/idgen"
	"github.com/hazyhaar/examdeck/quizstore"
)

// Server wires the catalog, the per-session store, and the parser behind
// the HTTP API.
type Server struct {
	cfg     Config
	logger  *slog.Logger
	catalog *catalog.Catalog
	store   *quizstore.Store
	parser  *examparse.Parser

	sessionID idgen.Generator
	uploadID  idgen.Generator
}

// New creates a Server. All collaborators are required except logger.
func New(cfg Config, cat *catalog.Catalog, store *quizstore.Store, parser *examparse.Parser, logger *slog.Logger) *Server {
	cfg.defaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:       cfg,
		logger:    logger,
		catalog:   cat,
		store:     store,
		parser:    parser,
		sessionID: idgen.UUIDv7(),
		uploadID:  idgen.Prefixed("u-", idgen.NanoID(8)),
	}
}

type sessionKey struct{}

func sessionFrom(ctx context.Context) string {
	sid, _ := ctx.Value(sessionKey{}).(string)
	return sid
}

// withSession assigns an anonymous session cookie on first contact and puts
// the session ID in the request context.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := ""
		if c, err := r.Cookie("sid"); err == nil && c.Value != "" {
			sid = c.Value
		}
		if sid == "" {
			sid = s.sessionID()
			http.SetCookie(w, &http.Cookie{
				Name:     "sid",
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sid)))
	})
}

// Routes builds the chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(s.withSession)

		r.Get("/api/tests", s.handleListTests)
		r.Get("/api/tests/{testID}/questions", s.handleQuestions)
		r.Post("/api/quiz/start", s.handleStartQuiz)
		r.Post("/api/quiz/results", s.handleResults)
		r.Post("/api/questions/{questionID}/check", s.handleCheck)
		r.Get("/api/questions/{questionID}/answer", s.handleAnswer)
		r.Post("/api/upload", s.handleUpload)
	})

	return r
}

// --- tests ---

func (s *Server) handleListTests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.URL.Query().Get("reload") == "1" {
		if err := s.catalog.Refresh(ctx); err != nil {
			writeError(w, 500, err)
			return
		}
	}

	list := s.catalog.List()

	uploads, err := s.store.Uploads(ctx, sessionFrom(ctx))
	if err != nil {
		writeError(w, 500, err)
		return
	}
	for _, t := range uploads {
		list = append(list, catalog.Summary{
			ID:            t.ID,
			Name:          t.Name,
			Description:   t.Description,
			QuestionCount: len(t.Questions),
		})
	}

	writeJSON(w, 200, list)
}

// quizQuestion is the player-facing projection: no correct answer, no
// explanation.
type quizQuestion struct {
	ID       string   `json:"id"`
	Number   int      `json:"number"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

func sanitize(qs []examparse.Question) []quizQuestion {
	out := make([]quizQuestion, len(qs))
	for i, q := range qs {
		out[i] = quizQuestion{ID: q.ID, Number: q.Number, Question: q.Question, Options: q.Options}
	}
	return out
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	test, err := s.lookupTest(ctx, sessionFrom(ctx), chi.URLParam(r, "testID"))
	if err != nil {
		writeError(w, 404, err)
		return
	}

	count := queryInt(r, "count", len(test.Questions))
	qs := s.drawQuestions(test.Questions, count)
	writeJSON(w, 200, map[string]any{
		"test_id":   test.ID,
		"name":      test.Name,
		"questions": sanitize(qs),
	})
}

// --- quiz runs ---

func (s *Server) handleStartQuiz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req struct {
		TestID    string `json:"test_id"`
		Count     int    `json:"count"`
		Mode      string `json:"mode"`
		TimeLimit int    `json:"time_limit_seconds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, err)
		return
	}

	sid := sessionFrom(ctx)
	test, err := s.lookupTest(ctx, sid, req.TestID)
	if err != nil {
		writeError(w, 404, err)
		return
	}

	pool := test.Questions
	switch req.Mode {
	case "", "regular":
	case "review_incorrect":
		missed, err := s.store.MissedQuestions(ctx, sid, test.ID)
		if err != nil {
			writeError(w, 500, err)
			return
		}
		pool = filterByID(pool, missed)
		if len(pool) == 0 {
			writeError(w, 400, fmt.Errorf("no missed questions recorded for test %s", test.ID))
			return
		}
	default:
		writeError(w, 400, fmt.Errorf("unknown mode %q", req.Mode))
		return
	}

	maxLimit := s.cfg.MaxTimeLimitMinutes * 60
	limit := req.TimeLimit
	if limit <= 0 || limit > maxLimit {
		limit = maxLimit
	}

	qs := s.drawQuestions(pool, req.Count)
	writeJSON(w, 200, map[string]any{
		"test_id":            test.ID,
		"name":               test.Name,
		"mode":               modeOrDefault(req.Mode),
		"time_limit_seconds": limit,
		"questions":          sanitize(qs),
	})
}

func modeOrDefault(mode string) string {
	if mode == "" {
		return "regular"
	}
	return mode
}

// drawQuestions shuffles a copy of the pool and caps it at both the
// requested count and the configured per-run maximum.
func (s *Server) drawQuestions(pool []examparse.Question, count int) []examparse.Question {
	qs := make([]examparse.Question, len(pool))
	copy(qs, pool)
	rand.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })

	if count <= 0 || count > len(qs) {
		count = len(qs)
	}
	if count > s.cfg.MaxQuestionsPerRun {
		count = s.cfg.MaxQuestionsPerRun
	}
	return qs[:count]
}

func filterByID(qs []examparse.Question, ids []string) []examparse.Question {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []examparse.Question
	for _, q := range qs {
		if want[q.ID] {
			out = append(out, q)
		}
	}
	return out
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req struct {
		TestID string   `json:"test_id"`
		Missed []string `json:"missed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, err)
		return
	}
	if req.TestID == "" {
		writeError(w, 400, fmt.Errorf("test_id required"))
		return
	}
	if err := s.store.RecordMissed(ctx, sessionFrom(ctx), req.TestID, req.Missed); err != nil {
		writeError(w, 500, err)
		return
	}
	writeJSON(w, 200, map[string]any{"status": "ok", "missed": len(req.Missed)})
}

// --- answers ---

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	qid := chi.URLParam(r, "questionID")
	var req struct {
		Choice int `json:"choice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, err)
		return
	}

	sid := sessionFrom(ctx)
	testID, q, err := s.lookupQuestion(ctx, sid, qid)
	if err != nil {
		writeError(w, 404, err)
		return
	}

	correct := q.CorrectIndex >= 0 && req.Choice == q.CorrectIndex
	if !correct {
		if err := s.store.AddMissed(ctx, sid, testID, qid); err != nil {
			s.logger.Warn("recording miss failed", "question", qid, "error", err)
		}
	}
	writeJSON(w, 200, map[string]any{"correct": correct})
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	qid := chi.URLParam(r, "questionID")
	_, q, err := s.lookupQuestion(ctx, sessionFrom(ctx), qid)
	if err != nil {
		writeError(w, 404, err)
		return
	}
	writeJSON(w, 200, map[string]any{
		"id":             q.ID,
		"correct_index":  q.CorrectIndex,
		"correct_letter": q.CorrectLetter,
		"explanation":    q.Explanation,
	})
}

// --- uploads ---

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		writeError(w, 413, fmt.Errorf("upload too large or malformed: %w", err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, 400, fmt.Errorf("missing file field: %w", err))
		return
	}
	defer file.Close()

	hint := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	test, err := s.parser.Parse(ctx, file, hint)
	if err != nil {
		writeError(w, 500, err)
		return
	}
	if len(test.Questions) == 0 {
		writeError(w, 422, fmt.Errorf("no questions found in %s", header.Filename))
		return
	}

	// Re-key under a session-scoped upload ID so uploads never collide with
	// catalog tests.
	uid := s.uploadID()
	test.ID = uid
	for i := range test.Questions {
		test.Questions[i].ID = fmt.Sprintf("%s-q%d", uid, test.Questions[i].Number)
	}

	if err := s.store.SaveUpload(ctx, sessionFrom(ctx), test); err != nil {
		writeError(w, 500, err)
		return
	}

	writeJSON(w, 201, catalog.Summary{
		ID:            test.ID,
		Name:          test.Name,
		QuestionCount: len(test.Questions),
	})
}

// --- lookups ---

var questionIDRe = regexp.MustCompile(`^(.+)-q\d+$`)

// lookupTest resolves a test ID against the catalog first, then the
// session's uploads.
func (s *Server) lookupTest(ctx context.Context, sid, testID string) (*examparse.Test, error) {
	if t, ok := s.catalog.Get(testID); ok {
		return t, nil
	}
	t, err := s.store.Upload(ctx, sid, testID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("unknown test: %s", testID)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Server) lookupQuestion(ctx context.Context, sid, questionID string) (string, *examparse.Question, error) {
	m := questionIDRe.FindStringSubmatch(questionID)
	if m == nil {
		return "", nil, fmt.Errorf("malformed question id: %s", questionID)
	}
	test, err := s.lookupTest(ctx, sid, m[1])
	if err != nil {
		return "", nil, err
	}
	for i := range test.Questions {
		if test.Questions[i].ID == questionID {
			return test.ID, &test.Questions[i], nil
		}
	}
	return "", nil, fmt.Errorf("unknown question: %s", questionID)
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func queryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
