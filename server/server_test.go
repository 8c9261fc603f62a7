package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/hazyhaar/examdeck/catalog"
	"github.com/hazyhaar/examdeck/dbopen"
	"github.com/hazyhaar/examdeck/examparse"
	"github.com/hazyhaar/examdeck/quizstore"
	"github.com/hazyhaar/examdeck/server"
)

const sampleSource = `1. Why is the sky blue?
A. Rayleigh scattering
B. Mie scattering
C. Refraction
D. Dispersion
2. What color is grass?
A. Red
B. Green
C. Blue
D. Yellow
3. How many legs does a spider have?
A. Six
B. Ten
C. Eight
D. Four
ANSWER KEY
1. A The sky is blue due to Rayleigh scattering.
2. B
3. C
`

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "general.txt"), []byte(sampleSource), 0o644); err != nil {
		t.Fatal(err)
	}

	logger := slog.New(slog.DiscardHandler)
	parser := examparse.New(examparse.Config{Logger: logger})

	cat := catalog.New(dir, parser, logger)
	if err := cat.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	store := quizstore.NewStore(dbopen.OpenMemory(t), logger)
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}

	srv := server.New(server.Config{MaxQuestionsPerRun: 2}, cat, store, parser, logger)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return ts, &http.Client{Jar: jar}
}

func getJSON(t *testing.T, client *http.Client, url string, wantStatus int, out any) {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("GET %s = %d, want %d: %s", url, resp.StatusCode, wantStatus, body)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatal(err)
		}
	}
}

func postJSON(t *testing.T, client *http.Client, url string, body any, wantStatus int, out any) {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("POST %s = %d, want %d: %s", url, resp.StatusCode, wantStatus, raw)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatal(err)
		}
	}
}

func TestHealth(t *testing.T) {
	ts, client := newTestServer(t)
	var out map[string]string
	getJSON(t, client, ts.URL+"/health", 200, &out)
	if out["status"] != "ok" {
		t.Fatalf("status = %q", out["status"])
	}
}

func TestListTests(t *testing.T) {
	ts, client := newTestServer(t)
	var list []catalog.Summary
	getJSON(t, client, ts.URL+"/api/tests", 200, &list)
	if len(list) != 1 {
		t.Fatalf("got %d tests, want 1", len(list))
	}
	if list[0].ID != "general" || list[0].QuestionCount != 3 {
		t.Fatalf("unexpected summary: %+v", list[0])
	}
}

func TestQuestionsAreSanitized(t *testing.T) {
	ts, client := newTestServer(t)
	var out struct {
		Questions []map[string]any `json:"questions"`
	}
	getJSON(t, client, ts.URL+"/api/tests/general/questions?count=1", 200, &out)
	if len(out.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(out.Questions))
	}
	q := out.Questions[0]
	for _, field := range []string{"correct_index", "correct_letter", "explanation"} {
		if _, leaked := q[field]; leaked {
			t.Fatalf("field %q leaked to quiz view: %v", field, q)
		}
	}
	if _, ok := q["options"]; !ok {
		t.Fatalf("options missing: %v", q)
	}
}

func TestQuestionsUnknownTest(t *testing.T) {
	ts, client := newTestServer(t)
	getJSON(t, client, ts.URL+"/api/tests/nope/questions", 404, nil)
}

func TestStartQuizCapsCountAndTimeLimit(t *testing.T) {
	ts, client := newTestServer(t)
	var out struct {
		Mode      string           `json:"mode"`
		TimeLimit int              `json:"time_limit_seconds"`
		Questions []map[string]any `json:"questions"`
	}
	// Server was built with MaxQuestionsPerRun=2; ask for more than exists.
	postJSON(t, client, ts.URL+"/api/quiz/start", map[string]any{
		"test_id":            "general",
		"count":              50,
		"time_limit_seconds": 999999,
	}, 200, &out)

	if len(out.Questions) != 2 {
		t.Fatalf("got %d questions, want 2 (per-run cap)", len(out.Questions))
	}
	if out.Mode != "regular" {
		t.Fatalf("mode = %q, want regular", out.Mode)
	}
	if out.TimeLimit != 180*60 {
		t.Fatalf("time_limit_seconds = %d, want %d", out.TimeLimit, 180*60)
	}
}

func TestStartQuizUnknownMode(t *testing.T) {
	ts, client := newTestServer(t)
	postJSON(t, client, ts.URL+"/api/quiz/start", map[string]any{
		"test_id": "general",
		"mode":    "speedrun",
	}, 400, nil)
}

func TestCheckRecordsMissAndReviewMode(t *testing.T) {
	ts, client := newTestServer(t)

	var check struct {
		Correct bool `json:"correct"`
	}
	postJSON(t, client, ts.URL+"/api/questions/general-q1/check", map[string]any{"choice": 0}, 200, &check)
	if !check.Correct {
		t.Fatal("choice 0 on q1 should be correct")
	}

	postJSON(t, client, ts.URL+"/api/questions/general-q2/check", map[string]any{"choice": 3}, 200, &check)
	if check.Correct {
		t.Fatal("choice 3 on q2 should be wrong")
	}

	// The wrong answer feeds review_incorrect mode.
	var run struct {
		Questions []struct {
			ID string `json:"id"`
		} `json:"questions"`
	}
	postJSON(t, client, ts.URL+"/api/quiz/start", map[string]any{
		"test_id": "general",
		"mode":    "review_incorrect",
	}, 200, &run)
	if len(run.Questions) != 1 || run.Questions[0].ID != "general-q2" {
		t.Fatalf("review pool = %+v, want only general-q2", run.Questions)
	}
}

func TestReviewModeEmptyHistory(t *testing.T) {
	ts, client := newTestServer(t)
	postJSON(t, client, ts.URL+"/api/quiz/start", map[string]any{
		"test_id": "general",
		"mode":    "review_incorrect",
	}, 400, nil)
}

func TestResultsReplaceHistory(t *testing.T) {
	ts, client := newTestServer(t)

	postJSON(t, client, ts.URL+"/api/quiz/results", map[string]any{
		"test_id": "general",
		"missed":  []string{"general-q1", "general-q3"},
	}, 200, nil)

	var run struct {
		Questions []struct {
			ID string `json:"id"`
		} `json:"questions"`
	}
	postJSON(t, client, ts.URL+"/api/quiz/start", map[string]any{
		"test_id": "general",
		"mode":    "review_incorrect",
	}, 200, &run)
	if len(run.Questions) != 2 {
		t.Fatalf("review pool = %d questions, want 2", len(run.Questions))
	}

	// A clean run wipes the history.
	postJSON(t, client, ts.URL+"/api/quiz/results", map[string]any{
		"test_id": "general",
		"missed":  []string{},
	}, 200, nil)
	postJSON(t, client, ts.URL+"/api/quiz/start", map[string]any{
		"test_id": "general",
		"mode":    "review_incorrect",
	}, 400, nil)
}

func TestAnswerEndpoint(t *testing.T) {
	ts, client := newTestServer(t)
	var out struct {
		CorrectIndex  int    `json:"correct_index"`
		CorrectLetter string `json:"correct_letter"`
		Explanation   string `json:"explanation"`
	}
	getJSON(t, client, ts.URL+"/api/questions/general-q1/answer", 200, &out)
	if out.CorrectIndex != 0 || out.CorrectLetter != "A" {
		t.Fatalf("answer = %+v", out)
	}
	if !strings.Contains(out.Explanation, "Rayleigh") {
		t.Fatalf("explanation = %q", out.Explanation)
	}
}

func TestUploadFlow(t *testing.T) {
	ts, client := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "my quiz.txt")
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(part, sampleSource)
	mw.Close()

	resp, err := client.Post(ts.URL+"/api/upload", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 201 {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("upload = %d: %s", resp.StatusCode, raw)
	}
	var summary catalog.Summary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(summary.ID, "u-") {
		t.Fatalf("upload ID = %q, want u- prefix", summary.ID)
	}
	if summary.QuestionCount != 3 {
		t.Fatalf("QuestionCount = %d, want 3", summary.QuestionCount)
	}

	// The upload shows up in the session's test list and is playable.
	var list []catalog.Summary
	getJSON(t, client, ts.URL+"/api/tests", 200, &list)
	if len(list) != 2 {
		t.Fatalf("got %d tests after upload, want 2", len(list))
	}

	var check struct {
		Correct bool `json:"correct"`
	}
	postJSON(t, client, ts.URL+"/api/questions/"+summary.ID+"-q1/check", map[string]any{"choice": 0}, 200, &check)
	if !check.Correct {
		t.Fatal("uploaded q1 choice 0 should be correct")
	}
}

func TestUploadRejectsUnparseable(t *testing.T) {
	ts, client := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", "prose.txt")
	io.WriteString(part, "Nothing that looks like a question lives here.")
	mw.Close()

	resp, err := client.Post(ts.URL+"/api/upload", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 422 {
		t.Fatalf("upload = %d, want 422", resp.StatusCode)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	ts, client := newTestServer(t)

	postJSON(t, client, ts.URL+"/api/quiz/results", map[string]any{
		"test_id": "general",
		"missed":  []string{"general-q1"},
	}, 200, nil)

	// A fresh client gets its own session cookie and empty history.
	jar, _ := cookiejar.New(nil)
	other := &http.Client{Jar: jar}
	postJSON(t, other, ts.URL+"/api/quiz/start", map[string]any{
		"test_id": "general",
		"mode":    "review_incorrect",
	}, 400, nil)
}
