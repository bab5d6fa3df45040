package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aoop-portal/internal/content"
)

func TestGetQuizHidesAnswers(t *testing.T) {
	server := httptest.NewServer(newTestMux(WSConfig{}))
	defer server.Close()

	resp, err := http.Get(server.URL + "/quizzes/" + content.DefaultQuizID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	questions := body["questions"].([]any)
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	choice := questions[0].(map[string]any)["choices"].([]any)[0].(map[string]any)
	if _, leaked := choice["correct"]; leaked {
		t.Fatalf("correct flag leaked to client: %+v", choice)
	}
}

func TestGetUnknownQuiz(t *testing.T) {
	server := httptest.NewServer(newTestMux(WSConfig{}))
	defer server.Close()

	resp, err := http.Get(server.URL + "/quizzes/missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestGradeEndpoint(t *testing.T) {
	server := httptest.NewServer(newTestMux(WSConfig{}))
	defer server.Close()

	tests := []struct {
		name    string
		body    string
		status  int
		tier    string
		matched float64
	}{
		{name: "two of three", body: `{"answers":{"q1":"a","q2":"b","q3":"a"}}`, status: http.StatusOK, tier: "good", matched: 2},
		{name: "none", body: `{"answers":{"q1":"b","q2":"a","q3":"b"}}`, status: http.StatusOK, tier: "needs_review", matched: 0},
		{name: "all", body: `{"answers":{"q1":"a","q2":"b","q3":"c"}}`, status: http.StatusOK, tier: "excellent", matched: 3},
		{name: "malformed", body: `{"answers":`, status: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(server.URL+"/quizzes/"+content.DefaultQuizID+"/grade", "application/json", strings.NewReader(tc.body))
			if err != nil {
				t.Fatalf("post: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.StatusCode)
			}
			if tc.status != http.StatusOK {
				return
			}
			var body map[string]any
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			score := body["score"].(map[string]any)
			if body["tier"] != tc.tier || score["matched"] != tc.matched {
				t.Fatalf("expected %s with %v matched, got %+v", tc.tier, tc.matched, body)
			}
		})
	}
}

func TestListSections(t *testing.T) {
	server := httptest.NewServer(newTestMux(WSConfig{}))
	defer server.Close()

	resp, err := http.Get(server.URL + "/sections")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	var sections []map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&sections); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(sections) != 6 || sections[0]["id"] != "home" || sections[5]["id"] != "test" {
		t.Fatalf("unexpected sections %+v", sections)
	}
}
