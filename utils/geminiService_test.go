package utils

import (
	"eduflow/config"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGemini serves a canned generateContent response and points the
// gateway config at it.
func fakeGemini(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config.AppConfig = &config.Config{
		GeminiApiKey:  "test-key",
		GeminiApiUrl:  server.URL,
		GeminiModel:   "test-model",
		GeminiTimeout: 2,
	}
}

func candidateResponse(text string) string {
	data, _ := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	})
	return string(data)
}

func TestGetCourseSummary(t *testing.T) {
	fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		fmt.Fprint(w, candidateResponse("- You will learn things."))
	})

	summary := GetCourseSummary("Go In Action", "Idiomatic Go.")
	assert.Equal(t, "- You will learn things.", summary)
}

func TestGetCourseSummaryFallsBackOnServerError(t *testing.T) {
	fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	assert.Equal(t, SummaryFallback, GetCourseSummary("Go In Action", "Idiomatic Go."))
}

func TestGetCourseSummaryFallsBackWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // nothing listening

	config.AppConfig = &config.Config{
		GeminiApiKey:  "test-key",
		GeminiApiUrl:  server.URL,
		GeminiModel:   "test-model",
		GeminiTimeout: 1,
	}

	assert.Equal(t, SummaryFallback, GetCourseSummary("Go In Action", "Idiomatic Go."))
}

func TestGenerateLessonQuiz(t *testing.T) {
	fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, candidateResponse(`{"question":"What does BFS visit first?","options":["Deepest node","Siblings","Random node","Leaves"],"answerIndex":1}`))
	})

	quiz := GenerateLessonQuiz("Graph Theory", "BFS, DFS, and Dijkstra's algorithm explained.")
	require.NotNil(t, quiz)
	assert.Equal(t, "What does BFS visit first?", quiz.Question)
	assert.Len(t, quiz.Options, 4)
	assert.Equal(t, 1, quiz.AnswerIndex)
}

func TestGenerateLessonQuizMalformedResponse(t *testing.T) {
	fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, candidateResponse("sorry, here is your quiz: ..."))
	})

	assert.Nil(t, GenerateLessonQuiz("Graph Theory", "BFS and DFS."))
}

func TestGenerateLessonQuizWrongShape(t *testing.T) {
	// Parseable JSON, but not a usable quiz: only three options
	fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, candidateResponse(`{"question":"Q","options":["a","b","c"],"answerIndex":0}`))
	})
	assert.Nil(t, GenerateLessonQuiz("Graph Theory", "BFS and DFS."))

	// Answer index outside the options
	fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, candidateResponse(`{"question":"Q","options":["a","b","c","d"],"answerIndex":7}`))
	})
	assert.Nil(t, GenerateLessonQuiz("Graph Theory", "BFS and DFS."))
}

func TestGenerateLessonQuizUpstreamFailure(t *testing.T) {
	fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	assert.Nil(t, GenerateLessonQuiz("Graph Theory", "BFS and DFS."))
}
