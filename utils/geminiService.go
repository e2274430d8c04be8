package utils

import (
	"eduflow/config"
	"eduflow/models"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// SummaryFallback is served whenever the generative API cannot produce a
// course summary. AI failures never propagate to callers.
const SummaryFallback = "Unlock the secrets of this domain and accelerate your career with hands-on projects and expert guidance."

// Request/response shapes of the Gemini generateContent endpoint.
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string                 `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]interface{} `json:"responseSchema,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func newGeminiClient() *resty.Client {
	return resty.New().
		SetBaseURL(config.AppConfig.GeminiApiUrl).
		SetTimeout(time.Duration(config.AppConfig.GeminiTimeout) * time.Second)
}

// generateContent sends one prompt to the generative API and returns the
// text of the first candidate.
func generateContent(prompt, systemInstruction string, genConfig *geminiGenerationConfig) (string, error) {
	request := geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: genConfig,
	}
	if systemInstruction != "" {
		request.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: systemInstruction}}}
	}

	client := newGeminiClient()
	resp, err := client.R().
		SetQueryParam("key", config.AppConfig.GeminiApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post(fmt.Sprintf("/%s:generateContent", config.AppConfig.GeminiModel))
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("generative API returned status %d", resp.StatusCode())
	}

	var parsed geminiResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generative API returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// GetCourseSummary asks the generative API for a short course summary.
// Any failure degrades to the fixed fallback string.
func GetCourseSummary(courseTitle, description string) string {
	prompt := fmt.Sprintf(
		"Provide a 3-point bulleted summary of what a student will learn in this course: %q. Description: %s",
		courseTitle, description,
	)
	text, err := generateContent(prompt, "You are an educational assistant. Keep summaries concise and motivating.", nil)
	if err != nil {
		log.Printf("AI summary error: %v", err)
		return SummaryFallback
	}
	if text == "" {
		return "Summary unavailable."
	}
	return text
}

// GenerateLessonQuiz asks the generative API for one multiple-choice
// question about a lesson. It returns nil on any failure, including a
// response that does not match the expected shape; nil means "quiz
// generation unavailable", never an empty quiz.
func GenerateLessonQuiz(lessonTitle, content string) *models.QuizQuestion {
	prompt := fmt.Sprintf(
		"Generate one multiple-choice question to test knowledge of this lesson: %q. Content: %s",
		lessonTitle, content,
	)
	schema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"question":    map[string]interface{}{"type": "string"},
			"options":     map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
			"answerIndex": map[string]interface{}{"type": "number"},
		},
		"required": []string{"question", "options", "answerIndex"},
	}

	text, err := generateContent(
		prompt,
		"You are an expert tutor. Provide the question, 4 options, and the correct answer index.",
		&geminiGenerationConfig{ResponseMimeType: "application/json", ResponseSchema: schema},
	)
	if err != nil {
		log.Printf("AI quiz error: %v", err)
		return nil
	}

	var quiz models.QuizQuestion
	if err := json.Unmarshal([]byte(text), &quiz); err != nil {
		log.Printf("AI quiz error: malformed response: %v", err)
		return nil
	}
	if quiz.Question == "" || len(quiz.Options) != 4 || quiz.AnswerIndex < 0 || quiz.AnswerIndex > 3 {
		log.Printf("AI quiz error: response does not match quiz shape")
		return nil
	}
	return &quiz
}
