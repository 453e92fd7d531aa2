package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/VishvKaneria/dynamic-active-lms/internal/models"
)

// InsightsService turns an analytics report into a short piece of teaching
// advice via an OpenAI-compatible chat completions API.
type InsightsService struct {
	httpClient *http.Client
	apiKey     string
	apiURL     string
	model      string
}

func NewInsightsService(apiKey, apiURL, model string) *InsightsService {
	return &InsightsService{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
	}
}

func (s *InsightsService) IsAvailable() bool {
	return s.apiKey != ""
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const insightsSystemPrompt = `You are an experienced K-12 teaching assistant. You will receive aggregate quiz statistics for one class: overall scores, per-question correct rates with the most common wrong answers, and per-student results. Write a short plain-text summary (4-8 sentences) for the teacher: how the class did overall, which questions or topics caused the most trouble, and one or two concrete suggestions for the next lesson. Do not use markdown, bullet lists or headings. Do not repeat the raw numbers back verbatim for every question; focus on what stands out.`

func (s *InsightsService) GenerateInsights(quiz *models.Quiz, report Report) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("AI insights are not configured")
	}

	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: insightsSystemPrompt},
			{Role: "user", Content: buildInsightsPrompt(quiz, report)},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", s.apiURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse API response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("API error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from AI")
	}

	return cleanInsightsText(chatResp.Choices[0].Message.Content), nil
}

// buildInsightsPrompt flattens the report into plain text the model can read.
func buildInsightsPrompt(quiz *models.Quiz, report Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Quiz: %q (subject: %s)\n", quiz.Title, quiz.Subject)
	ov := report.ClassOverview
	fmt.Fprintf(&b, "Students: %d, average score %.2f of %d questions, highest %d, lowest %d.\n",
		ov.TotalStudents, ov.AverageScore, len(quiz.Questions), ov.Highest, ov.Lowest)
	fmt.Fprintf(&b, "Score distribution: %d full marks, %d partial, %d zero.\n",
		ov.ScoreDistribution.FullMarks, ov.ScoreDistribution.Partial, ov.ScoreDistribution.Zero)

	b.WriteString("Per-question results:\n")
	for i, qa := range report.QuestionAnalysis {
		fmt.Fprintf(&b, "%d. %q: %.1f%% correct", i+1, qa.Question, qa.CorrectRate)
		if qa.MostCommonWrong != nil {
			fmt.Fprintf(&b, ", most common wrong answer %q", *qa.MostCommonWrong)
		}
		b.WriteString("\n")
	}

	b.WriteString("Per-student results (latest attempt):\n")
	for _, fb := range report.StudentFeedback {
		fmt.Fprintf(&b, "- %s: %d/%d (%.0f%%)\n", fb.StudentID, fb.Score, fb.Total, fb.AccuracyRate)
	}

	return b.String()
}

func cleanInsightsText(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}
	return strings.TrimSpace(content)
}
