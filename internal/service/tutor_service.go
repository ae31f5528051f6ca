package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/classhub/classhub-backend/internal/config"
)

// Fallback answers returned when the text-generation dependency fails.
// Tutoring is best-effort: the request itself never errors out.
const (
	TutorUnavailableAnswer = "The AI tutor is unavailable right now. Please try again in a moment."
	TutorNoAnswerFallback  = "The AI tutor couldn't come up with an answer. Try rephrasing your question."
)

// TutorService is a passthrough to a Gemini-style generateContent endpoint
// with a fixed upper bound on wait time.
type TutorService struct {
	client *http.Client
	apiURL string
	apiKey string
	log    zerolog.Logger
}

// NewTutorService creates a new TutorService.
func NewTutorService(cfg *config.Config, log zerolog.Logger) *TutorService {
	return &TutorService{
		client: &http.Client{Timeout: cfg.TutorTimeout},
		apiURL: cfg.TutorAPIURL,
		apiKey: cfg.TutorAPIKey,
		log:    log.With().Str("component", "tutor_service").Logger(),
	}
}

// generateContent wire format.
type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// Ask sends the student's question to the text-generation endpoint and
// returns the answer text. Timeouts, non-2xx statuses, and malformed
// responses all degrade to a deterministic fallback string.
func (s *TutorService) Ask(ctx context.Context, question, studyContext string) string {
	prompt := "You are a helpful AI tutor for students.\n\n"
	if studyContext != "" {
		prompt += fmt.Sprintf("Context: %s\n\n", studyContext)
	}
	prompt += fmt.Sprintf("Student Question: %s\n\n", question)
	prompt += "Provide a clear, concise, and educational response suitable for a student. Keep it simple and easy to understand."

	payload := generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		s.log.Error().Err(err).Msg("Encode tutor request")
		return TutorUnavailableAnswer
	}

	endpoint := s.apiURL
	if s.apiKey != "" {
		endpoint += "?key=" + url.QueryEscape(s.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		s.log.Error().Err(err).Msg("Build tutor request")
		return TutorUnavailableAnswer
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn().Err(err).Msg("Tutor endpoint unreachable")
		return TutorUnavailableAnswer
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.log.Warn().Int("status", resp.StatusCode).Msg("Tutor endpoint returned non-success")
		return TutorUnavailableAnswer
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		s.log.Warn().Err(err).Msg("Decode tutor response")
		return TutorUnavailableAnswer
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return TutorNoAnswerFallback
	}
	return parsed.Candidates[0].Content.Parts[0].Text
}
