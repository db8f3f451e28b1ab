package adapter

import (
	"context"
	"fmt"
	"strings"

	"pinbook/internal/config"
	"pinbook/internal/logger"
	"pinbook/internal/utils"
)

// cleanupInstruction is the fixed prompt prepended to every transcript.
// The model must return the cleaned text and nothing else; any commentary
// would leak straight into the note field.
const cleanupInstruction = "Clean up the following voice transcription: " +
	"remove filler words, fix punctuation and obvious mis-hearings, and keep " +
	"the original language and meaning. Reply with the cleaned text only."

type geminiCleaner struct {
	client *utils.HTTPClient
	apiKey string
	model  string

	logger *logger.Logger
}

// NewGeminiCleaner constructs a [TextCleaner] backed by the Gemini
// generateContent endpoint. Without an API key every Clean call is a
// passthrough.
func NewGeminiCleaner(cleanupCfg config.ClientCleanup, logger *logger.Logger) (TextCleaner, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cleanupCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid cleanup base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cleanupCfg.RequestTimeout)

	return &geminiCleaner{
		client: client,
		apiKey: cleanupCfg.APIKey,
		model:  cleanupCfg.Model,
		logger: logger,
	}, nil
}

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

// Clean implements [TextCleaner]. It sends the transcript to the model with
// a fixed cleanup instruction and returns the model's reply. Any failure,
// including a missing API key, returns the input unchanged.
func (g *geminiCleaner) Clean(ctx context.Context, text string) string {
	log := g.logger.With().Str("func", "Clean").Logger()

	if strings.TrimSpace(text) == "" {
		return text
	}
	if g.apiKey == "" {
		log.Debug().Msg("no cleanup api key configured, returning raw transcript")
		return text
	}

	body := generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: cleanupInstruction + "\n\n" + text}}},
		},
	}

	var out generateResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", g.apiKey).
		SetBody(body).
		SetResult(&out).
		Post(fmt.Sprintf("/models/%s:generateContent", g.model))
	if err != nil {
		log.Warn().Err(err).Msg("cleanup request failed, returning raw transcript")
		return text
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Msg("cleanup returned an error status, returning raw transcript")
		return text
	}

	cleaned := extractGeneratedText(out)
	if cleaned == "" {
		log.Debug().Msg("cleanup produced no text, returning raw transcript")
		return text
	}

	return cleaned
}

func extractGeneratedText(out generateResponse) string {
	if len(out.Candidates) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, part := range out.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	return strings.TrimSpace(sb.String())
}
