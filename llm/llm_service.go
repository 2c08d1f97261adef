// Package llm wraps the Gemini API for natural-language query parsing and
// insight narration. Every call degrades to a deterministic fallback when
// no API key is configured or the API fails, so the rest of the service
// never depends on the model being reachable.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/arpitmittal98/shopsight/models"
)

const defaultModel = "gemini-2.0-flash"

// Service is the Gemini-backed language collaborator. A Service with an
// empty API key is valid and always answers from its fallbacks.
type Service struct {
	apiKey string
	model  string
}

// NewService creates a Service. An empty model selects the default.
func NewService(apiKey, model string) *Service {
	if model == "" {
		model = defaultModel
	}
	return &Service{apiKey: apiKey, model: model}
}

// Available reports whether an API key is configured.
func (s *Service) Available() bool { return s.apiKey != "" }

// ParseSearchQuery turns a natural-language product query into structured
// search parameters. Falls back to keyword matching when the model is
// unavailable or returns something unusable.
func (s *Service) ParseSearchQuery(ctx context.Context, query string) models.ParsedQuery {
	if !s.Available() || strings.TrimSpace(query) == "" {
		return FallbackParse(query)
	}

	prompt := fmt.Sprintf(`Parse this product search query into structured JSON.

Query: %q

Extract:
- keywords: list of all important words
- category: clothing type (shoes, dress, shirt, etc.) or null
- color: color name or null
- gender: "women", "men", "unisex" or null
- attributes: style attributes like "running", "casual", "formal"

Return ONLY valid JSON with these exact keys. Do not enclose the JSON in markdown or code blocks.`, query)

	text, err := s.generate(ctx, prompt)
	if err != nil {
		log.Printf("⚠️ [LLM] Query parsing failed, using fallback: %v", err)
		return FallbackParse(query)
	}

	repaired, err := jsonrepair.RepairJSON(stripCodeFences(text))
	if err != nil {
		log.Printf("⚠️ [LLM] Could not repair parsed query JSON: %v", err)
		return FallbackParse(query)
	}

	var parsed models.ParsedQuery
	if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
		log.Printf("⚠️ [LLM] Could not decode parsed query JSON: %v", err)
		return FallbackParse(query)
	}
	return parsed
}

// GenerateInsights produces a markdown analysis of a product's analytics.
// Falls back to a templated narrative when the model is unavailable.
func (s *Service) GenerateInsights(ctx context.Context, productName string, sales *models.SalesHistory, forecast *models.Forecast, segments *models.SegmentAnalysis) string {
	if !s.Available() {
		return FallbackInsights(productName, sales, forecast, segments)
	}

	text, err := s.generate(ctx, insightsPrompt(productName, sales, forecast, segments))
	if err != nil {
		log.Printf("⚠️ [LLM] Insight generation failed, using fallback: %v", err)
		return FallbackInsights(productName, sales, forecast, segments)
	}
	return strings.TrimSpace(text)
}

// generate runs a single-prompt completion, retrying twice on rate limits.
func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			wait := time.Duration(attempt*2) * time.Second
			log.Printf("⏳ [LLM] Retrying in %s (attempt %d/2)", wait, attempt)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, err := s.generateOnce(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !isRateLimited(err) {
			break
		}
	}
	return "", lastErr
}

func (s *Service) generateOnce(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content received from Gemini")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	if text == "" {
		return "", fmt.Errorf("no text content received from Gemini")
	}
	return text, nil
}

func isRateLimited(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "rate limit")
}

// stripCodeFences removes a surrounding markdown code block if the model
// ignored the plain-JSON instruction.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

func insightsPrompt(productName string, sales *models.SalesHistory, forecast *models.Forecast, segments *models.SegmentAnalysis) string {
	forecastStr := "N/A"
	if forecast != nil && len(forecast.Forecast) > 0 {
		parts := make([]string, 0, len(forecast.Forecast))
		for _, v := range forecast.Forecast {
			parts = append(parts, fmt.Sprintf("%d units", v))
		}
		forecastStr = strings.Join(parts, ", ")
	}

	trend := "stable"
	var trendPct float64
	if forecast != nil {
		trend = forecast.Trend
		trendPct = forecast.TrendPercentage
	}

	topSegment := "N/A"
	var topProb float64
	if segments != nil {
		topSegment = segments.TopSegment
		topProb = segments.TopSegmentProbability
	}

	return fmt.Sprintf(`You are a senior e-commerce analytics consultant. Analyze this product's performance and provide strategic, actionable insights.

**Product:** %s

**Sales Performance (Last 12 Months):**
- Total Sales: %d units
- Monthly Average: %.1f units
- Growth Rate: %.1f%%
- Peak Performance: %s
- Volatility: %.1f%%

**3-Month Forecast:**
- Predicted Sales: %s
- Trend Direction: %s (%.1f%%)

**Target Audience:**
- Primary Segment: %s (%.1f%%)

Provide a structured analysis with the following sections (use markdown formatting):

## Performance Summary
[2-3 sentences on overall sales performance, key strengths/concerns]

## Key Insights
- [Insight 1: Most important finding]
- [Insight 2: Notable trend or pattern]
- [Insight 3: Risk or opportunity]

## Recommendations
1. [Immediate action item]
2. [Strategic recommendation]
3. [Marketing/inventory suggestion]

Use clear markdown formatting (##, -, 1., **bold**). Be specific, data-driven, and actionable. Keep under 200 words.`,
		productName,
		sales.TotalSales, sales.AvgMonthlySales, sales.GrowthRate, sales.PeakMonth, sales.Volatility,
		forecastStr, trend, trendPct,
		topSegment, topProb)
}
