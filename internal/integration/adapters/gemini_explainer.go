// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/budget-dashboard/backend/internal/application/adapter"
)

const defaultGeminiModel = "gemini-2.5-flash-lite"

// GeminiExplainer implements the adapter.PlanExplainer interface using Google Gemini.
type GeminiExplainer struct {
	apiKey    string
	modelName string
	timeout   time.Duration
}

// NewGeminiExplainer creates a new Gemini explainer instance.
func NewGeminiExplainer(apiKey, modelName string, timeout time.Duration) *GeminiExplainer {
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	return &GeminiExplainer{
		apiKey:    apiKey,
		modelName: modelName,
		timeout:   timeout,
	}
}

// IsAvailable checks if the Gemini explainer is properly configured.
func (s *GeminiExplainer) IsAvailable() bool {
	return s.apiKey != ""
}

// Explain asks Gemini to describe the plan in a few sentences.
func (s *GeminiExplainer) Explain(ctx context.Context, request *adapter.PlanExplanationRequest) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini explainer is not configured")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", classifyExplainError(fmt.Errorf("failed to create gemini client: %w", err))
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.4)
	model.SetMaxOutputTokens(400)

	resp, err := model.GenerateContent(ctx, genai.Text(buildExplanationPrompt(request)))
	if err != nil {
		return "", classifyExplainError(fmt.Errorf("failed to generate content: %w", err))
	}

	text, err := responseText(resp)
	if err != nil {
		return "", classifyExplainError(err)
	}
	return text, nil
}

// buildExplanationPrompt creates the prompt for Gemini.
func buildExplanationPrompt(request *adapter.PlanExplanationRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance assistant. Explain the debt payoff plan below to the user in plain English.

RULES:
- Use at most four sentences and no lists or markdown.
- Explain that the avalanche method pays the highest interest rate first to minimise total interest.
- Mention which debt receives the extra payment and the total interest of the plan.
- Do not invent numbers that are not listed below.

PLAN (in payoff priority order):
`)

	for i, entry := range request.Entries {
		sb.WriteString(fmt.Sprintf("%d. %s: pays $%s per month, paid off in %d months, $%s interest, $%s total\n",
			i+1,
			entry.DebtName,
			entry.MonthlyPayment.StringFixed(2),
			entry.MonthsToPayoff,
			entry.TotalInterest.StringFixed(2),
			entry.TotalPaid.StringFixed(2),
		))
	}

	sb.WriteString(fmt.Sprintf("\nEXTRA MONTHLY PAYMENT: $%s\n", request.ExtraPayment))
	sb.WriteString(fmt.Sprintf("TOTAL DEBT: $%s\n", request.Summary.TotalDebt.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("TOTAL INTEREST: $%s\n", request.Summary.TotalInterest.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("AVERAGE MONTHS TO PAYOFF: %d\n", request.Summary.AverageMonthsRounded))

	return sb.String()
}

// responseText extracts the first text part of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			cleaned := strings.TrimSpace(string(text))
			if cleaned != "" {
				return cleaned, nil
			}
		}
	}

	return "", fmt.Errorf("no text content in response")
}
