package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"

	"github.com/budget-dashboard/backend/internal/application/adapter"
	"github.com/budget-dashboard/backend/internal/domain/entity"
)

func TestGeminiExplainer_IsAvailable(t *testing.T) {
	if NewGeminiExplainer("", "", 0).IsAvailable() {
		t.Error("expected explainer without api key to be unavailable")
	}
	if !NewGeminiExplainer("key", "", 0).IsAvailable() {
		t.Error("expected explainer with api key to be available")
	}
}

func TestGeminiExplainer_DefaultModel(t *testing.T) {
	explainer := NewGeminiExplainer("key", "", 0)
	if explainer.modelName != defaultGeminiModel {
		t.Errorf("expected %s, got %s", defaultGeminiModel, explainer.modelName)
	}
}

func TestGeminiExplainer_ExplainWithoutKey(t *testing.T) {
	_, err := NewGeminiExplainer("", "", 0).Explain(context.Background(), &adapter.PlanExplanationRequest{})
	if err == nil {
		t.Error("expected error when explainer is not configured")
	}
}

func TestBuildExplanationPrompt(t *testing.T) {
	request := &adapter.PlanExplanationRequest{
		Entries: []entity.PaymentPlanEntry{
			{
				DebtName:       "Card A",
				MonthlyPayment: decimal.RequireFromString("350"),
				MonthsToPayoff: 17,
				TotalInterest:  decimal.RequireFromString("950"),
				TotalPaid:      decimal.RequireFromString("5950"),
			},
			{
				DebtName:       "Car loan",
				MonthlyPayment: decimal.RequireFromString("200"),
				MonthsToPayoff: 19,
				TotalInterest:  decimal.RequireFromString("800"),
				TotalPaid:      decimal.RequireFromString("3800"),
			},
		},
		Summary: entity.PlanSummary{
			TotalDebt:            decimal.RequireFromString("8000"),
			TotalInterest:        decimal.RequireFromString("1750"),
			AverageMonthsRounded: 18,
		},
		ExtraPayment: "200.00",
	}

	prompt := buildExplanationPrompt(request)

	for _, want := range []string{
		"1. Card A: pays $350.00 per month, paid off in 17 months, $950.00 interest, $5950.00 total",
		"2. Car loan: pays $200.00 per month",
		"EXTRA MONTHLY PAYMENT: $200.00",
		"TOTAL INTEREST: $1750.00",
		"AVERAGE MONTHS TO PAYOFF: 18",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr bool
	}{
		{
			name:    "nil response",
			resp:    nil,
			wantErr: true,
		},
		{
			name:    "no candidates",
			resp:    &genai.GenerateContentResponse{},
			wantErr: true,
		},
		{
			name: "blank text",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("   ")}}},
			}},
			wantErr: true,
		},
		{
			name: "text is trimmed",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("\nPay Card A first.\n")}}},
			}},
			want: "Pay Card A first.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := responseText(tt.resp)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestClassifyExplainError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedReason string
		expectRetry    bool
	}{
		{
			name:           "context deadline exceeded",
			err:            fmt.Errorf("failed to generate content: %w", context.DeadlineExceeded),
			expectedReason: ExplainReasonTimeout,
			expectRetry:    true,
		},
		{
			name:           "quota error",
			err:            errors.New("googleapi: Error 429: quota exceeded"),
			expectedReason: ExplainReasonRateLimited,
			expectRetry:    true,
		},
		{
			name:           "invalid api key",
			err:            errors.New("API key not valid. Please pass a valid API key"),
			expectedReason: ExplainReasonAuth,
			expectRetry:    false,
		},
		{
			name:           "connection refused",
			err:            errors.New("dial tcp: connection refused"),
			expectedReason: ExplainReasonUnavailable,
			expectRetry:    true,
		},
		{
			name:           "empty response",
			err:            errors.New("empty response from gemini"),
			expectedReason: ExplainReasonEmpty,
			expectRetry:    true,
		},
		{
			name:           "anything else",
			err:            errors.New("blocked by safety settings"),
			expectedReason: ExplainReasonUnknown,
			expectRetry:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifyExplainError(tt.err)
			if result.Reason != tt.expectedReason {
				t.Errorf("expected reason %s, got %s", tt.expectedReason, result.Reason)
			}
			if result.Retryable != tt.expectRetry {
				t.Errorf("expected retryable %v, got %v", tt.expectRetry, result.Retryable)
			}
			if !errors.Is(result, tt.err) {
				t.Error("expected classified error to wrap the original")
			}
		})
	}
}
