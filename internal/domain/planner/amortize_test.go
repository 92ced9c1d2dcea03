package planner

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/budget-dashboard/backend/internal/domain/error"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAmortize(t *testing.T) {
	tests := []struct {
		name          string
		balance       string
		rate          string
		payment       string
		wantMonths    int
		wantInterest  string
		wantTotalPaid string
	}{
		{
			name:          "positive rate rounds months up",
			balance:       "1000",
			rate:          "18",
			payment:       "150",
			wantMonths:    8,
			wantInterest:  "200",
			wantTotalPaid: "1200",
		},
		{
			name:          "fractional annual rate",
			balance:       "5000",
			rate:          "18.99",
			payment:       "150",
			wantMonths:    48,
			wantInterest:  "2200",
			wantTotalPaid: "7200",
		},
		{
			name:          "larger payment shortens payoff",
			balance:       "5000",
			rate:          "18.99",
			payment:       "350",
			wantMonths:    17,
			wantInterest:  "950",
			wantTotalPaid: "5950",
		},
		{
			name:          "zero rate with remainder",
			balance:       "1000",
			rate:          "0",
			payment:       "300",
			wantMonths:    4,
			wantInterest:  "0",
			wantTotalPaid: "1000",
		},
		{
			name:          "zero rate divides evenly",
			balance:       "1200",
			rate:          "0",
			payment:       "100",
			wantMonths:    12,
			wantInterest:  "0",
			wantTotalPaid: "1200",
		},
		{
			name:          "payment above balance",
			balance:       "100",
			rate:          "0",
			payment:       "250",
			wantMonths:    1,
			wantInterest:  "0",
			wantTotalPaid: "100",
		},
		{
			name:          "payment just above interest at a repeating rate",
			balance:       "1200",
			rate:          "10",
			payment:       "11",
			wantMonths:    289,
			wantInterest:  "1979",
			wantTotalPaid: "3179",
		},
		{
			name:          "zero balance",
			balance:       "0",
			rate:          "22",
			payment:       "50",
			wantMonths:    0,
			wantInterest:  "0",
			wantTotalPaid: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Amortize(d(tt.balance), d(tt.rate), d(tt.payment))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Months != tt.wantMonths {
				t.Errorf("expected %d months, got %d", tt.wantMonths, got.Months)
			}
			if !got.TotalInterest.Equal(d(tt.wantInterest)) {
				t.Errorf("expected interest %s, got %s", tt.wantInterest, got.TotalInterest)
			}
			if !got.TotalPaid.Equal(d(tt.wantTotalPaid)) {
				t.Errorf("expected total paid %s, got %s", tt.wantTotalPaid, got.TotalPaid)
			}
		})
	}
}

func TestAmortize_TotalPaidEqualsBalancePlusInterest(t *testing.T) {
	cases := [][3]string{
		{"1000", "18", "150"},
		{"2000", "5.5", "100"},
		{"3000", "24", "150"},
		{"10000", "7", "500"},
		{"750.25", "0", "60.10"},
	}

	for _, c := range cases {
		got, err := Amortize(d(c[0]), d(c[1]), d(c[2]))
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", c, err)
		}
		if !got.TotalPaid.Equal(d(c[0]).Add(got.TotalInterest)) {
			t.Errorf("%v: total paid %s is not balance plus interest %s", c, got.TotalPaid, got.TotalInterest)
		}
		if got.TotalInterest.IsNegative() {
			t.Errorf("%v: interest should not be negative, got %s", c, got.TotalInterest)
		}
	}
}

func TestAmortize_MonthsNeverIncreaseWithPayment(t *testing.T) {
	previous := -1
	for _, payment := range []string{"700", "400", "250", "120", "80"} {
		got, err := Amortize(d("4000"), d("15"), d(payment))
		if err != nil {
			t.Fatalf("payment %s: unexpected error: %v", payment, err)
		}
		if previous != -1 && got.Months < previous {
			t.Errorf("payment %s: months went from %d down to %d while payment decreased", payment, previous, got.Months)
		}
		previous = got.Months
	}
}

func TestAmortize_Errors(t *testing.T) {
	tests := []struct {
		name     string
		balance  string
		rate     string
		payment  string
		wantErr  error
		wantCode domainerror.PlannerErrorCode
	}{
		{
			name:     "payment equals monthly interest",
			balance:  "1000",
			rate:     "12",
			payment:  "10",
			wantErr:  domainerror.ErrInvalidPayment,
			wantCode: domainerror.ErrCodeInvalidPayment,
		},
		{
			name:     "payment equals interest at a repeating monthly rate",
			balance:  "1200",
			rate:     "10",
			payment:  "10",
			wantErr:  domainerror.ErrInvalidPayment,
			wantCode: domainerror.ErrCodeInvalidPayment,
		},
		{
			name:     "larger balance at a repeating monthly rate",
			balance:  "3600",
			rate:     "10",
			payment:  "30",
			wantErr:  domainerror.ErrInvalidPayment,
			wantCode: domainerror.ErrCodeInvalidPayment,
		},
		{
			name:     "payment equals interest at a low rate",
			balance:  "12000",
			rate:     "1",
			payment:  "10",
			wantErr:  domainerror.ErrInvalidPayment,
			wantCode: domainerror.ErrCodeInvalidPayment,
		},
		{
			name:     "payment below monthly interest",
			balance:  "20000",
			rate:     "24",
			payment:  "300",
			wantErr:  domainerror.ErrInvalidPayment,
			wantCode: domainerror.ErrCodeInvalidPayment,
		},
		{
			name:     "zero payment",
			balance:  "1000",
			rate:     "0",
			payment:  "0",
			wantErr:  domainerror.ErrInvalidPayment,
			wantCode: domainerror.ErrCodeInvalidPayment,
		},
		{
			name:     "negative payment",
			balance:  "1000",
			rate:     "5",
			payment:  "-10",
			wantErr:  domainerror.ErrInvalidPayment,
			wantCode: domainerror.ErrCodeInvalidPayment,
		},
		{
			name:     "negative balance",
			balance:  "-1",
			rate:     "5",
			payment:  "10",
			wantErr:  domainerror.ErrInvalidDebt,
			wantCode: domainerror.ErrCodeInvalidDebt,
		},
		{
			name:     "negative rate",
			balance:  "100",
			rate:     "-5",
			payment:  "10",
			wantErr:  domainerror.ErrInvalidDebt,
			wantCode: domainerror.ErrCodeInvalidDebt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Amortize(d(tt.balance), d(tt.rate), d(tt.payment))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			var plannerErr *domainerror.PlannerError
			if !errors.As(err, &plannerErr) {
				t.Fatalf("expected *PlannerError, got %T", err)
			}
			if plannerErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, plannerErr.Code)
			}
		})
	}
}

func TestMonthlyRate(t *testing.T) {
	got := MonthlyRate(d("18"))
	if !got.Equal(d("0.015")) {
		t.Errorf("expected 0.015, got %s", got)
	}
	if !MonthlyRate(decimal.Zero).IsZero() {
		t.Error("expected zero rate for zero APR")
	}
}
