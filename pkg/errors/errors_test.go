package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewInvalidConfigurationError(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		reason   string
		value    interface{}
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "empty sample sizes",
			param:    "sample_sizes",
			reason:   "must not be empty",
			value:    []int{},
			wantMsg:  "reparam: invalid configuration: parameter 'sample_sizes': must not be empty (got: [])",
			hasStack: true,
		},
		{
			name:     "non-positive repetitions",
			param:    "repetitions",
			reason:   "must be at least 1",
			value:    0,
			wantMsg:  "reparam: invalid configuration: parameter 'repetitions': must be at least 1 (got: 0)",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewInvalidConfigurationError(tt.param, tt.reason, tt.value)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			// InvalidConfigurationError型にキャスト可能か確認
			var cfgErr *InvalidConfigurationError
			if !As(err, &cfgErr) {
				t.Error("Error should be castable to *InvalidConfigurationError")
			}
		})
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("ScoreFunction", "empty samples")

	want := "reparam: ScoreFunction: empty samples"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
	if valErr.Op != "ScoreFunction" {
		t.Errorf("Op = %v, want ScoreFunction", valErr.Op)
	}
}

func TestNewNumericalInstabilityError(t *testing.T) {
	values := []float64{1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0}
	err := NewNumericalInstabilityError("variance_aggregation", values, 12)

	msg := err.Error()
	// 最初の5つの値までしか表示されないことを確認
	if !strings.Contains(msg, "...") {
		t.Error("Expected truncated value list to contain '...'")
	}
	if !strings.Contains(msg, "variance_aggregation") {
		t.Errorf("Expected message to contain operation name, got: %s", msg)
	}
	if !strings.Contains(msg, "trial 12") {
		t.Errorf("Expected message to contain trial number, got: %s", msg)
	}
}

func TestDegenerateSampleWarning(t *testing.T) {
	w := NewDegenerateSampleWarning("score_function", 10, "")
	if !strings.Contains(w.Error(), "score_function") {
		t.Errorf("Error() = %v, want estimator name", w.Error())
	}

	withMsg := NewDegenerateSampleWarning("score_function", 10, "all samples equal theta")
	if !strings.Contains(withMsg.Error(), "all samples equal theta") {
		t.Errorf("Error() = %v, want custom message", withMsg.Error())
	}
}

func TestWarningHandler(t *testing.T) {
	// カスタムハンドラで警告を捕捉できることを確認
	var captured error
	SetWarningHandler(func(w error) {
		captured = w
	})
	defer SetWarningHandler(nil)

	warning := NewDegenerateSampleWarning("reparameterized", 1, "")
	Warn(warning)

	if captured == nil {
		t.Fatal("Expected warning to be captured")
	}
	if captured != warning {
		t.Errorf("Captured = %v, want %v", captured, warning)
	}
}

func TestWrapAndIs(t *testing.T) {
	base := New("base error")
	wrapped := Wrap(base, "context")

	if !Is(wrapped, base) {
		t.Error("Wrapped error should match base via Is")
	}
	if !strings.Contains(wrapped.Error(), "context") {
		t.Errorf("Error() = %v, want wrapping context", wrapped.Error())
	}
}
