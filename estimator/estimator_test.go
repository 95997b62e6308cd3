package estimator

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/YuminosukeSato/reparam/pkg/errors"
)

func TestScoreFunction(t *testing.T) {
	tests := []struct {
		name      string
		samples   []float64
		theta     float64
		obj       Objective
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:    "single sample squared",
			samples: []float64{2.0},
			theta:   0.5,
			obj:     Squared{},
			// f(2)·(2 − 0.5) = 4·1.5 = 6
			want:      6.0,
			tolerance: 1e-12,
		},
		{
			name:    "two samples squared",
			samples: []float64{1.0, 2.0},
			theta:   0.5,
			obj:     Squared{},
			// (1·0.5 + 4·1.5) / 2 = 3.25
			want:      3.25,
			tolerance: 1e-12,
		},
		{
			name:    "degenerate weighting returns zero",
			samples: []float64{0.5, 0.5},
			theta:   0.5,
			obj:     Squared{},
			// 全サンプルがθと一致: 素朴な浮動小数点の結果は0
			want:      0.0,
			tolerance: 1e-12,
		},
		{
			name:    "empty samples",
			samples: []float64{},
			theta:   0.1,
			obj:     Squared{},
			wantErr: true,
		},
		{
			name:    "nil objective",
			samples: []float64{1.0},
			theta:   0.1,
			obj:     nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreFunction(tt.samples, tt.theta, tt.obj)

			if (err != nil) != tt.wantErr {
				t.Errorf("ScoreFunction() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				var valErr *errors.ValueError
				if !errors.As(err, &valErr) {
					t.Errorf("Expected *errors.ValueError, got %T", err)
				}
				return
			}

			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("ScoreFunction() = %v, want %v (tolerance: %v)", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestReparameterized(t *testing.T) {
	tests := []struct {
		name      string
		epsilons  []float64
		theta     float64
		obj       Objective
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:     "single epsilon squared",
			epsilons: []float64{0.5},
			theta:    0.1,
			obj:      Squared{},
			// f'(0.6) = 1.2
			want:      1.2,
			tolerance: 1e-12,
		},
		{
			name:     "two epsilons squared",
			epsilons: []float64{0.5, -0.5},
			theta:    0.1,
			obj:      Squared{},
			// (2·0.6 + 2·(−0.4)) / 2 = 0.2
			want:      0.2,
			tolerance: 1e-12,
		},
		{
			name:     "empty epsilons",
			epsilons: []float64{},
			theta:    0.1,
			obj:      Squared{},
			wantErr:  true,
		},
		{
			name:     "nil objective",
			epsilons: []float64{0.5},
			theta:    0.1,
			obj:      nil,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reparameterized(tt.epsilons, tt.theta, tt.obj)

			if (err != nil) != tt.wantErr {
				t.Errorf("Reparameterized() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if math.Abs(got-tt.want) > tt.tolerance {
					t.Errorf("Reparameterized() = %v, want %v (tolerance: %v)", got, tt.want, tt.tolerance)
				}
			}
		})
	}
}

func TestEstimateValidatesSampleSize(t *testing.T) {
	estimators := []GradientEstimator{
		ScoreFunctionEstimator{Objective: Squared{}},
		ReparamEstimator{Objective: Squared{}},
	}

	for _, est := range estimators {
		t.Run(est.Name(), func(t *testing.T) {
			src := rand.NewPCG(1, 2)
			if _, err := est.Estimate(src, 0, 0.1); err == nil {
				t.Error("Estimate() with n=0 should return an error")
			}
			if _, err := est.Estimate(src, 1, 0.1); err != nil {
				t.Errorf("Estimate() with n=1 returned unexpected error: %v", err)
			}
		})
	}
}

func TestEstimateDeterministic(t *testing.T) {
	estimators := []GradientEstimator{
		ScoreFunctionEstimator{Objective: Squared{}},
		ReparamEstimator{Objective: Squared{}},
	}

	for _, est := range estimators {
		t.Run(est.Name(), func(t *testing.T) {
			// 同じシードのストリームからは同じ推定値が出ること
			first, err := est.Estimate(rand.NewPCG(42, 7), 100, 0.1)
			if err != nil {
				t.Fatalf("Estimate() error = %v", err)
			}
			second, err := est.Estimate(rand.NewPCG(42, 7), 100, 0.1)
			if err != nil {
				t.Fatalf("Estimate() error = %v", err)
			}
			if first != second {
				t.Errorf("Estimate() not deterministic: %v != %v", first, second)
			}
		})
	}
}

func TestEstimatorNames(t *testing.T) {
	if got := (ScoreFunctionEstimator{}).Name(); got != "score_function" {
		t.Errorf("Name() = %v, want score_function", got)
	}
	if got := (ReparamEstimator{}).Name(); got != "reparameterized" {
		t.Errorf("Name() = %v, want reparameterized", got)
	}
}
