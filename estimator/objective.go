package estimator

import (
	"math"
)

// Objective は勾配推定の対象となる目的関数の被積分関数 f を表す
type Objective interface {
	// Value は f(x) を返す
	Value(x float64) float64
	// Grad は f'(x) を返す
	Grad(x float64) float64
	// Name は目的関数の識別名を返す
	Name() string
}

// ExactGradient は真の勾配 ∇θ E_q[f(x)] の閉形式解を持つ目的関数
type ExactGradient interface {
	// TrueGradient は q(x) = Normal(θ, 1) の下での ∇θ E_q[f(x)] を返す
	TrueGradient(theta float64) float64
}

// Squared は二乗目的 f(x) = x² を表す
type Squared struct{}

// Value は x² を返す
func (Squared) Value(x float64) float64 { return x * x }

// Grad は 2x を返す
func (Squared) Grad(x float64) float64 { return 2 * x }

// Name は目的関数の識別名を返す
func (Squared) Name() string { return "squared" }

// TrueGradient は真の勾配を返す
// E_{N(θ,1)}[x²] = θ² + 1 なので ∇θ E[x²] = 2θ
func (Squared) TrueGradient(theta float64) float64 { return 2 * theta }

// Power は一般化されたべき乗目的 f(x) = |x|^p を表す
// p = 2 のとき Squared と一致する。閉形式の真の勾配は持たない。
type Power struct {
	Exponent float64
}

// Value は |x|^p を返す
func (p Power) Value(x float64) float64 {
	return math.Pow(math.Abs(x), p.Exponent)
}

// Grad は p·sign(x)·|x|^(p−1) を返す
// x = 0 かつ p < 1 の退化ケースは素朴な浮動小数点の挙動（NaN/Inf）に従う
func (p Power) Grad(x float64) float64 {
	return p.Exponent * math.Copysign(math.Pow(math.Abs(x), p.Exponent-1), x)
}

// Name は目的関数の識別名を返す
func (p Power) Name() string { return "power" }
