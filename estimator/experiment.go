package estimator

import (
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/reparam/core/parallel"
	"github.com/YuminosukeSato/reparam/pkg/errors"
	"github.com/YuminosukeSato/reparam/pkg/log"
)

// Config は分散比較実験の設定。Runの間は不変として扱われる。
type Config struct {
	// Theta は分布 Normal(θ, 1) の平均パラメータ
	Theta float64
	// SampleSizes は試行ごとのモンテカルロサンプル数の列
	SampleSizes []int
	// Repetitions はサンプルサイズごとの独立試行回数
	Repetitions int
	// Exponent はべき乗目的 |x|^p の指数。0なら二乗目的 x² を使う。
	Exponent float64
	// Seed は乱数シード。同じシードは並列度によらずビット単位で同一の結果を生む。
	Seed uint64
	// NJobs は並列ワーカー数。0以下は全CPUコア、1は逐次実行。
	NJobs int
	// Progress は試行が完了するたびに(done, total)で呼ばれる。
	// 並列実行時は複数のゴルーチンから呼ばれるため、スレッドセーフであること。
	Progress func(done, total int)
}

// DefaultConfig は既定の実験設定を返す
// θ=0.1、サンプルサイズ [10, 100, 1000, 10000, 100000]、繰り返し100回
func DefaultConfig() Config {
	return Config{
		Theta:       0.1,
		SampleSizes: []int{10, 100, 1000, 10000, 100000},
		Repetitions: 100,
	}
}

// Validate は設定を検証し、不正な場合はInvalidConfigurationErrorを返す
func (c Config) Validate() error {
	if math.IsNaN(c.Theta) || math.IsInf(c.Theta, 0) {
		return errors.NewInvalidConfigurationError("theta", "must be finite", c.Theta)
	}
	if len(c.SampleSizes) == 0 {
		return errors.NewInvalidConfigurationError("sample_sizes", "must not be empty", c.SampleSizes)
	}
	for _, n := range c.SampleSizes {
		if n < 1 {
			return errors.NewInvalidConfigurationError("sample_sizes", "must contain only positive sizes", n)
		}
	}
	if c.Repetitions < 1 {
		return errors.NewInvalidConfigurationError("repetitions", "must be at least 1", c.Repetitions)
	}
	if math.IsNaN(c.Exponent) || math.IsInf(c.Exponent, 0) || c.Exponent < 0 {
		return errors.NewInvalidConfigurationError("exponent", "must be finite and non-negative", c.Exponent)
	}
	return nil
}

// Objective は設定に対応する目的関数を返す
func (c Config) Objective() Objective {
	if c.Exponent == 0 {
		return Squared{}
	}
	return Power{Exponent: c.Exponent}
}

// Summary は1つのサンプルサイズに対する両推定量の集計結果
// 分散は繰り返し試行にわたる不偏標本分散（n−1で割る）。
// Repetitionsが1のときは退化した分散0を報告する。
type Summary struct {
	SampleSize      int
	ScoreMean       float64
	ScoreVariance   float64
	ReparamMean     float64
	ReparamVariance float64
}

// VarianceRatio はスコア関数推定量と再パラメータ化推定量の分散比を返す
// 分母が0の場合は素朴な浮動小数点の結果（Inf/NaN）に従う。
func (s Summary) VarianceRatio() float64 {
	return s.ScoreVariance / s.ReparamVariance
}

// Result は実験全体の結果。Runの後は読み取り専用として扱うこと。
type Result struct {
	Theta       float64
	Exponent    float64
	SampleSizes []int
	Summaries   map[int]Summary
}

// Summary は指定したサンプルサイズの集計結果を返す
func (r *Result) Summary(n int) (Summary, bool) {
	s, ok := r.Summaries[n]
	return s, ok
}

// Run は各サンプルサイズについてRepetitions回の独立試行を行い、
// 両推定量の平均と分散を集計する。
//
// 各試行は(シード, サンプルサイズ番号, 試行番号)から導出された専用の
// PCGストリームから乱数を引くため、集計結果は試行の処理順序に依存せず、
// 並列実行でも逐次実行と同一の結果になる。スコア関数経路と再パラメータ化
// 経路は同じストリームから順に引かれる独立なサンプルを使い、ノイズは共有
// しない。
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	obj := cfg.Objective()
	score := ScoreFunctionEstimator{Objective: obj}
	reparam := ReparamEstimator{Objective: obj}

	logger := log.GetLoggerWithName("estimator").With(
		log.OperationKey, log.OperationRun,
		log.ObjectiveKey, obj.Name(),
		log.ThetaKey, cfg.Theta,
		log.SeedKey, cfg.Seed,
	)
	start := time.Now()
	logger.Info("Experiment started",
		log.RepetitionsKey, cfg.Repetitions,
		log.WorkersKey, cfg.NJobs,
	)

	total := len(cfg.SampleSizes) * cfg.Repetitions
	var done int64

	result := &Result{
		Theta:       cfg.Theta,
		Exponent:    cfg.Exponent,
		SampleSizes: append([]int(nil), cfg.SampleSizes...),
		Summaries:   make(map[int]Summary, len(cfg.SampleSizes)),
	}

	for si, n := range cfg.SampleSizes {
		scoreVals := make([]float64, cfg.Repetitions)
		reparamVals := make([]float64, cfg.Repetitions)

		var mu sync.Mutex
		var firstErr error

		sizeIndex := uint64(si)
		parallel.ParallelizeWorkers(cfg.Repetitions, cfg.NJobs, func(startIdx, endIdx int) {
			for trial := startIdx; trial < endIdx; trial++ {
				// 試行ごとのカウンタ方式シード。処理順序と無関係に同じ列を生む。
				src := rand.NewPCG(cfg.Seed, sizeIndex<<32|uint64(trial))

				sVal, err := score.Estimate(src, n, cfg.Theta)
				if err == nil {
					scoreVals[trial] = sVal
					reparamVals[trial], err = reparam.Estimate(src, n, cfg.Theta)
				}
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}

				if cfg.Progress != nil {
					cfg.Progress(int(atomic.AddInt64(&done, 1)), total)
				}
			}
		})

		if firstErr != nil {
			logger.Error("Experiment failed", log.ErrAttr(firstErr), log.SampleSizeKey, n)
			return nil, errors.Wrapf(firstErr, "sample size %d", n)
		}

		scoreMean, scoreVar := meanVariance(scoreVals)
		reparamMean, reparamVar := meanVariance(reparamVals)

		// 非有限の集計値はエラーにせず警告のみ。値はそのまま伝播する。
		if err := errors.CheckNumericalStability("aggregate", []float64{scoreMean, scoreVar}, si); err != nil {
			errors.Warn(errors.NewDegenerateSampleWarning(score.Name(), n, "aggregated statistics contain NaN or Inf"))
			logger.Warn("Aggregated statistics are not finite", log.ErrAttr(err), log.SampleSizeKey, n)
		}
		if err := errors.CheckNumericalStability("aggregate", []float64{reparamMean, reparamVar}, si); err != nil {
			errors.Warn(errors.NewDegenerateSampleWarning(reparam.Name(), n, "aggregated statistics contain NaN or Inf"))
			logger.Warn("Aggregated statistics are not finite", log.ErrAttr(err), log.SampleSizeKey, n)
		}

		result.Summaries[n] = Summary{
			SampleSize:      n,
			ScoreMean:       scoreMean,
			ScoreVariance:   scoreVar,
			ReparamMean:     reparamMean,
			ReparamVariance: reparamVar,
		}

		logger.Debug("Sample size completed",
			log.SampleSizeKey, n,
			log.MeanKey, reparamMean,
			log.VarianceKey, reparamVar,
		)
	}

	logger.Info("Experiment completed",
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	return result, nil
}

// meanVariance は平均と不偏標本分散を返す
// 要素が1つの場合、分散は退化した0を返す。
func meanVariance(vals []float64) (float64, float64) {
	if len(vals) == 1 {
		return vals[0], 0
	}
	return stat.MeanVariance(vals, nil)
}
