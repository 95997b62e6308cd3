// Package reparam provides a small, reproducible numerical study of
// Monte Carlo gradient estimators for variational inference in Go.
//
// The library compares the score-function (log-derivative) estimator with
// the reparameterized estimator of Kingma & Welling (2014) on the toy
// objective E_q[x²] with q(x) = Normal(θ, 1), measuring the empirical
// variance of both estimators across sample sizes.
//
// # Features
//
// - Deterministic: every trial draws from its own counter-seeded PCG stream
// - Parallel: trials fan out across CPU cores without changing the result
// - Structured error handling and logging throughout
// - Plot and table reporting kept outside the numerical core
//
// # Quick Start
//
//	package main
//
//	import (
//	    "log"
//	    "os"
//
//	    "github.com/YuminosukeSato/reparam/estimator"
//	    "github.com/YuminosukeSato/reparam/report"
//	)
//
//	func main() {
//	    cfg := estimator.DefaultConfig()
//	    cfg.Seed = 42
//
//	    result, err := estimator.Run(cfg)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    report.WriteTable(os.Stdout, result)
//	    if err := report.VariancePlot(result, "variance.png"); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - estimator: gradient estimators, objectives and the variance experiment
//   - report: table and plot rendering of experiment results
//   - core/parallel: parallel processing utilities
//   - pkg/errors: structured error handling
//   - pkg/log: structured logging utilities
//
// # License
//
// reparam is released under the MIT License.
package reparam
