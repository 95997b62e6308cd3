// Package log defines standard attribute keys for experiment operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in reparam. Using these standard keys enables better
// log analysis and debugging of experiment runs.
//
// The keys follow a hierarchical naming convention (e.g., "experiment.theta",
// "estimator.name") to enable structured log analysis and filtering.

package log

// Experiment and Operation Context
// These attributes identify the estimator and operation being performed.
const (
	// EstimatorKey identifies the gradient estimator producing a value.
	// Standard values: "score_function", "reparameterized"
	EstimatorKey = "estimator.name"

	// OperationKey specifies the experiment operation being performed.
	// Standard values: "run", "estimate", "aggregate", "report"
	OperationKey = "experiment.operation"

	// ObjectiveKey identifies the objective function under study.
	// Examples: "squared", "power"
	ObjectiveKey = "experiment.objective"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "estimator", "report", "parallel"
	ComponentKey = "experiment.component"
)

// Run Parameters
// These attributes describe the configuration of the current run.
const (
	// ThetaKey records the distribution mean parameter θ.
	ThetaKey = "experiment.theta"

	// ExponentKey records the objective exponent when the power-law
	// variant is selected. Zero means the squared objective.
	ExponentKey = "experiment.exponent"

	// SampleSizeKey indicates the per-trial number of Monte Carlo draws.
	SampleSizeKey = "experiment.sample_size"

	// RepetitionsKey indicates the number of independent trials per sample size.
	RepetitionsKey = "experiment.repetitions"

	// TrialKey records the index of an individual trial.
	TrialKey = "experiment.trial"

	// SeedKey records the random seed for reproducibility.
	// Essential for debugging and ensuring reproducible results.
	SeedKey = "config.random_seed"

	// WorkersKey records the number of parallel workers used for a run.
	WorkersKey = "config.workers"
)

// Result Metrics
// These attributes capture aggregated statistics and timing.
const (
	// MeanKey records the empirical mean of an estimator's trial values.
	MeanKey = "metrics.mean"

	// VarianceKey records the unbiased sample variance of an estimator's
	// trial values, the central quantity of the study.
	VarianceKey = "metrics.variance"

	// TrueGradientKey records the closed-form gradient value when known.
	TrueGradientKey = "metrics.true_gradient"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error and Warning Context
// These attributes provide additional context for error and warning messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "INVALID_CONFIGURATION", "NUMERICAL_INSTABILITY"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "InvalidConfigurationError", "ValueError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by the error logging functions.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard experiment operations
	OperationRun       = "run"
	OperationEstimate  = "estimate"
	OperationAggregate = "aggregate"
	OperationReport    = "report"

	// Standard estimator names
	EstimatorScoreFunction   = "score_function"
	EstimatorReparameterized = "reparameterized"

	// Standard error codes
	ErrorInvalidConfiguration = "INVALID_CONFIGURATION"
	ErrorEmptySamples         = "EMPTY_SAMPLES"
	ErrorNumericalInstability = "NUMERICAL_INSTABILITY"
)
