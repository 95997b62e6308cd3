package estimator

// Option is a function that configures an experiment Config
type Option func(*Config)

// NewConfig builds a Config starting from DefaultConfig and applying options
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTheta sets the mean parameter of the sampling distribution
func WithTheta(theta float64) Option {
	return func(c *Config) {
		c.Theta = theta
	}
}

// WithSampleSizes sets the per-trial Monte Carlo sample sizes
func WithSampleSizes(sizes ...int) Option {
	return func(c *Config) {
		c.SampleSizes = sizes
	}
}

// WithRepetitions sets the number of independent trials per sample size
func WithRepetitions(n int) Option {
	return func(c *Config) {
		c.Repetitions = n
	}
}

// WithExponent selects the power-law objective |x|^p instead of x²
func WithExponent(p float64) Option {
	return func(c *Config) {
		c.Exponent = p
	}
}

// WithSeed sets the random seed for reproducible runs
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// WithNJobs sets the number of parallel workers
func WithNJobs(n int) Option {
	return func(c *Config) {
		c.NJobs = n
	}
}

// WithProgress sets a callback invoked after each completed trial
func WithProgress(fn func(done, total int)) Option {
	return func(c *Config) {
		c.Progress = fn
	}
}
