// Standard attribute keys for surrogate modeling operations.
//
// Using these keys consistently enables structured log analysis across the
// library: which model, which operation, what data shape, which quadrature
// mode. Keys follow a hierarchical naming convention ("model.name",
// "quad.points") so log pipelines can filter on families.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the model type.
	// Examples: "Poly", "LeastSquares"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "evaluate", "gradient", "quadrature",
	// "scale", "statistics"
	OperationKey = "uq.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "poly", "param", "regression"
	ComponentKey = "uq.component"
)

// Data shape and characteristics.
const (
	// SamplesKey is the number of rows (observations or query points)
	// being processed.
	SamplesKey = "data.samples"

	// DimensionsKey is the number of input dimensions (columns).
	DimensionsKey = "data.dimensions"
)

// Parameter and basis context.
const (
	// DistributionKey names a parameter's distribution kind.
	// Examples: "uniform", "beta", "gaussian"
	DistributionKey = "param.distribution"

	// ParamOrderKey is a parameter's maximum polynomial order.
	ParamOrderKey = "param.order"

	// BasisTypeKey names the multi-index set rule.
	// Examples: "tensor-grid", "total-order", "hyperbolic", "euclidean"
	BasisTypeKey = "basis.type"

	// BasisTermsKey is the basis cardinality (number of terms).
	BasisTermsKey = "basis.terms"
)

// Quadrature context.
const (
	// QuadratureModeKey names the rule construction mode.
	// Standard values: "tensor-grid", "monte-carlo"
	QuadratureModeKey = "quad.mode"

	// QuadraturePointsKey is the total number of quadrature points.
	QuadraturePointsKey = "quad.points"
)

// Performance and fit quality.
const (
	// DurationMsKey records the execution time of an operation in
	// milliseconds.
	DurationMsKey = "perf.duration_ms"

	// R2ScoreKey records the coefficient of determination of a fit
	// against validation data. Range (-inf, 1], 1 is a perfect fit.
	R2ScoreKey = "metrics.r2_score"

	// RMSEKey records the root mean squared error of a fit.
	RMSEKey = "metrics.rmse"

	// ConditionNumberKey records the condition number of a design matrix.
	ConditionNumberKey = "metrics.condition_number"
)

// Error and warning context.
const (
	// ErrorCodeKey provides a structured error code for programmatic
	// handling. Examples: "DIMENSION_MISMATCH", "NOT_FITTED"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the error encountered.
	// Examples: "ValidationError", "NumericalInstabilityError"
	ErrorTypeKey = "error.type"

	// SuggestionKey provides a hint for resolving the condition.
	// Example: "reduce per-dimension orders or switch to monte-carlo"
	SuggestionKey = "error.suggestion"
)

// Configuration.
const (
	// RandomSeedKey records the random seed used for sampling, for
	// reproducibility.
	RandomSeedKey = "config.random_seed"
)

// Standard attribute value constants for common operations.
const (
	OperationFit        = "fit"
	OperationEvaluate   = "evaluate"
	OperationGradient   = "gradient"
	OperationQuadrature = "quadrature"
	OperationScale      = "scale"
	OperationStatistics = "statistics"

	// Standard error codes
	ErrorNotFitted               = "NOT_FITTED"
	ErrorDimensionMismatch       = "DIMENSION_MISMATCH"
	ErrorEmptyData               = "EMPTY_DATA"
	ErrorInvalidInput            = "INVALID_INPUT"
	ErrorSingularMatrix          = "SINGULAR_MATRIX"
	ErrorUnsupportedOption       = "UNSUPPORTED_OPTION"
	ErrorUnsupportedDistribution = "UNSUPPORTED_DISTRIBUTION"
)
