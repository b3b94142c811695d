package errx

// Codes shared by every package of the game database.
//
// Domain codes (for example BLUEPRINT_PARTIAL) belong to the package that owns the
// domain and must not be collected here.
const (
	// CodeInternal is the fallback for unexpected failures.
	CodeInternal Code = "INTERNAL_ERROR"
	// CodeUnavailable means a data source (file, watcher) could not be used.
	CodeUnavailable Code = "SOURCE_UNAVAILABLE"
	// CodeInvalidData means input data could not be accepted as-is.
	CodeInvalidData Code = "INVALID_DATA"
)

// Sentinels. Derive new values with WithData/WithCause, never mutate them.
var (
	ErrInternal    = NewSys(CodeInternal, "internal error")
	ErrUnavailable = NewSys(CodeUnavailable, "data source unavailable")
	ErrInvalidData = NewBiz(CodeInvalidData, "invalid data")
)
