package apperr

import "github.com/tuanvumaihuynh/catalog-e2e/pkg/zerror"

const (
	UnexpectedStatusCode  = "UNEXPECTED_STATUS"
	BodyNotJSONCode       = "BODY_NOT_JSON"
	MissingFieldCode      = "MISSING_FIELD"
	UnexpectedFieldCode   = "UNEXPECTED_FIELD"
	WrongTypeCode         = "WRONG_TYPE"
	ContractMismatchCode  = "CONTRACT_MISMATCH"
	OutOfRangeCode        = "OUT_OF_RANGE"
	EmptyStringCode       = "EMPTY_STRING"
	ValueMismatchCode     = "VALUE_MISMATCH"
	DuplicateValueCode    = "DUPLICATE_VALUE"
	PatternMismatchCode   = "PATTERN_MISMATCH"
	PageSizeMismatchCode  = "PAGE_SIZE_MISMATCH"
	OrderMismatchCode     = "ORDER_MISMATCH"
	TimestampOutsideCode  = "TIMESTAMP_OUTSIDE_WINDOW"
	ProjectionExtraCode   = "PROJECTION_EXTRA_FIELD"
	ProjectionMissingCode = "PROJECTION_MISSING_FIELD"
	QueryNotFoundCode     = "QUERY_NOT_FOUND"
	ResponseTooSlowCode   = "RESPONSE_TOO_SLOW"
)

var (
	UnexpectedStatusErr = zerror.NewStructuralMismatch(UnexpectedStatusCode, "unexpected status code")
	BodyNotJSONErr      = zerror.NewStructuralMismatch(BodyNotJSONCode, "body is not the expected JSON shape")
	MissingFieldErr     = zerror.NewStructuralMismatch(MissingFieldCode, "required field is missing")
	UnexpectedFieldErr  = zerror.NewStructuralMismatch(UnexpectedFieldCode, "unexpected field present")
	WrongTypeErr        = zerror.NewStructuralMismatch(WrongTypeCode, "field has the wrong type")
	ContractMismatchErr = zerror.NewStructuralMismatch(ContractMismatchCode, "body does not match the API contract")

	OutOfRangeErr       = zerror.NewConstraintViolation(OutOfRangeCode, "value outside its documented range")
	EmptyStringErr      = zerror.NewConstraintViolation(EmptyStringCode, "string must not be empty")
	ValueMismatchErr    = zerror.NewConstraintViolation(ValueMismatchCode, "value differs from expectation")
	DuplicateValueErr   = zerror.NewConstraintViolation(DuplicateValueCode, "value must be unique")
	PatternMismatchErr  = zerror.NewConstraintViolation(PatternMismatchCode, "value does not match pattern")
	PageSizeMismatchErr = zerror.NewConstraintViolation(PageSizeMismatchCode, "page size differs from expectation")
	OrderMismatchErr    = zerror.NewConstraintViolation(OrderMismatchCode, "items are not in the requested order")
	TimestampOutsideErr = zerror.NewConstraintViolation(TimestampOutsideCode, "timestamp outside the request window")

	ProjectionExtraErr   = zerror.NewProjectionViolation(ProjectionExtraCode, "field selection returned an extra field")
	ProjectionMissingErr = zerror.NewProjectionViolation(ProjectionMissingCode, "field selection dropped a requested field")

	QueryNotFoundErr = zerror.NewRelevanceViolation(QueryNotFoundCode, "search hit does not contain the query")

	ResponseTooSlowErr = zerror.NewTimingViolation(ResponseTooSlowCode, "response exceeded the time limit")
)
