package apierror

// Error type URIs following the urn:symmuse:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:symmuse:error:validation"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:symmuse:error:bad_request"

	// TypeInvalidDateRange indicates a date window that cannot be analyzed (400)
	TypeInvalidDateRange = "urn:symmuse:error:invalid_date_range"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:symmuse:error:unauthorized"

	// TypeForbidden indicates insufficient permissions (403)
	TypeForbidden = "urn:symmuse:error:forbidden"

	// TypePremiumRequired indicates the plan does not include the feature (403)
	TypePremiumRequired = "urn:symmuse:error:premium_required"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:symmuse:error:rate_limit"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:symmuse:error:internal"

	// TypeUnavailable indicates storage could not be reached (503)
	TypeUnavailable = "urn:symmuse:error:unavailable"
)

const (
	TitleValidation       = "Validation Error"
	TitleBadRequest       = "Bad Request"
	TitleInvalidDateRange = "Invalid Date Range"
	TitleUnauthorized     = "Authentication Required"
	TitleForbidden        = "Permission Denied"
	TitlePremiumRequired  = "Premium Subscription Required"
	TitleRateLimit        = "Rate Limit Exceeded"
	TitleInternal         = "Internal Server Error"
	TitleUnavailable      = "Service Unavailable"
)
