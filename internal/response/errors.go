package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden      ErrCode = "FORBIDDEN"
	ErrRoleForbidden  ErrCode = "ROLE_FORBIDDEN"
	ErrWrongClassroom ErrCode = "WRONG_CLASSROOM"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound      ErrCode = "NOT_FOUND"
	ErrAlreadyExists ErrCode = "ALREADY_EXISTS"

	// ─── Domain ────────────────────────────────────────────────────────
	ErrAlreadyMarked ErrCode = "ATTENDANCE_ALREADY_MARKED"
	ErrNoLinkedChild ErrCode = "NO_LINKED_CHILD"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrDependencyUnavailable ErrCode = "DEPENDENCY_UNAVAILABLE"
	ErrInternal              ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Email or password is incorrect."
	case ErrSessionInvalidated:
		return "Your session has ended. Please sign in again."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrForbidden:
		return "You do not have permission to perform this action."
	case ErrRoleForbidden:
		return "This resource is restricted to another role."
	case ErrWrongClassroom:
		return "This resource belongs to a different class."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "The identifier has an invalid format."
	case ErrInvalidPayload:
		return "The request payload is invalid."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "The requested resource was not found."
	case ErrAlreadyExists:
		return "The resource already exists."

	// ─── Domain ────────────────────────────────────────────────────────
	case ErrAlreadyMarked:
		return "Attendance has already been marked for this date."
	case ErrNoLinkedChild:
		return "No student is linked to this parent account."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrDependencyUnavailable:
		return "A backing service is temporarily unavailable."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
