package http

// API error codes rendered in the "code" field of error bodies. The full
// taxonomy is declared even though UNAUTHENTICATED and FORBIDDEN have no
// producer today; clients already switch on the complete set.
const (
	codeNotFound            = "NOT_FOUND"
	codeUnprocessableEntity = "UNPROCESSABLE_ENTITY"
	codeUnauthorized        = "UNAUTHORIZED"
	codeUnauthenticated     = "UNAUTHENTICATED"
	codeForbidden           = "FORBIDDEN"
	codeBadRequest          = "BAD_REQUEST"
	codeInternalServerError = "INTERNAL_SERVER_ERROR"
)

// defaultMessages holds the user-facing text used when no more specific
// message is attached to an error.
var defaultMessages = map[string]string{
	codeNotFound:            "The requested resource was not found.",
	codeUnprocessableEntity: "The request was well-formed but was unable to be followed due to semantic errors.",
	codeUnauthorized:        "You are not authorized to access this resource.",
	codeUnauthenticated:     "You must be authenticated to access this resource.",
	codeForbidden:           "You do not have permission to access this resource.",
	codeBadRequest:          "The request could not be understood by the server due to malformed syntax.",
	codeInternalServerError: "An unexpected error occurred.",
}
