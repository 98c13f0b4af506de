package httputil

// Machine-readable error codes returned alongside human-readable messages so
// frontend clients can branch without string matching.
const (
	CodeInvalidRequestBody = "invalid_request_body"
	CodeInternalError      = "internal_error"
	CodeTooManyRequests    = "too_many_requests"
	CodeCooldownActive     = "cooldown_active"

	CodeEmailRequired      = "email_required"
	CodePasswordRequired   = "password_required"
	CodePasswordTooShort   = "password_too_short"
	CodeUsernameRequired   = "username_required"
	CodeInvalidEmailFormat = "invalid_email_format"
	CodeEmailAlreadyExists = "email_already_exists"
	CodeUsernameTaken      = "username_taken"

	CodeInvalidCredentials = "invalid_credentials"
	CodeEmailNotVerified   = "email_not_verified"
	CodeAlreadyVerified    = "already_verified"
	CodeUserNotFound       = "user_not_found"
	CodeCodeRequired       = "verification_code_required"
	CodeInvalidCode        = "invalid_verification_code"
	CodeCodeExpired        = "verification_code_expired"

	CodeMissingAuth        = "missing_authentication"
	CodeInvalidAuthHeader  = "invalid_authorization_header"
	CodeInvalidToken       = "invalid_token"
	CodeTokenExpired       = "token_expired"
	CodeInvalidTokenUserID = "invalid_token_user_id"

	CodeInvalidMediaType = "invalid_media_type"
	CodeInvalidMediaID   = "invalid_media_id"
	CodeInvalidStatus    = "invalid_status"

	CodeFriendNotFound     = "friend_not_found"
	CodeFriendAlreadyAdded = "friend_already_added"
	CodeCannotFriendSelf   = "cannot_friend_self"

	CodeCatalogUnavailable = "catalog_unavailable"
)
