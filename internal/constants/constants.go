package constants

// ContextKeyUserID is the gin context key holding the authenticated user ID.
const ContextKeyUserID = "user_id"

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 8

// BearerSchema is the expected prefix of the Authorization header value.
const BearerSchema = "Bearer "
