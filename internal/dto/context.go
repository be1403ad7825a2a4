package dto

// UserContextKey is the key under which the authenticated user is stored
// on the request context by the auth middleware.
const UserContextKey = "user"
