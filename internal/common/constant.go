package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer
// session token on requests to protected endpoints.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token value in the Authorization header.
const BearerPrefix = "Bearer "
