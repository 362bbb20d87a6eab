package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the only authorization scheme accepted by the server.
const BearerScheme = "Bearer"

// RequestIDHeaderName carries the per-request correlation id.
const RequestIDHeaderName = "X-Request-Id"
