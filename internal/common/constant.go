package common

// AuthTokenHeaderName is the HTTP header used to carry the session token
// on authenticated requests.
const AuthTokenHeaderName = "x-auth-token"
