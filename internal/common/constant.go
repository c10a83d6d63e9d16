package common

// AccessTokenHeaderName is the HTTP header used to carry the session token
// on requests to guarded routes.
const AccessTokenHeaderName = "x-access-token"
