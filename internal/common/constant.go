package common

// RequestIDHeader is the HTTP header used to carry the per-request
// correlation id on outbound API calls.
const RequestIDHeader = "X-Request-Id"
