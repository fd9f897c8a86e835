// Package llm provides an OpenRouter-compatible chat client used as the
// summarization backend.
//
// The client exposes the narrow "generate text from prompt" contract the
// engine depends on (Invoke) plus a HealthCheck for verifying credentials.
// Provider selection and credentials are entirely configuration; the engine
// never knows which model sits behind the endpoint.
//
// # Retry behaviour
//
// Requests retry on HTTP 408/429/5xx and network timeouts with exponential
// backoff (base 1s, max 10s, up to 5 attempts by default), honouring
// Retry-After headers. Context cancellation aborts retries immediately.
package llm
