// Package transform defines the engine-side client interface for
// transformer stages. A stage is either an external plugin reached over
// gRPC or an in-process script stage backed by the field transformation
// harness; runner stages call a transform.Client with timeouts, retries,
// and close lifecycle either way.
package transform
