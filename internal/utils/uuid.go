package utils

import "github.com/google/uuid"

// TraceIDGenerator produces request trace identifiers.
type TraceIDGenerator struct {
}

// NewTraceIDGenerator returns a generator of time-ordered UUIDv7 strings.
func NewTraceIDGenerator() *TraceIDGenerator {
	return &TraceIDGenerator{}
}

// Generate returns a new trace id. It falls back to a random UUIDv4 when
// a UUIDv7 cannot be created.
func (g *TraceIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
