package entity

import "errors"

// Domain errors
var (
	// Ingestion errors
	ErrUnsupportedFormat      = errors.New("unsupported document format (only PDF or DOCX)")
	ErrEmbeddingCountMismatch = errors.New("embedding count does not match chunk count")

	// Knowledge base errors
	ErrArtifactsNotFound = errors.New("persisted knowledge base artifacts not found")
	ErrArtifactMismatch  = errors.New("vector index and chunk metadata artifacts disagree")
	ErrIndexNotReady     = errors.New("knowledge base is not initialized")

	// Validation errors
	ErrEmptyQuestion = errors.New("question text must not be empty")
)
