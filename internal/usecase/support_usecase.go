package usecase

import "context"

// --- Input DTOs ---

// ChatInput defines the data required to answer a support question.
type ChatInput struct {
	Question string `json:"question" form:"question" validate:"required"`
}

// --- Output DTOs ---

// ChatOutput returns the generated support answer.
type ChatOutput struct {
	Response string
}

// SupportUsecase defines the interface for generated-text operations. None of
// these can fail on backend trouble; the generators degrade to deterministic
// fallback text instead.
type SupportUsecase interface {
	// Chat answers a free-form customer question.
	Chat(ctx context.Context, input *ChatInput) *ChatOutput

	// CourseOutline drafts an outline for a catalog course.
	CourseOutline(ctx context.Context, courseID string) (string, error)

	// ProductDescription drafts marketing copy for a catalog product.
	ProductDescription(ctx context.Context, productID string) (string, error)
}
