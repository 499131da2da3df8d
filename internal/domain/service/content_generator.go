package service

import "context"

// ContentGenerator wraps the generative-text backend. Implementations must
// never return an error for backend failures: every method degrades to a
// deterministic fallback string so the HTTP surface cannot 5xx because the
// text service is down.
type ContentGenerator interface {
	// AnswerCustomerQuestion produces a support answer for a free-form question.
	AnswerCustomerQuestion(ctx context.Context, question string) string

	// GenerateCourseOutline drafts a course outline for a topic at a level.
	GenerateCourseOutline(ctx context.Context, topic, level, duration string) string

	// GenerateProductDescription drafts marketing copy for a product.
	GenerateProductDescription(ctx context.Context, productName string, features []string) string
}
