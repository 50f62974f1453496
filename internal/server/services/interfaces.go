// Package services contains the AutoBlog server business logic: credential
// management, the generate-then-publish pipeline, the post ledger queries,
// and the daily scheduler.
package services

import (
	"context"

	"github.com/dmitrijs2005/autoblog/internal/server/blogger"
	"github.com/dmitrijs2005/autoblog/internal/server/gemini"
)

// Generator produces content from a topic prompt and can probe a key for
// validity. Implemented by gemini.Client.
type Generator interface {
	Generate(ctx context.Context, apiKey string, topic string) (*gemini.Generated, error)
	Validate(ctx context.Context, apiKey string) bool
}

// Publisher creates posts on the target blog. Implemented by blogger.Client.
type Publisher interface {
	Publish(ctx context.Context, apiKey, blogID, title, content string) (*blogger.PublishResponse, error)
}
