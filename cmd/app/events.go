package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/sushihentaime/frogblogs/internal/common"
)

// publishCommentAttached announces that a comment now hangs off a blog. The write has already
// committed, so a broker failure is logged and swallowed.
func (app *application) publishCommentAttached(evt common.CommentAttachedEvent) {
	if app.producer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := common.PublishCommentAttached(ctx, app.producer, evt)
	if err != nil {
		app.logger.Error("could not publish comment attached event",
			slog.String("error", err.Error()),
			slog.String("schema", evt.Schema),
			slog.Int("blog_id", evt.BlogID),
			slog.Int("comment_id", evt.CommentID))
	}
}
