package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianstudio/site-backend/database"
	"github.com/meridianstudio/site-backend/models"
)

// recentPostsLimit caps the dashboard's recently-authored list.
const recentPostsLimit = 5

type statsHandler struct {
	responder Responder
	logger    zerolog.Logger
	database  database.Database
}

func newStatsHandler(db database.Database) statsHandler {
	logger := log.With().Str("handlerName", "statsHandler").Logger()

	return statsHandler{
		responder: NewResponder(logger),
		logger:    logger,
		database:  db,
	}
}

// getStats reports record counts plus the most recently authored posts for
// the admin dashboard. The post list is ordered by creation time, not
// publish date, so fresh drafts surface first.
func (h statsHandler) getStats() http.HandlerFunc {
	type response struct {
		database.Stats
		RecentPosts []*models.BlogPost `json:"recent_posts"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.database.Stats()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count records", "stats", err))
			return
		}

		recent, err := h.database.BlogPostRepo().ListRecent(true)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find recent posts", "stats", err))
			return
		}
		if len(recent) > recentPostsLimit {
			recent = recent[:recentPostsLimit]
		}
		if recent == nil {
			recent = []*models.BlogPost{}
		}

		h.responder.WriteJSON(w, map[string]response{"stats": {
			Stats:       stats,
			RecentPosts: recent,
		}})
	}
}
