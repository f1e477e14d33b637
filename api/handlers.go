package api

import (
	"github.com/meridianstudio/site-backend/auth"
	"github.com/meridianstudio/site-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, store ObjectStore, sessions *auth.Sessions, cfg map[string]string) *routeHandlers {
	return &routeHandlers{
		authHandler:        newAuthHandler(database.AdminUserRepo(), sessions),
		projectHandler:     newProjectHandler(database.ProjectRepo()),
		teamMemberHandler:  newTeamMemberHandler(database.TeamMemberRepo()),
		testimonialHandler: newTestimonialHandler(database.TestimonialRepo()),
		blogPostHandler:    newBlogPostHandler(database.BlogPostRepo()),
		contactHandler:     newContactHandler(database.ContactRepo(), database.SiteSettingRepo(), cfg),
		settingsHandler:    newSettingsHandler(database.SiteSettingRepo()),
		uploadHandler:      newUploadHandler(store),
		statsHandler:       newStatsHandler(database),
	}
}
