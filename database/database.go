package database

import (
	"gorm.io/gorm"
)

// Stats holds per-table record counts for the admin dashboard.
type Stats struct {
	Projects     int64 `json:"projects"`
	Team         int64 `json:"team"`
	Testimonials int64 `json:"testimonials"`
	Blog         int64 `json:"blog"`
	Contacts     int64 `json:"contacts"`
}

type Database struct {
	projectRepo     *ProjectRepo
	teamMemberRepo  *TeamMemberRepo
	testimonialRepo *TestimonialRepo
	blogPostRepo    *BlogPostRepo
	contactRepo     *ContactRepo
	siteSettingRepo *SiteSettingRepo
	adminUserRepo   *AdminUserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:     NewProjectRepo(db),
		teamMemberRepo:  NewTeamMemberRepo(db),
		testimonialRepo: NewTestimonialRepo(db),
		blogPostRepo:    NewBlogPostRepo(db),
		contactRepo:     NewContactRepo(db),
		siteSettingRepo: NewSiteSettingRepo(db),
		adminUserRepo:   NewAdminUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TeamMemberRepo() *TeamMemberRepo {
	return d.teamMemberRepo
}

func (d Database) TestimonialRepo() *TestimonialRepo {
	return d.testimonialRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) SiteSettingRepo() *SiteSettingRepo {
	return d.siteSettingRepo
}

func (d Database) AdminUserRepo() *AdminUserRepo {
	return d.adminUserRepo
}

// Stats returns record counts across every content table.
func (d Database) Stats() (Stats, error) {
	var stats Stats
	counts := []struct {
		dest *int64
		repo interface{ Count() (int64, error) }
	}{
		{&stats.Projects, d.projectRepo},
		{&stats.Team, d.teamMemberRepo},
		{&stats.Testimonials, d.testimonialRepo},
		{&stats.Blog, d.blogPostRepo},
		{&stats.Contacts, d.contactRepo},
	}
	for _, c := range counts {
		n, err := c.repo.Count()
		if err != nil {
			return stats, err
		}
		*c.dest = n
	}
	return stats, nil
}
