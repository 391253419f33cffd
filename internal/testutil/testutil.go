// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/jackpotai/web/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// NewTestSite returns a small, valid site with one page of every template
// and a redirect of every supported status.
func NewTestSite(t testing.TB) *model.Site {
	t.Helper()
	return &model.Site{
		URL:         "https://example.test",
		Name:        "JackpotAI",
		Tagline:     "AI-Powered Lottery Number Generator",
		LastUpdated: "2025-03-20",
		App:         model.App{Name: "JackpotAI", AppStoreID: "6444195595"},
		Navigation: []model.NavLink{
			{Label: "Features", Href: "/#features"},
			{Label: "Privacy Policy", Href: "/privacy-policy"},
		},
		Download: model.NavLink{Label: "Download", Href: "https://apps.apple.com/us/app/jackpotai/id6444195595"},
		Pages: []model.Page{
			{
				Path:     "/",
				Template: model.TemplateHome,
				Title:    "JackpotAI",
				HowTo:    "usage",
				Schemas:  []string{"MobileApplication", "FAQPage", "HowTo", "Organization", "Review"},
				Sitemap:  model.SitemapEntry{Priority: model.Priority(1), ChangeFreq: "daily"},
			},
			{
				Path:        "/how-it-works",
				Template:    model.TemplateHowItWorks,
				Title:       "How JackpotAI Works",
				HowTo:       "process",
				Breadcrumbs: true,
				Schemas:     []string{"BreadcrumbList", "HowTo"},
			},
			{
				Path:        "/privacy-policy",
				Template:    model.TemplatePrivacyPolicy,
				Title:       "Privacy Policy",
				Breadcrumbs: true,
				Schemas:     []string{"BreadcrumbList", "Organization"},
				Sitemap:     model.SitemapEntry{Priority: model.Priority(0.5), ChangeFreq: "monthly"},
			},
		},
		Redirects: []model.Redirect{
			{From: "/privacy", To: "/privacy-policy", Status: model.RedirectPermanentRedirect},
			{From: "/download", To: "https://apps.apple.com/us/app/jackpotai/id6444195595", Status: model.RedirectFound},
			{From: "/old-home", To: "/", Status: model.RedirectPermanent},
			{From: "/beta", To: "/how-it-works", Status: model.RedirectTemporary},
		},
		FAQs: []model.FAQ{
			{Question: "Does JackpotAI guarantee I'll win the lottery?", Answer: "No."},
		},
		Testimonials: []model.Testimonial{
			{Quote: "Great app", Name: "Sarah M.", Title: "Premium User", Rating: "5", Featured: true},
		},
		HowTos: map[string]model.HowTo{
			"usage": {
				Name:  "How to Use JackpotAI",
				Steps: []model.HowToStep{{Name: "Select Your Lottery Game", Text: "Choose a game."}},
			},
			"process": {
				Name:  "How JackpotAI Generates Numbers",
				Steps: []model.HowToStep{{Name: "Data Collection", Text: "Collect draws.", ImageURL: "/data-collection.png"}},
			},
		},
		Version: "testversion",
	}
}
