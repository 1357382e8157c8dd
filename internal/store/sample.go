package store

import "github.com/sujalbistaa/postpilot/internal/models"

// SamplePosts is the demo content loaded on startup when seeding is enabled.
func SamplePosts() []models.Draft {
	return []models.Draft{
		{
			Content:       "Excited to announce our new product launch! 🚀 Check out the amazing features we've built for you.",
			Platforms:     []models.Platform{models.PlatformTwitter, models.PlatformLinkedIn},
			ScheduledDate: "2025-01-15",
			ScheduledTime: "10:00",
			Status:        models.StatusScheduled,
		},
		{
			Content:       "Behind the scenes of our latest photoshoot! Stay tuned for more updates.",
			Platforms:     []models.Platform{models.PlatformInstagram, models.PlatformFacebook},
			ScheduledDate: "2025-01-10",
			ScheduledTime: "14:30",
			Status:        models.StatusScheduled,
		},
		{
			Content:       "Thank you for 10k followers! We appreciate your support.",
			Platforms:     []models.Platform{models.PlatformTwitter, models.PlatformFacebook, models.PlatformInstagram},
			ScheduledDate: "2024-12-20",
			ScheduledTime: "09:00",
			Status:        models.StatusPublished,
		},
	}
}
