package repository

import (
	"time"

	"github.com/yourorg/news-admin/internal/model"
)

// ts parses a fixed RFC3339 seed timestamp
func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("invalid seed timestamp: " + value)
	}
	return t
}

// SeedNewsItems returns the built-in news collection used when no snapshot
// exists or decoding fails
func SeedNewsItems() []model.NewsItem {
	return []model.NewsItem{
		{
			ID:        "NEWS-1MF93K",
			Title:     "New Technology Breakthrough in AI",
			Content:   "Researchers have developed a new machine learning algorithm that promises to revolutionize how AI understands natural language.",
			Category:  "Technology",
			Image:     "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b?auto=format&fit=crop&w=800&q=80",
			Keywords:  []string{"AI", "Machine Learning", "Technology"},
			CreatedAt: ts("2023-04-10T08:30:00Z"),
			UpdatedAt: ts("2023-04-10T08:30:00Z"),
		},
		{
			ID:        "NEWS-2AB7CD",
			Title:     "Global Summit on Climate Change Begins",
			Content:   "World leaders gather to discuss urgent measures to combat climate change and reduce carbon emissions worldwide.",
			Category:  "Politics",
			Image:     "https://images.unsplash.com/photo-1610552050890-fe99536c2615?auto=format&fit=crop&w=800&q=80",
			Keywords:  []string{"Climate Change", "Politics", "Global Summit"},
			CreatedAt: ts("2023-04-09T14:20:00Z"),
			UpdatedAt: ts("2023-04-09T15:45:00Z"),
		},
		{
			ID:        "NEWS-3DE98F",
			Title:     "Market Trends Show Strong Economic Recovery",
			Content:   "Recent economic indicators suggest a robust recovery in global markets, with key sectors showing significant growth.",
			Category:  "Business",
			Image:     "https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&w=800&q=80",
			Keywords:  []string{"Economy", "Markets", "Business"},
			CreatedAt: ts("2023-04-08T10:15:00Z"),
			UpdatedAt: ts("2023-04-08T10:15:00Z"),
		},
		{
			ID:        "NEWS-4GH12J",
			Title:     "Breakthrough in Renewable Energy Storage",
			Content:   "Scientists have developed a new battery technology that could make renewable energy more reliable and cost-effective.",
			Category:  "Science",
			Image:     "https://images.unsplash.com/photo-1508514177221-188b1cf16e9d?auto=format&fit=crop&w=800&q=80",
			Video:     "https://example.com/video.mp4",
			Keywords:  []string{"Renewable Energy", "Science", "Technology"},
			CreatedAt: ts("2023-04-07T09:45:00Z"),
			UpdatedAt: ts("2023-04-07T11:30:00Z"),
		},
		{
			ID:        "NEWS-5KL75M",
			Title:     "Cultural Festival Celebrates Diversity",
			Content:   "The annual Global Cultural Festival kicked off with performances and exhibitions celebrating cultural diversity from around the world.",
			Category:  "Culture",
			Image:     "https://images.unsplash.com/photo-1557672172-298e090bd0f1?auto=format&fit=crop&w=800&q=80",
			Audio:     "https://example.com/audio.mp3",
			Keywords:  []string{"Culture", "Festival", "Art"},
			CreatedAt: ts("2023-04-06T16:20:00Z"),
			UpdatedAt: ts("2023-04-06T16:20:00Z"),
		},
	}
}

// SeedUsers returns the built-in user collection
func SeedUsers() []model.User {
	return []model.User{
		{
			ID:        "USER-1AB2CD",
			Name:      "John Doe",
			Email:     "john.doe@example.com",
			Mobile:    "+1 (555) 123-4567",
			Location:  "New York, USA",
			Role:      "Editor",
			Status:    model.UserStatusActive,
			CreatedAt: ts("2023-04-15T08:30:00Z"),
			UpdatedAt: ts("2023-04-15T08:30:00Z"),
		},
		{
			ID:        "USER-3EF4GH",
			Name:      "Jane Smith",
			Email:     "jane.smith@example.com",
			Mobile:    "+1 (555) 987-6543",
			Location:  "Los Angeles, USA",
			Role:      "Admin",
			Status:    model.UserStatusActive,
			CreatedAt: ts("2023-04-10T14:20:00Z"),
			UpdatedAt: ts("2023-04-10T15:45:00Z"),
		},
		{
			ID:        "USER-5IJ6KL",
			Name:      "Robert Johnson",
			Email:     "robert.johnson@example.com",
			Mobile:    "+1 (555) 456-7890",
			Location:  "Chicago, USA",
			Role:      "Author",
			Status:    model.UserStatusInactive,
			CreatedAt: ts("2023-04-08T10:15:00Z"),
			UpdatedAt: ts("2023-04-08T10:15:00Z"),
		},
		{
			ID:        "USER-7MN8OP",
			Name:      "Emily Brown",
			Email:     "emily.brown@example.com",
			Mobile:    "+1 (555) 789-0123",
			Location:  "Miami, USA",
			Role:      "Author",
			Status:    model.UserStatusActive,
			CreatedAt: ts("2023-04-05T09:45:00Z"),
			UpdatedAt: ts("2023-04-05T11:30:00Z"),
		},
		{
			ID:        "USER-9QR0ST",
			Name:      "Michael Wilson",
			Email:     "michael.wilson@example.com",
			Mobile:    "+1 (555) 234-5678",
			Location:  "Seattle, USA",
			Role:      "Editor",
			Status:    model.UserStatusActive,
			CreatedAt: ts("2023-04-02T16:20:00Z"),
			UpdatedAt: ts("2023-04-02T16:20:00Z"),
		},
		{
			ID:        "USER-1UV2WX",
			Name:      "Sarah Davis",
			Email:     "sarah.davis@example.com",
			Mobile:    "+1 (555) 345-6789",
			Location:  "Boston, USA",
			Role:      "Author",
			Status:    model.UserStatusActive,
			CreatedAt: ts("2023-03-30T13:10:00Z"),
			UpdatedAt: ts("2023-03-30T13:10:00Z"),
		},
		{
			ID:        "USER-3YZ4AB",
			Name:      "David Anderson",
			Email:     "david.anderson@example.com",
			Mobile:    "+1 (555) 567-8901",
			Location:  "Denver, USA",
			Role:      "Admin",
			Status:    model.UserStatusActive,
			CreatedAt: ts("2023-03-28T11:25:00Z"),
			UpdatedAt: ts("2023-03-28T11:25:00Z"),
		},
		{
			ID:        "USER-5CD6EF",
			Name:      "Jennifer Taylor",
			Email:     "jennifer.taylor@example.com",
			Mobile:    "+1 (555) 890-1234",
			Location:  "Austin, USA",
			Role:      "Editor",
			Status:    model.UserStatusInactive,
			CreatedAt: ts("2023-03-25T09:15:00Z"),
			UpdatedAt: ts("2023-03-25T09:15:00Z"),
		},
		{
			ID:        "USER-7GH8IJ",
			Name:      "Christopher Martinez",
			Email:     "christopher.martinez@example.com",
			Mobile:    "+1 (555) 901-2345",
			Location:  "San Francisco, USA",
			Role:      "Author",
			Status:    model.UserStatusActive,
			CreatedAt: ts("2023-03-23T14:40:00Z"),
			UpdatedAt: ts("2023-03-23T16:30:00Z"),
		},
		{
			ID:        "USER-9KL0MN",
			Name:      "Jessica Thompson",
			Email:     "jessica.thompson@example.com",
			Mobile:    "+1 (555) 012-3456",
			Location:  "Portland, USA",
			Role:      "Editor",
			Status:    model.UserStatusActive,
			CreatedAt: ts("2023-03-20T10:50:00Z"),
			UpdatedAt: ts("2023-03-20T10:50:00Z"),
		},
	}
}

// SeedAdvertisements returns the built-in advertisement collection.
// Advertisements start out empty; campaigns are created by the admin.
func SeedAdvertisements() []model.Advertisement {
	return []model.Advertisement{}
}
