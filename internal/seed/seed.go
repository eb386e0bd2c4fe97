package seed

import (
	"context"
	"fmt"

	"squadsite-backend/internal/domains/friend"
	"squadsite-backend/internal/domains/memory"
)

// sampleFriends and sampleMemories are the fixed starter content shown
// before anyone has added their own. Inserted once at startup through
// the normal create path, so ids and timestamps are assigned as usual.
var sampleFriends = []friend.CreateInput{
	{
		Name:        "Sarah",
		Bio:         "The one who always suggests the craziest adventures and somehow convinces us all to join. Mountain climbing, anyone?",
		Avatar:      "https://images.unsplash.com/photo-1494790108755-2616b02eaf48?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
		Role:        "Adventure Seeker",
		SocialLinks: []string{"instagram", "twitter"},
	},
	{
		Name:        "Mike",
		Bio:         "Our resident foodie who can turn any random ingredients into a gourmet meal. Pizza night coordinator extraordinaire!",
		Avatar:      "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
		Role:        "Master Chef",
		SocialLinks: []string{"linkedin", "github"},
	},
	{
		Name:        "Emma",
		Bio:         "The photographer of the group who captures every moment. Thanks to her, we have all these amazing memories preserved!",
		Avatar:      "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
		Role:        "Memory Keeper",
		SocialLinks: []string{"instagram", "camera"},
	},
}

var sampleMemories = []memory.CreateInput{
	{
		Title:       "Squad Formation",
		Description: "The day we all officially became best friends. It started with a random group chat and now look at us!",
		Date:        "January 2023",
		Type:        "milestone",
	},
	{
		Title:       "First Epic Adventure",
		Description: "Our first group hiking trip where Mike forgot the map and we got 'temporarily lost' for 4 hours.",
		Date:        "March 2023",
		Type:        "adventure",
	},
	{
		Title:       "YouTube Channel Launch",
		Description: `"Let's start a YouTube channel," said Sarah. "It'll be fun," she said. And it actually was!`,
		Date:        "June 2023",
		Type:        "milestone",
	},
	{
		Title:       "Festival Squad Goals",
		Description: "Three days of music, questionable food choices, and the best group bonding experience ever.",
		Date:        "September 2023",
		Type:        "event",
	},
	{
		Title:       "Squad Website Launch",
		Description: "Emma suggested we needed a place to keep all our memories safe. And here we are!",
		Date:        "December 2023",
		Type:        "milestone",
	},
}

// Run inserts the sample friends and memories into freshly constructed
// repositories.
func Run(ctx context.Context, friends friend.Repository, memories memory.Repository) error {
	for _, input := range sampleFriends {
		if _, err := friends.Create(ctx, input); err != nil {
			return fmt.Errorf("failed to seed friend %q: %w", input.Name, err)
		}
	}

	for _, input := range sampleMemories {
		if _, err := memories.Create(ctx, input); err != nil {
			return fmt.Errorf("failed to seed memory %q: %w", input.Title, err)
		}
	}

	return nil
}
