package friend

import (
	"time"
)

// Friend is one roster entry. SocialLinks is an ordered list of
// provider tags ("instagram", "github", ...) rendered as icons.
type Friend struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	Avatar      string    `json:"avatar,omitempty"`
	Role        string    `json:"role"`
	SocialLinks []string  `json:"socialLinks,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
