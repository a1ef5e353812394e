package entity

import "time"

// Like is embedded in its Post. At most one like per user per post.
type Like struct {
	User string `json:"user"`
}

// Comment is embedded in its Post and deletable only by its author.
// Name/Avatar are a snapshot of the author at comment time.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"date"`
}

// Post is an aggregate root. Name/AvatarURL are a snapshot of the author's
// user record at creation time and are deliberately not kept in sync with
// later profile edits. Likes and comments are mutated as part of the whole
// aggregate.
type Post struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar"`
	UserID    string    `json:"user"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"date"`
}
