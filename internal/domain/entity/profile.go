package entity

import "time"

// ProfileUser is the owner's name/avatar joined in from the users table on
// every profile read.
type ProfileUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Social holds optional social network links. Merged under the same sparse
// patch rule as the top-level profile fields.
type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
}

// Experience is embedded in its Profile and has no identity outside it.
// Entries are prepended (newest first), removed by id and never updated
// in place.
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	From        string `json:"from"`
	To          string `json:"to,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// Education follows the same lifecycle as Experience.
type Education struct {
	ID           string `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

// Profile is an aggregate root, unique per user. Experience, Education and
// Social are persisted as part of the whole aggregate on every mutation.
type Profile struct {
	ID             string       `json:"id"`
	UserID         string       `json:"-"`
	User           ProfileUser  `json:"user"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	Status         string       `json:"status"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Skills         []string     `json:"skills"`
	Social         Social       `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	CreatedAt      time.Time    `json:"date"`
}
