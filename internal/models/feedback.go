package models

type Feedback struct {
	ID           int    `json:"id"`
	UserID       string `json:"user_id"`
	ConferenceID int    `json:"conference_id"`
	Rating       int    `json:"rating"`
	Comments     string `json:"comments"`
}
