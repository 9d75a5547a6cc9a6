package domain

import "time"

// FeedbackSubmission is one response to the public feedback form. Submissions
// are append-only: the server stamps CreatedAt and generates the ID at insert
// time, and records are never updated afterwards.
type FeedbackSubmission struct {
	ID            string    `bson:"_id,omitempty" json:"_id"`
	Name          string    `bson:"name" json:"name"`
	Email         *string   `bson:"email" json:"email"`
	Phone         string    `bson:"phone" json:"phone"`
	Q1Rating      *int      `bson:"q1_rating" json:"q1_rating"`
	Q2Rating      *int      `bson:"q2_rating" json:"q2_rating"`
	Q3Rating      *int      `bson:"q3_rating" json:"q3_rating"`
	Q4Rating      *int      `bson:"q4_rating" json:"q4_rating"`
	OverallRating *int      `bson:"overall_rating" json:"overall_rating"`
	Comments      *string   `bson:"comments" json:"comments"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// PromptSubmission is one response to the prompt submission form.
type PromptSubmission struct {
	ID        string    `bson:"_id,omitempty" json:"_id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Prompt    string    `bson:"prompt" json:"prompt"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
