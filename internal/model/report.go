package model

import (
	"time"
)

// NewsReport represents a reader report filed against a news article
type NewsReport struct {
	ID           string    `json:"id"`
	ArticleID    string    `json:"articleId"`
	ArticleTitle string    `json:"articleTitle"`
	Reporter     string    `json:"reporter"`
	Reason       string    `json:"reason"`
	ReportedAt   time.Time `json:"reportedAt"`
}
