package models

import "time"

// Comment is a user's comment on a post. Likes holds the ids of users who
// liked it; NumberOfLikes always equals len(Likes).
type Comment struct {
	CommentID     string    `json:"_id"`
	Content       string    `json:"content"`
	PostID        string    `json:"postId"`
	UserID        string    `json:"userId"`
	Likes         []string  `json:"likes"`
	NumberOfLikes int       `json:"numberOfLikes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CommentView is a comment joined with its author, as shown in a post's
// comment feed. IsLiked reports whether the viewing user liked the comment.
type CommentView struct {
	CommentID     string    `json:"_id"`
	UserID        string    `json:"userId"`
	PostID        string    `json:"postId"`
	Content       string    `json:"content"`
	NumberOfLikes int       `json:"numberOfLikes"`
	CreatedAt     time.Time `json:"createdAt"`
	Username      string    `json:"username"`
	ImgURL        string    `json:"imgUrl"`
	IsLiked       bool      `json:"isLiked"`
}
