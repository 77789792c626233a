package models

import "time"

// DefaultPostCategory is stored when a post is created without a category.
const DefaultPostCategory = "uncategorized"

// Post is a blog article. Slug is derived once from the title at creation
// time and is not touched by later edits.
type Post struct {
	PostID    string    `json:"_id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Image     string    `json:"image"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostUpdate is a partial update of a post. Nil fields are left unchanged.
type PostUpdate struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
	Image    *string `json:"image,omitempty"`
}

// PostFilter narrows the public post listing. Empty fields do not filter.
type PostFilter struct {
	UserID     string
	Category   string
	Slug       string
	PostID     string
	SearchTerm string

	ListParams
}

// PostsPage is the response of the public post listing.
type PostsPage struct {
	Posts           []Post `json:"posts"`
	TotalPostsCount int64  `json:"totalPostsCount"`
	LastMonthPosts  int64  `json:"lastMonthPosts"`
}
