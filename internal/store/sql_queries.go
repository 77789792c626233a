package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-blog/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns    = []string{"id", "username", "email", "password", "profile_picture", "is_admin", "created_at", "updated_at"}
	postColumns    = []string{"id", "user_id", "title", "content", "category", "image", "slug", "created_at", "updated_at"}
	commentColumns = []string{"id", "content", "post_id", "user_id", "to_json(likes)", "number_of_likes", "created_at", "updated_at"}
)

const (
	createUser = `INSERT INTO users (id, username, email, password, profile_picture, is_admin)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, username, email, password, profile_picture, is_admin, created_at, updated_at;`

	findUserByEmail = `SELECT id, username, email, password, profile_picture, is_admin, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, username, email, password, profile_picture, is_admin, created_at, updated_at
    FROM users
    WHERE id = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	createPost = `INSERT INTO posts (id, user_id, title, content, category, image, slug)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, user_id, title, content, category, image, slug, created_at, updated_at;`

	findPostByID = `SELECT id, user_id, title, content, category, image, slug, created_at, updated_at
    FROM posts
    WHERE id = $1;`

	deletePost = `DELETE FROM posts WHERE id = $1;`

	deleteComment = `DELETE FROM comments WHERE id = $1;`

	// listPostComments joins every comment of post $1 with its author.
	// Comments whose author no longer exists keep empty username and imgUrl.
	// isLiked is computed for the viewer $2.
	listPostComments = `SELECT c.id, c.user_id, c.post_id, c.content, c.number_of_likes, c.created_at,
        COALESCE(u.username, ''), COALESCE(u.profile_picture, ''),
        COALESCE($2::uuid = ANY(c.likes), FALSE)
    FROM comments c
    LEFT JOIN users u ON u.id = c.user_id
    WHERE c.post_id = $1
    ORDER BY c.created_at ASC, c.id ASC;`
)

// commentReturning is the select list shared by every statement that reads
// a whole comment row back.
var commentReturning = strings.Join(commentColumns, ", ")

var (
	createComment = `INSERT INTO comments (id, content, post_id, user_id)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + commentReturning + `;`

	findCommentByID = `SELECT ` + commentReturning + `
    FROM comments
    WHERE id = $1;`

	// toggleCommentLike flips membership of $2 in likes and moves
	// number_of_likes in the same direction. Both CASE expressions read the
	// pre-update row, and PostgreSQL re-evaluates them against the latest
	// committed version when a concurrent toggle holds the row lock.
	toggleCommentLike = `UPDATE comments
    SET likes = CASE WHEN $2::uuid = ANY(likes) THEN array_remove(likes, $2::uuid) ELSE array_append(likes, $2::uuid) END,
        number_of_likes = CASE WHEN $2::uuid = ANY(likes) THEN number_of_likes - 1 ELSE number_of_likes + 1 END,
        updated_at = NOW()
    WHERE id = $1
    RETURNING ` + commentReturning + `;`

	updateCommentContent = `UPDATE comments
    SET content = $2, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + commentReturning + `;`
)

// orderDirection maps the listing sort flag to SQL.
func orderDirection(ascending bool) string {
	if ascending {
		return "ASC"
	}
	return "DESC"
}

// escapeLike escapes the LIKE wildcards in s so it matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// buildListUsersQuery selects one page of users sorted by creation time.
func buildListUsersQuery(params models.ListParams) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		OrderBy("created_at "+orderDirection(params.Ascending), "id "+orderDirection(params.Ascending)).
		Offset(params.StartIndex).
		Limit(params.Limit).
		ToSql()
}

// buildCountQuery counts the rows of table, restricted to rows created at or
// after since unless since is zero.
func buildCountQuery(table string, since time.Time) (string, []any, error) {
	query := psql.Select("COUNT(*)").From(table)
	if !since.IsZero() {
		query = query.Where(sq.GtOrEq{"created_at": since})
	}
	return query.ToSql()
}

// buildListPostsQuery selects one page of posts matching filter, sorted by
// last update. Id filters must already be validated as UUIDs.
func buildListPostsQuery(filter models.PostFilter) (string, []any, error) {
	query := psql.Select(postColumns...).From("posts")

	if filter.UserID != "" {
		query = query.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Category != "" {
		query = query.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Slug != "" {
		query = query.Where(sq.Eq{"slug": filter.Slug})
	}
	if filter.PostID != "" {
		query = query.Where(sq.Eq{"id": filter.PostID})
	}
	if filter.SearchTerm != "" {
		pattern := "%" + escapeLike(filter.SearchTerm) + "%"
		query = query.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"content": pattern},
		})
	}

	return query.
		OrderBy("updated_at "+orderDirection(filter.Ascending), "id "+orderDirection(filter.Ascending)).
		Offset(filter.StartIndex).
		Limit(filter.Limit).
		ToSql()
}

// buildUpdateUserQuery sets the non-nil fields of update on user id and
// returns the updated row.
func buildUpdateUserQuery(id string, update models.UserUpdate) (string, []any, error) {
	query := psql.Update("users").Set("updated_at", sq.Expr("NOW()"))

	if update.Username != nil {
		query = query.Set("username", *update.Username)
	}
	if update.Password != nil {
		query = query.Set("password", *update.Password)
	}
	if update.ProfilePicture != nil {
		query = query.Set("profile_picture", *update.ProfilePicture)
	}

	return query.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

// buildUpdatePostQuery sets the non-nil fields of update on post id and
// returns the updated row. The slug is never changed.
func buildUpdatePostQuery(id string, update models.PostUpdate) (string, []any, error) {
	query := psql.Update("posts").Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Content != nil {
		query = query.Set("content", *update.Content)
	}
	if update.Category != nil {
		query = query.Set("category", *update.Category)
	}
	if update.Image != nil {
		query = query.Set("image", *update.Image)
	}

	return query.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(postColumns, ", ")).
		ToSql()
}
