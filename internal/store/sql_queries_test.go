package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "plain", escapeLike("plain"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
}

func TestBuildListPostsQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.PostFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "no filters",
			filter: models.PostFilter{ListParams: models.ListParams{Limit: 9}},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.NotContains(t, query, "WHERE")
				assert.Contains(t, query, "ORDER BY updated_at DESC")
				assert.Contains(t, query, "LIMIT 9")
				assert.Empty(t, args)
			},
		},
		{
			name: "every filter",
			filter: models.PostFilter{
				UserID:     testUserID,
				Category:   "go",
				Slug:       "hello-world42",
				PostID:     testPostID,
				SearchTerm: "Foo",
				ListParams: models.ListParams{StartIndex: 9, Limit: 9, Ascending: true},
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				for _, clause := range []string{"user_id = $1", "category = $2", "slug = $3", "id = $4", "title ILIKE $5", "content ILIKE $6"} {
					assert.Contains(t, query, clause)
				}
				assert.Contains(t, query, "ORDER BY updated_at ASC")
				assert.Contains(t, query, "OFFSET 9")
				require.Len(t, args, 6)
				assert.Equal(t, "%Foo%", args[4])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListPostsQuery(tt.filter)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func TestBuildCountQuery(t *testing.T) {
	query, args, err := buildCountQuery("posts", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM posts", query)
	assert.Empty(t, args)

	since := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	query, args, err = buildCountQuery("users", since)
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM users WHERE created_at >= $1", query)
	assert.Equal(t, []any{since}, args)
}

func TestBuildUpdateQueries_OnlyTouchProvidedFields(t *testing.T) {
	picture := ""
	query, args, err := buildUpdateUserQuery(testUserID, models.UserUpdate{ProfilePicture: &picture})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "UPDATE users SET updated_at = NOW(), profile_picture = $1 WHERE id = $2"))
	assert.NotContains(t, query, "username =")
	assert.NotContains(t, query, "password =")
	assert.Equal(t, []any{"", testUserID}, args)

	category := "go"
	query, args, err = buildUpdatePostQuery(testPostID, models.PostUpdate{Category: &category})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "UPDATE posts SET updated_at = NOW(), category = $1 WHERE id = $2"))
	assert.NotContains(t, query, "slug =")
	assert.Equal(t, []any{"go", testPostID}, args)
}

func TestCommentStatements_ReadBackScannedColumns(t *testing.T) {
	want := "id, content, post_id, user_id, to_json(likes), number_of_likes, created_at, updated_at"

	for name, query := range map[string]string{
		"create":  createComment,
		"toggle":  toggleCommentLike,
		"content": updateCommentContent,
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, strings.HasSuffix(query, "RETURNING "+want+";"), query)
		})
	}

	assert.True(t, strings.HasPrefix(findCommentByID, "SELECT "+want+"\n"), findCommentByID)
}
