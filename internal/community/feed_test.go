package community

import (
	"testing"
	"time"

	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 1, 26, 8, 0, 0, 0, time.Local)
}

func TestPostPrependsLocalPost(t *testing.T) {
	f := NewFeed(fixedNow, model.SeedPosts()...)

	_, err := f.Post(NewPost{Content: "   "})
	assert.ErrorIs(t, err, ErrContentRequired)
	assert.Len(t, f.Posts(), 3)

	p, err := f.Post(NewPost{Type: model.PostQuote, Content: "Keep going", Tags: "motivation, ,daily"})
	require.NoError(t, err)
	assert.Equal(t, LocalAuthor, p.Author)
	assert.Equal(t, 0, p.Likes)
	assert.Empty(t, p.Comments)
	assert.Equal(t, "2024-01-26", p.Date)
	assert.Equal(t, []string{"motivation", "daily"}, p.Tags)
	assert.Equal(t, p, f.Posts()[0])

	p, err = f.Post(NewPost{Type: "poll", Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, model.PostDiscussion, p.Type)
}

func TestLike(t *testing.T) {
	f := NewFeed(fixedNow, model.SeedPosts()...)
	posts := f.Posts()

	require.True(t, f.Like(posts[0].ID))
	require.True(t, f.Like(posts[0].ID))
	assert.Equal(t, posts[0].Likes+2, f.Posts()[0].Likes)
	assert.Equal(t, posts[1:], f.Posts()[1:])
	assert.False(t, f.Like("missing"))
}

func TestComment(t *testing.T) {
	f := NewFeed(fixedNow, model.SeedPosts()...)
	posts := f.Posts()

	_, err := f.Comment(posts[1].ID, " ")
	assert.ErrorIs(t, err, ErrCommentRequired)
	_, err = f.Comment("missing", "hi")
	assert.ErrorIs(t, err, store.ErrNotFound)

	c, err := f.Comment(posts[1].ID, "Nice work")
	require.NoError(t, err)
	assert.Equal(t, LocalAuthor, c.Author)

	got := f.Posts()[1].Comments
	require.Len(t, got, 2)
	assert.Equal(t, c, got[1])
	// The earlier snapshot is not affected
	assert.Len(t, posts[1].Comments, 1)
}

func TestByTypeAndStats(t *testing.T) {
	f := NewFeed(fixedNow, model.SeedPosts()...)

	assert.Len(t, f.ByType(""), 3)
	quotes := f.ByType(model.PostQuote)
	require.Len(t, quotes, 1)
	assert.Equal(t, "Alex Chen", quotes[0].Author)
	assert.Empty(t, f.ByType(model.PostImage))

	assert.Equal(t, Stats{Posts: 3, Likes: 55, Comments: 5}, f.Stats())
}

func TestTrendingOrdering(t *testing.T) {
	f := NewFeed(fixedNow, model.SeedPosts()...)

	// physics appears twice; every other tag once, sorted alphabetically
	assert.Equal(t, []TagCount{
		{"physics", 2},
		{"achievement", 1},
		{"chemistry", 1},
		{"help", 1},
		{"mock-test", 1},
	}, f.Trending())

	_, err := f.Post(NewPost{Content: "x", Tags: "help,zoology"})
	require.NoError(t, err)
	_, err = f.Post(NewPost{Content: "y", Tags: "help"})
	require.NoError(t, err)

	trending := f.Trending()
	assert.Equal(t, TagCount{"help", 3}, trending[0])
	assert.Equal(t, TagCount{"physics", 2}, trending[1])
}

func TestTrendingEmpty(t *testing.T) {
	assert.Empty(t, NewFeed(fixedNow).Trending())
}
