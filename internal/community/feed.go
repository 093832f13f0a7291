// Package community holds the local community feed: posts, likes,
// comments and trending tags.
package community

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/store"
)

// LocalAuthor is the author name stamped on posts made from this terminal
const LocalAuthor = "You"

// TrendingLimit caps the trending tag list
const TrendingLimit = 5

var (
	ErrContentRequired = errors.New("content is required")
	ErrCommentRequired = errors.New("comment text is required")
)

// NewPost holds the new-post form values
type NewPost struct {
	Type     model.PostType
	Content  string
	Tags     string // Comma separated
	ImageURL string // Data URL for image posts
}

// Stats summarizes the feed
type Stats struct {
	Posts    int
	Likes    int
	Comments int
}

// TagCount is a tag and the number of posts carrying it
type TagCount struct {
	Tag   string
	Count int
}

// Feed is the community post list, newest first
type Feed struct {
	posts *store.List[model.CommunityPost]
	now   func() time.Time
}

// NewFeed creates a feed with the given posts
func NewFeed(now func() time.Time, posts ...model.CommunityPost) *Feed {
	if now == nil {
		now = time.Now
	}
	return &Feed{posts: store.NewList(posts...), now: now}
}

// Posts returns every post, newest first
func (f *Feed) Posts() []model.CommunityPost { return f.posts.Items() }

// Post prepends a post authored locally with zero likes
func (f *Feed) Post(in NewPost) (model.CommunityPost, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" && in.ImageURL == "" {
		return model.CommunityPost{}, ErrContentRequired
	}
	typ := in.Type
	if !validType(typ) {
		typ = model.PostDiscussion
	}
	p := model.CommunityPost{
		ID:       model.NewID(),
		Type:     typ,
		Content:  content,
		ImageURL: in.ImageURL,
		Date:     model.Today(f.now()),
		Comments: []model.Comment{},
		Tags:     model.SplitTags(in.Tags),
		Author:   LocalAuthor,
	}
	f.posts.Prepend(p)
	return p, nil
}

// Like adds one like to the post with the given id
func (f *Feed) Like(id string) bool {
	return f.posts.Update(id, func(p model.CommunityPost) model.CommunityPost {
		p.Likes++
		return p
	})
}

// Comment appends a locally authored comment to the post with the given id
func (f *Feed) Comment(id, text string) (model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Comment{}, ErrCommentRequired
	}
	c := model.Comment{
		ID:     model.NewID(),
		Text:   text,
		Date:   model.Today(f.now()),
		Author: LocalAuthor,
	}
	ok := f.posts.Update(id, func(p model.CommunityPost) model.CommunityPost {
		comments := make([]model.Comment, len(p.Comments), len(p.Comments)+1)
		copy(comments, p.Comments)
		p.Comments = append(comments, c)
		return p
	})
	if !ok {
		return model.Comment{}, store.ErrNotFound
	}
	return c, nil
}

// Delete removes the post with the given id
func (f *Feed) Delete(id string) bool {
	return f.posts.Delete(id)
}

// ByType returns posts of the given type; an empty type returns all posts
func (f *Feed) ByType(t model.PostType) []model.CommunityPost {
	if t == "" {
		return f.Posts()
	}
	return f.posts.Filter(func(p model.CommunityPost) bool { return p.Type == t })
}

// Stats totals posts, likes and comments across the feed
func (f *Feed) Stats() Stats {
	var s Stats
	for _, p := range f.posts.Items() {
		s.Posts++
		s.Likes += p.Likes
		s.Comments += len(p.Comments)
	}
	return s
}

// Trending returns the most used tags, most frequent first. Ties are
// broken alphabetically.
func (f *Feed) Trending() []TagCount {
	counts := make(map[string]int)
	for _, p := range f.posts.Items() {
		for _, tag := range p.Tags {
			counts[tag]++
		}
	}

	tags := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		tags = append(tags, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})
	if len(tags) > TrendingLimit {
		tags = tags[:TrendingLimit]
	}
	return tags
}

func validType(t model.PostType) bool {
	for _, pt := range model.PostTypes {
		if pt == t {
			return true
		}
	}
	return false
}
