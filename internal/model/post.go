package model

// PostType categorizes community posts
type PostType string

const (
	PostImage       PostType = "image"
	PostQuote       PostType = "quote"
	PostAchievement PostType = "achievement"
	PostDiscussion  PostType = "discussion"
)

// PostTypes lists post types in form order
var PostTypes = []PostType{PostDiscussion, PostQuote, PostAchievement, PostImage}

// Comment is a reply under a community post
type Comment struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Date   string `json:"date"`
	Author string `json:"author"`
}

// CommunityPost is a single entry in the community feed
type CommunityPost struct {
	ID       string    `json:"id"`
	Type     PostType  `json:"type"`
	Content  string    `json:"content"`
	ImageURL string    `json:"imageUrl,omitempty"`
	Date     string    `json:"date"`
	Likes    int       `json:"likes"`
	Comments []Comment `json:"comments"`
	Tags     []string  `json:"tags"`
	Author   string    `json:"author"`
}

// Key returns the record id
func (p CommunityPost) Key() string { return p.ID }
