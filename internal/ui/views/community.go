package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/studydeck/internal/community"
	"github.com/dori/studydeck/internal/media"
	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/ui/theme"
)

// CommunityMode represents the current mode of the community view
type CommunityMode int

const (
	CommunityModeNormal CommunityMode = iota
	CommunityModePost
	CommunityModeComment
)

// CommunityView is the community feed
type CommunityView struct {
	deps   Deps
	width  int
	height int

	mode     CommunityMode
	cursor   int
	filter   model.PostType // Empty shows every post
	expanded bool           // Show comments of the selected post
	form     Form
	input    textinput.Model
}

// NewCommunityView creates a new community view
func NewCommunityView(deps Deps) CommunityView {
	ti := textinput.New()
	ti.Placeholder = "Write a comment..."
	ti.CharLimit = 256

	return CommunityView{deps: deps, input: ti}
}

// Init initializes the community view
func (v CommunityView) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions
func (v CommunityView) SetSize(width, height int) CommunityView {
	v.width = width
	v.height = height
	v.input.Width = width - 8
	return v
}

// IsInputMode returns true while posting or commenting
func (v CommunityView) IsInputMode() bool {
	return v.mode != CommunityModeNormal
}

func (v CommunityView) visible() []model.CommunityPost {
	return v.deps.Feed.ByType(v.filter)
}

// Update handles messages for the community view
func (v CommunityView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PostImageMsg:
		if msg.Err != nil {
			return v, func() tea.Msg { return ErrorMsg{Err: msg.Err} }
		}
		cmd := v.publish(msg.Post)
		return v, cmd

	case tea.KeyMsg:
		switch v.mode {
		case CommunityModePost:
			return v.handlePostForm(msg)
		case CommunityModeComment:
			return v.handleCommentInput(msg)
		}
		return v.handleNormalMode(msg)
	}
	return v, nil
}

func (v CommunityView) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	posts := v.visible()
	switch msg.String() {
	case "j", "down":
		v.cursor = clampCursor(v.cursor+1, len(posts))
	case "k", "up":
		v.cursor = clampCursor(v.cursor-1, len(posts))
	case "tab":
		types := append([]string{""}, options(model.PostTypes)...)
		v.filter = model.PostType(cycle(types, string(v.filter)))
		v.cursor = 0
	case "l", "+":
		if v.cursor < len(posts) {
			v.deps.Feed.Like(posts[v.cursor].ID)
		}
	case "enter":
		v.expanded = !v.expanded
	case "c":
		if v.cursor < len(posts) {
			v.mode = CommunityModeComment
			v.input.SetValue("")
			v.input.Focus()
			return v, textinput.Blink
		}
	case "d":
		if v.cursor < len(posts) && posts[v.cursor].Author == community.LocalAuthor {
			v.deps.Feed.Delete(posts[v.cursor].ID)
			v.cursor = clampCursor(v.cursor, len(posts)-1)
		}
	case "n", "a":
		v.mode = CommunityModePost
		v.form = NewForm("Share with the community",
			ChoiceField("type", "Type", options(model.PostTypes)),
			TextField("content", "Content", "What's on your mind?"),
			TextField("tags", "Tags", "comma, separated"),
			TextField("image", "Image file", "optional path to an image"),
		)
		var cmd tea.Cmd
		v.form, cmd = v.form.Open()
		return v, cmd
	}
	return v, nil
}

func (v CommunityView) handlePostForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var res FormResult
	var cmd tea.Cmd
	v.form, res, cmd = v.form.Update(msg)
	switch res {
	case FormSubmitted:
		v.mode = CommunityModeNormal
		post := community.NewPost{
			Type:    model.PostType(v.form.Value("type")),
			Content: v.form.Value("content"),
			Tags:    v.form.Value("tags"),
		}
		if path := v.form.Value("image"); path != "" {
			return v, loadPostImage(path, post)
		}
		cmd = v.publish(post)
		return v, cmd
	case FormCancelled:
		v.mode = CommunityModeNormal
	}
	return v, cmd
}

// loadPostImage reads the image file into a data URL off the update loop
func loadPostImage(path string, post community.NewPost) tea.Cmd {
	return func() tea.Msg {
		img, err := media.DataURL(path)
		if err != nil {
			return PostImageMsg{Err: fmt.Errorf("failed to attach image: %w", err)}
		}
		post.ImageURL = img.DataURL
		return PostImageMsg{Post: post}
	}
}

func (v *CommunityView) publish(in community.NewPost) tea.Cmd {
	if _, err := v.deps.Feed.Post(in); err != nil {
		return nil
	}
	v.filter = ""
	v.cursor = 0
	return func() tea.Msg { return StatusMsg{Message: "Posted to the community"} }
}

func (v CommunityView) handleCommentInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v.mode = CommunityModeNormal
		v.input.Blur()
		posts := v.visible()
		if v.cursor < len(posts) {
			if _, err := v.deps.Feed.Comment(posts[v.cursor].ID, v.input.Value()); err == nil {
				v.expanded = true
			}
		}
		return v, nil
	case "esc":
		v.mode = CommunityModeNormal
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View renders the community view
func (v CommunityView) View() string {
	if v.mode == CommunityModePost {
		return v.form.View()
	}

	styles := theme.Current.Styles

	filter := "all"
	if v.filter != "" {
		filter = string(v.filter)
	}
	header := styles.Title.Render("Community") + "  " + styles.Label.Render("showing: "+filter)

	feedWidth := v.width - 32
	if feedWidth < 40 {
		feedWidth = 40
	}
	feed := lipgloss.NewStyle().Width(feedWidth).Render(v.renderFeed(feedWidth))
	side := v.renderSidebar()

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, feed, "  ", side),
	)
}

func (v CommunityView) renderFeed(width int) string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	posts := v.visible()
	if len(posts) == 0 {
		return styles.Label.Render("No posts yet. Press n to share something.")
	}

	heart := lipgloss.NewStyle().Foreground(t.Error)
	var b strings.Builder
	for i, p := range posts {
		selected := i == v.cursor
		author := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(p.Author)
		kind := lipgloss.NewStyle().Foreground(t.Secondary).Render(string(p.Type))
		head := fmt.Sprintf("%s %s %s", author, kind, styles.Date.Render(p.Date))
		b.WriteString(renderRow(head, selected, false))
		b.WriteString("\n")

		content := p.Content
		if !selected {
			content = truncate(content, width-6)
		}
		if content != "" {
			b.WriteString("    " + content + "\n")
		}
		if p.ImageURL != "" {
			b.WriteString(styles.Label.Render("    🖼 "+media.Describe(p.ImageURL)) + "\n")
		}
		meta := fmt.Sprintf("    %s %d  💬 %d  %s", heart.Render("♥"), p.Likes, len(p.Comments), renderTags(p.Tags))
		b.WriteString(meta + "\n")

		if selected && v.expanded {
			for _, c := range p.Comments {
				b.WriteString(styles.Label.Render(fmt.Sprintf("      %s: ", c.Author)) + c.Text + "\n")
			}
		}
		if selected && v.mode == CommunityModeComment {
			b.WriteString("      " + styles.InputFocused.Render(v.input.View()) + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v CommunityView) renderSidebar() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	stats := v.deps.Feed.Stats()
	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("Stats"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Posts     %d\nLikes     %d\nComments  %d\n\n", stats.Posts, stats.Likes, stats.Comments))

	b.WriteString(styles.PanelTitle.Render("Trending"))
	b.WriteString("\n")
	trending := v.deps.Feed.Trending()
	if len(trending) == 0 {
		b.WriteString(styles.Label.Render("No tags yet"))
	}
	for i, tc := range trending {
		tag := lipgloss.NewStyle().Foreground(t.Info).Render("#" + tc.Tag)
		b.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, tag, styles.Label.Render(fmt.Sprintf("(%d)", tc.Count))))
	}

	return styles.Panel.Width(28).Render(strings.TrimRight(b.String(), "\n"))
}
