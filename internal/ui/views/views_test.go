package views

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/studydeck/internal/gate"
	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2024, time.January, 20, 10, 30, 0, 0, time.Local)

func testDeps() Deps {
	return NewDeps(nil, settings.Defaults(), func() time.Time { return fixedNow })
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends each key in turn and returns the model and the last command
func press[M tea.Model](t *testing.T, m M, keys ...string) (M, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyPress(k))
		m = next.(M)
	}
	return m, cmd
}

// typeText sends s as a single runes key press
func typeText[M tea.Model](t *testing.T, m M, s string) M {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(M)
}

func TestFormTextAndChoice(t *testing.T) {
	f := NewForm("New",
		TextField("task", "Task", ""),
		ChoiceField("priority", "Priority", []string{"high", "medium", "low"}),
	)
	f, _ = f.Open()

	f, res, _ := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("  Read notes ")})
	assert.Equal(t, FormEditing, res)
	f, _, _ = f.Update(keyPress("tab"))
	f, _, _ = f.Update(keyPress("l"))
	f, _, _ = f.Update(keyPress("l"))
	f, res, _ = f.Update(keyPress("enter"))

	assert.Equal(t, FormSubmitted, res)
	assert.Equal(t, "Read notes", f.Value("task"))
	assert.Equal(t, "low", f.Value("priority"))

	f.SetValue("priority", "high")
	assert.Equal(t, "high", f.Value("priority"))
	assert.Equal(t, "", f.Value("missing"))

	_, res, _ = f.Update(keyPress("esc"))
	assert.Equal(t, FormCancelled, res)
}

func TestFormChoiceWrapsBackwards(t *testing.T) {
	f := NewForm("New", ChoiceField("type", "Type", []string{"a", "b", "c"}))
	f, _, _ = f.Update(keyPress("h"))
	assert.Equal(t, "c", f.Value("type"))
}

type memStorage map[string]string

func (m memStorage) GetItem(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memStorage) SetItem(key, value string) error {
	m[key] = value
	return nil
}

func (m memStorage) RemoveItem(key string) error {
	delete(m, key)
	return nil
}

func TestGateView(t *testing.T) {
	g, err := gate.New(memStorage{}, "2024", gate.WithCost(bcrypt.MinCost))
	require.NoError(t, err)
	v := NewGateView(g)
	assert.True(t, v.IsInputMode())

	v = typeText(t, v, "1111")
	v, cmd := press(t, v, "enter")
	assert.Nil(t, cmd)
	assert.Equal(t, "Invalid PIN. Access denied.", v.Error())
	assert.False(t, g.Unlocked())

	v = typeText(t, v, "2024")
	v, cmd = press(t, v, "enter")
	require.NotNil(t, cmd)
	assert.IsType(t, UnlockedMsg{}, cmd())
	assert.Empty(t, v.Error())
	assert.True(t, g.Unlocked())
}

func TestDashboardTodos(t *testing.T) {
	deps := testDeps()
	v := NewDashboardView(deps)
	before := len(deps.Daily.Todos())
	first := deps.Daily.Todos()[0]

	v, _ = press(t, v, " ")
	assert.Equal(t, !first.Completed, deps.Daily.Todos()[0].Completed)

	v, _ = press(t, v, "a")
	assert.True(t, v.IsInputMode())
	v = typeText(t, v, "Revise optics")
	v, cmd := press(t, v, "enter")
	assert.False(t, v.IsInputMode())
	require.NotNil(t, cmd)
	assert.Equal(t, StatusMsg{Message: "Task added"}, cmd())

	todos := deps.Daily.Todos()
	require.Len(t, todos, before+1)
	added := todos[len(todos)-1]
	assert.Equal(t, "Revise optics", added.Task)
	assert.Equal(t, model.PriorityMedium, added.Priority)

	// A blank task is ignored
	v, _ = press(t, v, "a")
	_, cmd = press(t, v, "enter")
	assert.Nil(t, cmd)
	assert.Len(t, deps.Daily.Todos(), before+1)
}

func TestDashboardDeleteRemovesOne(t *testing.T) {
	deps := testDeps()
	v := NewDashboardView(deps)
	todos := deps.Daily.Todos()

	press(t, v, "j", "d")

	after := deps.Daily.Todos()
	require.Len(t, after, len(todos)-1)
	for _, td := range after {
		assert.NotEqual(t, todos[1].ID, td.ID)
	}
}

func TestResourcesSearch(t *testing.T) {
	deps := testDeps()
	v := NewResourcesView(deps)
	total := len(v.visible())

	v, _ = press(t, v, "/")
	assert.True(t, v.IsInputMode())
	v = typeText(t, v, "THERMO")
	v, _ = press(t, v, "enter")
	assert.False(t, v.IsInputMode())

	found := v.visible()
	require.NotEmpty(t, found)
	assert.Less(t, len(found), total)
	for _, r := range found {
		text := strings.ToLower(r.Title + " " + r.Description + " " + strings.Join(r.Tags, " "))
		assert.Contains(t, text, "thermo")
	}

	v, _ = press(t, v, "/", "esc")
	assert.Len(t, v.visible(), total)
}

func TestResourcesFavoritesAndDelete(t *testing.T) {
	deps := testDeps()
	v := NewResourcesView(deps)
	first := v.visible()[0]

	v, _ = press(t, v, "*")
	assert.Equal(t, !first.Favorite, v.visible()[0].Favorite)

	total := len(deps.Resources.All())
	v, _ = press(t, v, "d", "n")
	assert.Len(t, deps.Resources.All(), total)

	v, _ = press(t, v, "d", "y")
	assert.False(t, v.IsInputMode())
	assert.Len(t, deps.Resources.All(), total-1)
}

func TestResourcesAddRequiresTitle(t *testing.T) {
	deps := testDeps()
	v := NewResourcesView(deps)
	total := len(deps.Resources.All())

	v, _ = press(t, v, "a", "enter")
	assert.Len(t, deps.Resources.All(), total)

	v, _ = press(t, v, "a")
	v = typeText(t, v, "Optics Formula Sheet")
	_, cmd := press(t, v, "enter")
	require.NotNil(t, cmd)
	all := deps.Resources.All()
	require.Len(t, all, total+1)
	assert.Equal(t, "Optics Formula Sheet", all[0].Title)
}

func TestFocusSubjectRejectedWhileRunning(t *testing.T) {
	deps := testDeps()
	require.NoError(t, deps.Timer.SetSubject("Physics"))
	v := NewFocusView(deps)

	v, _ = press(t, v, "s")
	require.True(t, v.IsInputMode())
	// The countdown starts while the editor is open, e.g. by auto start
	require.True(t, deps.Timer.Start())

	v = typeText(t, v, " II")
	v, cmd := press(t, v, "enter")
	assert.False(t, v.IsInputMode())
	require.NotNil(t, cmd)
	assert.Equal(t, StatusMsg{Message: "Pause the timer to change the subject"}, cmd())
	assert.Equal(t, "Physics", deps.Timer.Subject())
}

func TestFocusViewTimer(t *testing.T) {
	deps := testDeps()
	v := NewFocusView(deps)

	// Starting without a subject does nothing
	v, _ = press(t, v, " ")
	assert.False(t, deps.Timer.Active())

	v, _ = press(t, v, "s")
	assert.True(t, v.IsInputMode())
	v = typeText(t, v, "Physics")
	v, _ = press(t, v, "enter")
	assert.Equal(t, "Physics", deps.Timer.Subject())

	v, _ = press(t, v, " ")
	assert.True(t, v.IsTimerRunning())

	v, cmd := press(t, v, "+")
	require.NotNil(t, cmd)
	assert.Equal(t, StatusMsg{Message: "Pause the timer to change durations"}, cmd())

	// Subject edits are blocked while counting down
	v, _ = press(t, v, "s")
	assert.False(t, v.IsInputMode())

	v, _ = press(t, v, " ", "+", "]")
	assert.False(t, deps.Timer.Active())
	assert.Equal(t, 30, deps.Timer.FocusMinutes())
	assert.Equal(t, 6, deps.Timer.BreakMinutes())

	v, _ = press(t, v, "tab", " ")
	assert.Equal(t, FocusTabStopwatch, v.Tab())
	assert.True(t, deps.Stopwatch.Active())
}

func TestCalendarNavigation(t *testing.T) {
	deps := testDeps()
	v := NewCalendarView(deps)
	assert.Equal(t, "2024-01-20", v.SelectedDate())

	v, _ = press(t, v, "l", "j")
	assert.Equal(t, "2024-01-28", v.SelectedDate())

	v, _ = press(t, v, "L")
	assert.Equal(t, "2024-02-28", v.SelectedDate())

	v, _ = press(t, v, "t")
	assert.Equal(t, "2024-01-20", v.SelectedDate())
}

func TestCalendarAddUsesSelectedDate(t *testing.T) {
	deps := testDeps()
	v := NewCalendarView(deps)

	v, _ = press(t, v, "l", "a")
	v = typeText(t, v, "Chemistry revision")
	press(t, v, "enter")

	events := deps.Calendar.On("2024-01-21")
	require.NotEmpty(t, events)
	var titles []string
	for _, e := range events {
		titles = append(titles, e.Title)
	}
	assert.Contains(t, titles, "Chemistry revision")
}

func TestCommunityPostAndLike(t *testing.T) {
	deps := testDeps()
	v := NewCommunityView(deps)
	total := len(deps.Feed.Posts())

	v, _ = press(t, v, "n", "tab")
	v = typeText(t, v, "Finished organic chemistry!")
	v, _ = press(t, v, "tab")
	v = typeText(t, v, "chemistry, milestone")
	v, cmd := press(t, v, "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, StatusMsg{Message: "Posted to the community"}, cmd())

	posts := deps.Feed.Posts()
	require.Len(t, posts, total+1)
	assert.Equal(t, "You", posts[0].Author)
	assert.Equal(t, []string{"chemistry", "milestone"}, posts[0].Tags)

	v, _ = press(t, v, "l")
	assert.Equal(t, 1, deps.Feed.Posts()[0].Likes)

	v, _ = press(t, v, "c")
	v = typeText(t, v, "Nice work")
	press(t, v, "enter")
	require.Len(t, deps.Feed.Posts()[0].Comments, 1)
	assert.Equal(t, "Nice work", deps.Feed.Posts()[0].Comments[0].Text)
}

func TestDailyTargetsClamp(t *testing.T) {
	deps := testDeps()
	v := NewDailyView(deps)

	v, _ = press(t, v, "tab", "tab")
	require.Equal(t, DailySectionTargets, v.Section())

	// Title and description are both required
	v, _ = press(t, v, "a")
	v = typeText(t, v, "Finish mechanics")
	v, _ = press(t, v, "enter")
	assert.Empty(t, deps.Weekly.Targets())

	v, _ = press(t, v, "a")
	v = typeText(t, v, "Finish mechanics")
	v, _ = press(t, v, "tab")
	v = typeText(t, v, "All HC Verma problems")
	v, _ = press(t, v, "enter")
	require.Len(t, deps.Weekly.Targets(), 1)
	target := deps.Weekly.Targets()[0]

	keys := make([]string, 12)
	for i := range keys {
		keys[i] = "+"
	}
	v, _ = press(t, v, keys...)
	assert.Equal(t, 100, deps.Weekly.Targets()[0].Progress)

	for i := range keys {
		keys[i] = "-"
	}
	press(t, v, keys...)
	assert.Equal(t, 0, deps.Weekly.Targets()[0].Progress)
	assert.Equal(t, target.ID, deps.Weekly.Targets()[0].ID)
}

func TestDailyQuoteAndImage(t *testing.T) {
	deps := testDeps()
	v := NewDailyView(deps)

	v, _ = press(t, v, "e")
	assert.True(t, v.IsInputMode())
	v.input.SetValue("")
	v = typeText(t, v, "Small steps every day")
	v, _ = press(t, v, "enter")
	assert.Equal(t, "Small steps every day", deps.Daily.Quote())

	path := filepath.Join(t.TempDir(), "day.png")
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	v, _ = press(t, v, "i")
	v = typeText(t, v, path)
	v, cmd := press(t, v, "enter")
	require.NotNil(t, cmd)

	next, cmd := v.Update(cmd())
	v = next.(DailyView)
	require.NotNil(t, cmd)
	assert.Equal(t, StatusMsg{Message: "Daily image set (3x2 image/png)"}, cmd())
	assert.True(t, strings.HasPrefix(deps.Daily.Image(), "data:image/png;base64,"))

	press(t, v, "X")
	assert.Empty(t, deps.Daily.Image())
}

func TestProfileEdit(t *testing.T) {
	deps := testDeps()
	v := NewProfileView(deps)

	v, _ = press(t, v, "e")
	v.form.SetValue("name", "")
	v = typeText(t, v, "Asha Rao")
	_, cmd := press(t, v, "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, "Asha Rao", deps.Profile.Record().Name)
	assert.Equal(t, "AR", deps.Profile.Initials())
}
