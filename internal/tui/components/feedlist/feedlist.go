package feedlist

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/tasklit/internal/feed"
	"github.com/julianstephens/tasklit/internal/models"
)

type LikePostMsg struct {
	ID string
}

type Item struct {
	Post models.Post
	Now  time.Time
}

func (i Item) Title() string {
	heart := "♡"
	if i.Post.Liked {
		heart = "♥"
	}
	title := i.Post.TaskTitle
	if i.Post.Kind == models.PostKindCelebration {
		title = "🏆 " + title
	}
	return fmt.Sprintf("%s · %s  %s %d", i.Post.Author.Name, title, heart, i.Post.Likes)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s +%d · %s", i.Post.TaskCategory, i.Post.Points(), feed.TimeAgo(i.Post.CreatedAt, i.Now))
	if i.Post.Caption != "" {
		desc += " · " + i.Post.Caption
	}
	return desc
}

func (i Item) FilterValue() string { return i.Post.Author.Name + " " + i.Post.TaskTitle }

type KeyMap struct {
	Like key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Like: key.NewBinding(
			key.WithKeys("l", " "),
			key.WithHelp("l", "like"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(posts []models.Post, now time.Time, width, height int) Model {
	l := list.New(items(posts, now), list.NewDefaultDelegate(), width, height)
	l.Title = "Friends Feed"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Like}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Like}
	}

	return Model{list: l, keys: keys}
}

func items(posts []models.Post, now time.Time) []list.Item {
	out := make([]list.Item, len(posts))
	for i, p := range posts {
		out[i] = Item{Post: p, Now: now}
	}
	return out
}

func (m *Model) SetPosts(posts []models.Post, now time.Time) {
	m.list.SetItems(items(posts, now))
}

func (m Model) Keys() KeyMap {
	return m.keys
}

// Filtering reports whether the list is capturing keys for its filter input.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		if key.Matches(msg, m.keys.Like) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return LikePostMsg{ID: i.Post.ID} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No posts yet.\n  Complete a task and press 'p' to share it."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
