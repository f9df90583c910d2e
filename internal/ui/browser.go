package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dialog-tools/zenity/internal/format"
	"github.com/dialog-tools/zenity/internal/history"
)

// recordItem adapts a history record to the bubbles list item interface.
type recordItem struct {
	record history.Record
}

func (i recordItem) Title() string {
	return fmt.Sprintf("%s  %s", format.Full(i.record.CreatedAt.Local()), i.record.Kind)
}

func (i recordItem) Description() string {
	desc := i.record.Response
	if i.record.Title != "" {
		desc += "  " + i.record.Title
	}
	return desc
}

func (i recordItem) FilterValue() string {
	return i.record.Kind + " " + i.record.Title + " " + i.record.Response
}

type browserKeyMap struct {
	Inspect key.Binding
	Back    key.Binding
	Quit    key.Binding
}

var browserKeys = browserKeyMap{
	Inspect: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "inspect"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// browserModel is the interactive history browser: a filterable list of
// invocations with a detail view.
type browserModel struct {
	list      list.Model
	detail    viewport.Model
	inspected bool
	width     int
	height    int
}

// NewBrowser builds the history browser over the given records.
func NewBrowser(records []history.Record) tea.Model {
	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = recordItem{record: r}
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = "invocation history"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{browserKeys.Inspect}
	}

	return browserModel{list: l, detail: viewport.New(0, 0)}
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		m.detail.Width = msg.Width
		m.detail.Height = msg.Height - 2
		return m, nil

	case tea.KeyMsg:
		// Keys reach the list while its filter input is active.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, browserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, browserKeys.Inspect):
			if m.inspected {
				break
			}
			if item, ok := m.list.SelectedItem().(recordItem); ok {
				m.detail.SetContent(renderRecordDetail(item.record))
				m.detail.GotoTop()
				m.inspected = true
			}
			return m, nil

		case key.Matches(msg, browserKeys.Back):
			if m.inspected {
				m.inspected = false
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.inspected {
		m.detail, cmd = m.detail.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m browserModel) View() string {
	if m.inspected {
		help := lipgloss.NewStyle().Faint(true).Render("esc back • q quit")
		return m.detail.View() + "\n" + help
	}
	return m.list.View()
}

func renderRecordDetail(r history.Record) string {
	var b strings.Builder

	label := lipgloss.NewStyle().Bold(true)

	fmt.Fprintf(&b, "%s %s\n", label.Render("id:"), r.ID)
	fmt.Fprintf(&b, "%s %s\n", label.Render("when:"), format.Full(r.CreatedAt.Local()))
	fmt.Fprintf(&b, "%s %s\n", label.Render("kind:"), r.Kind)
	if r.Title != "" {
		fmt.Fprintf(&b, "%s %s\n", label.Render("title:"), r.Title)
	}
	fmt.Fprintf(&b, "%s %s\n", label.Render("command:"), r.Command)
	fmt.Fprintf(&b, "%s %s\n", label.Render("response:"), r.Response)
	fmt.Fprintf(&b, "%s %d\n", label.Render("exit code:"), r.ExitCode)

	if r.Content != nil {
		fmt.Fprintf(&b, "\n%s\n%s\n", label.Render("content:"), *r.Content)
	}

	return b.String()
}

// RunBrowser starts the interactive browser over records and blocks until
// the user quits.
func RunBrowser(records []history.Record) error {
	p := tea.NewProgram(NewBrowser(records), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
