package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eatmyrust/advent/internal/domain"
	"github.com/eatmyrust/advent/internal/puzzle"
)

type screen int

const (
	screenHome screen = iota
	screenResult
)

type puzzleItem struct {
	entry puzzle.Entry
}

func (p puzzleItem) Title() string {
	return fmt.Sprintf("%d · day %02d", p.entry.Key.Year, p.entry.Key.Day)
}
func (p puzzleItem) Description() string { return p.entry.Title }
func (p puzzleItem) FilterValue() string {
	return fmt.Sprintf("%d %02d %s", p.entry.Key.Year, p.entry.Key.Day, p.entry.Title)
}

type model struct {
	theme Theme
	deps  Deps

	scr     screen
	menu    list.Model
	width   int
	running bool
	toast   string

	active domain.PuzzleKey
	result domain.SolveResult
	runID  string
	err    error

	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	var items []list.Item
	if deps.Catalog != nil {
		for _, e := range deps.Catalog.Entries() {
			items = append(items, puzzleItem{entry: e})
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Puzzles"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:          t,
		deps:           deps,
		scr:            screenHome,
		menu:           l,
		workspaceFound: deps.WorkspaceFound,
		workspaceRoot:  deps.Root,
	}
}

func (m model) Init() tea.Cmd { return nil }

// reset drops any in-flight solve and returns to the puzzle list.
func (m model) reset(toast string) model {
	m.scr = screenHome
	m.running = false
	m.active = domain.PuzzleKey{}
	m.toast = toast
	return m
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case solveDoneMsg:
		if msg.key != m.active {
			return m, nil
		}
		m.running = false
		m.result, m.runID, m.err = msg.res, msg.id, msg.err
		m.toast = userMessage(msg.err)
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace created in " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		if msg.found {
			m.workspaceRoot = msg.root
		}
		return m, nil

	case tea.KeyMsg:
		// typing into the filter must not trigger shortcuts
		if m.scr == screenHome && m.menu.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			return m.reset(""), nil

		case "enter", "r":
			if m.running {
				return m, nil
			}
			key := m.active
			if m.scr == screenHome {
				it, ok := m.menu.SelectedItem().(puzzleItem)
				if !ok {
					return m, nil
				}
				key = it.entry.Key
			}
			m.scr = screenResult
			m.active = key
			m.running = true
			m.err = nil
			m.toast = ""
			m.result = domain.SolveResult{}
			m.runID = ""
			return m, cmdSolve(m.deps, key, m.workspaceFound)

		case "i":
			if m.scr == screenHome && !m.workspaceFound {
				root := m.workspaceRoot
				if root == "" {
					root, _ = os.Getwd()
				}
				return m, cmdInitWorkspaceHere(m.deps, root)
			}

		case "esc", "b":
			if m.scr != screenHome {
				return m.reset(""), nil
			}
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("advent") + "\n" +
		m.theme.Subtitle.Render("Advent of Code solutions") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Card.Render(
			"⚠ No workspace found.\n\nPress i to create one here.",
		)
	}

	toast := ""
	if m.toast != "" {
		toast = "\n" + m.theme.Error.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter solve • / search • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help + toast)

	case screenResult:
		title := m.active.String()
		if m.result.Title != "" {
			title += " — " + m.result.Title
		}

		var body string
		switch {
		case m.running:
			body = "Solving…"
		case m.err != nil:
			body = clampString(m.err.Error(), max(m.width-8, 40))
		default:
			body = renderSolveResult(m.theme, m.result, m.runID, m.width)
		}

		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n%s",
				m.theme.Title.Render(title),
				body,
				m.theme.Help.Render("r run again • esc/b back • q home"),
			),
		)
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + card + toast)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
