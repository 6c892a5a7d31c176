package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arikatz123/SurfScout/internal/surf"
	"github.com/arikatz123/SurfScout/internal/willyweather"
)

// AppState represents the current state of the application
type AppState int

const (
	StateSearch     AppState = iota // Enter a beach name
	StateSearching                  // Beach search in flight
	StateNoMatch                    // Search yielded no Australian beaches
	StateLocations                  // Pick a beach from the results
	StateEvaluating                 // Conditions fetch / scoring in flight
	StateAssessment                 // Show the conditions and the verdict
)

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	// Search
	searchInput  textinput.Model
	initialQuery string

	// Results
	locationList list.Model

	// Current query chain
	session session

	// Loading
	spinner    spinner.Model
	statusLine string

	// Providers
	searcher  willyweather.Searcher
	forecasts willyweather.ForecastFetcher
	assessor  surf.Assessor
}

// NewModel creates a new application model
func NewModel(searcher willyweather.Searcher, forecasts willyweather.ForecastFetcher, assessor surf.Assessor) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter an Australian beach name..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		state:       StateSearch,
		searchInput: ti,
		spinner:     s,
		searcher:    searcher,
		forecasts:   forecasts,
		assessor:    assessor,
	}
}

// WithInitialQuery pre-fills the search box and runs the search on startup
func (m Model) WithInitialQuery(query string) Model {
	m.initialQuery = strings.TrimSpace(query)
	m.searchInput.SetValue(m.initialQuery)
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	if m.initialQuery != "" {
		return tea.Batch(textinput.Blink, func() tea.Msg { return autoSearchMsg{} })
	}
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateLocations {
			m.locationList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case autoSearchMsg:
		return m.submitSearch()

	case searchResultsMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("Error searching for beaches: %w", msg.err)
		}
		m.session.setLocations(msg.locations)
		if len(msg.locations) == 0 {
			m.state = StateNoMatch
			m.searchInput.Focus()
			return m, textinput.Blink
		}
		m.locationList = createLocationList(msg.locations, m.width-4, m.height-10)
		m.state = StateLocations
		return m, nil

	case conditionsFetchedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("Error fetching surf conditions: %w", msg.err)
			m.state = StateLocations
			return m, nil
		}
		if m.session.selected == nil {
			return m, nil
		}
		m.session.setConditions(msg.conditions)
		m.statusLine = "Analyzing surf quality..."
		return m, tea.Batch(
			m.spinner.Tick,
			assessSurf(m.assessor, *msg.conditions, m.session.selected.Label()),
		)

	case assessmentMsg:
		m.err = msg.err
		m.session.setAssessment(msg.assessment)
		m.state = StateAssessment
		return m, nil
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.state {
		case StateSearch, StateNoMatch:
			return m.handleSearchInput(keyMsg)

		case StateLocations:
			return m.handleLocationList(msg)

		case StateAssessment:
			return m.handleAssessment(keyMsg)
		}
	}

	// Update the component that owns the current state
	switch m.state {
	case StateSearch, StateNoMatch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case StateSearching, StateEvaluating:
		m.spinner, cmd = m.spinner.Update(msg)
	case StateLocations:
		m.locationList, cmd = m.locationList.Update(msg)
	}

	return m, cmd
}

// handleSearchInput handles keyboard input while the search box is focused
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Clear stale banners when typing
	if msg.Type != tea.KeyEnter {
		m.err = nil
		if m.state == StateNoMatch {
			m.state = StateSearch
		}
	}

	if msg.Type == tea.KeyEnter {
		return m.submitSearch()
	}

	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// submitSearch starts a beach search for the current input value
func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		return m, nil
	}

	m.err = nil
	m.session.startSearch(query)
	m.state = StateSearching
	m.statusLine = "Searching for beach..."
	return m, tea.Batch(m.spinner.Tick, searchBeaches(m.searcher, query))
}

// handleLocationList handles keyboard input in the beach list
func (m Model) handleLocationList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEnter {
			if item, ok := m.locationList.SelectedItem().(locationItem); ok {
				m.err = nil
				m.session.selectLocation(item.location)
				m.state = StateEvaluating
				m.statusLine = "Fetching surf conditions..."
				return m, tea.Batch(
					m.spinner.Tick,
					fetchConditions(m.forecasts, item.location.ID),
				)
			}
		}
		if keyMsg.String() == "s" || keyMsg.Type == tea.KeyEsc {
			return m.returnToSearch(false)
		}
		if keyMsg.String() == "q" {
			return m, tea.Quit
		}
	}

	m.locationList, cmd = m.locationList.Update(msg)
	return m, cmd
}

// handleAssessment handles keyboard input on the verdict screen
func (m Model) handleAssessment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "s":
		return m.returnToSearch(true)
	case msg.String() == "b" || msg.Type == tea.KeyEsc:
		m.err = nil
		m.state = StateLocations
		return m, nil
	case msg.String() == "q":
		return m, tea.Quit
	}
	return m, nil
}

// returnToSearch goes back to the search box, optionally clearing it
func (m Model) returnToSearch(clear bool) (tea.Model, tea.Cmd) {
	m.state = StateSearch
	m.err = nil
	if clear {
		m.searchInput.SetValue("")
	}
	m.searchInput.Focus()
	return m, textinput.Blink
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateSearch, StateNoMatch:
		return m.viewSearch()
	case StateSearching, StateEvaluating:
		return m.viewLoading()
	case StateLocations:
		return m.viewLocations()
	case StateAssessment:
		return m.viewAssessment()
	}

	return ""
}

// viewSearch renders the search view, including the no-match warning
func (m Model) viewSearch() string {
	title := titleStyle.Render("🏄 SurfScout")
	subtitle := mutedStyle.Render("Find out if it's worth going for a surf at your favorite Australian beach.")

	searchBox := searchBoxStyle.Render(m.searchInput.View())

	help := helpStyle.Render("Press Enter to search • Ctrl+C to quit")
	examples := mutedStyle.Render("Examples: Bondi Beach | Torquay | Snapper Rocks")

	var sections []string
	sections = append(sections, title)
	sections = append(sections, subtitle)
	sections = append(sections, "")
	sections = append(sections, searchBox)

	if m.err != nil {
		sections = append(sections, "")
		sections = append(sections, errorStyle.Padding(0, 2).Render("✗ "+m.err.Error()))
	}

	if m.state == StateNoMatch {
		noMatch := fmt.Sprintf("No Australian beaches found with the name '%s'. Please try another name.", m.session.query)
		sections = append(sections, "")
		sections = append(sections, warningStyle.Padding(0, 2).Width(68).Render(noMatch))
	}

	sections = append(sections, "")
	sections = append(sections, examples)
	sections = append(sections, "")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewLoading renders the spinner for both in-flight states
func (m Model) viewLoading() string {
	title := titleStyle.Render("🏄 SurfScout")

	var subject string
	if m.session.selected != nil {
		subject = valueStyle.Bold(true).Render(m.session.selected.Label())
	} else {
		subject = valueStyle.Bold(true).Render(fmt.Sprintf("'%s'", m.session.query))
	}

	status := mutedStyle.Render(m.statusLine)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		title,
		"",
		subject,
		"",
		fmt.Sprintf("%s %s", m.spinner.View(), status),
	)
}

// viewLocations renders the beach selection list
func (m Model) viewLocations() string {
	title := titleStyle.Render("🏄 SurfScout")
	subtitle := mutedStyle.Render(fmt.Sprintf("Found %d beaches matching '%s'", len(m.session.locations), m.session.query))

	help := helpStyle.Render("↑/↓: Navigate • Enter: Check surf quality • S/Esc: New search • Q: Quit")

	var sections []string
	sections = append(sections, title)
	sections = append(sections, subtitle)

	if m.err != nil {
		sections = append(sections, "")
		sections = append(sections, errorStyle.Padding(0, 2).Render("✗ "+m.err.Error()))
	}

	sections = append(sections, "")
	sections = append(sections, m.locationList.View())
	sections = append(sections, "")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewAssessment renders the verdict screen
func (m Model) viewAssessment() string {
	if m.session.selected == nil {
		return "No beach selected"
	}

	var sections []string

	header := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		MarginBottom(1).
		Render(fmt.Sprintf("🏄 %s", m.session.selected.Label()))
	sections = append(sections, header)

	if m.err != nil {
		sections = append(sections, errorStyle.Width(70).Render("✗ "+m.err.Error()))
		if errors.Is(m.err, surf.ErrQuotaExceeded) {
			remediation := "Your OpenAI API key has reached its usage limit. Please visit https://platform.openai.com/ to check your usage and billing settings."
			sections = append(sections, warningStyle.Width(70).Render(remediation))
		}
		sections = append(sections, "")
	}

	assessment := m.session.assessment
	switch {
	case assessment != nil && assessment.HasScore():
		sections = append(sections,
			sectionHeaderStyle.Render("Surf Quality Assessment"),
			renderScoreBlock(*assessment),
		)
		if m.session.conditions != nil {
			sections = append(sections,
				sectionHeaderStyle.Render("Current Conditions"),
				renderConditionsPanel(*m.session.conditions),
			)
		}
	case assessment != nil:
		sections = append(sections, warningStyle.Width(70).Render(assessment.Explanation))
	}

	help := helpStyle.Render("S: New search • B/Esc: Back to results • Q: Quit")
	sections = append(sections, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
