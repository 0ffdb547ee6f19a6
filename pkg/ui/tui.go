package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	analyticsApp "github.com/profitlens/seller-analytics/business/analytics/app"
	catalog "github.com/profitlens/seller-analytics/business/catalog/domain"
	reconcileApp "github.com/profitlens/seller-analytics/business/reconcile/app"
)

// Runner executes the operations the TUI exposes. The cmd wiring
// provides an implementation backed by the business services.
type Runner interface {
	Analyze(ctx context.Context) (*analyticsApp.Analysis, error)
	Fetch(ctx context.Context) (path string, succeeded, failed int, err error)
	Reconcile(ctx context.Context) (*reconcileApp.Result, error)
}

// Phase represents the current UI phase.
type Phase string

const (
	PhaseWelcome Phase = "welcome" // Initial welcome screen
	PhaseMenu    Phase = "menu"    // Operation picker
	PhaseRunning Phase = "running" // An operation is in flight
	PhaseResults Phase = "results" // Showing the last result
)

// WelcomeDuration is how long the welcome screen shows before auto-advancing.
const WelcomeDuration = 2 * time.Second

// menu entry indexes
const (
	menuAnalyze = iota
	menuFetch
	menuReconcile
	menuQuit
)

var menuEntries = []string{
	"Analyze profitability",
	"Download marketplace reports",
	"Reconcile API vs file",
	"Quit",
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	runner Runner
	keys   KeyMap

	// Phase state
	phase        Phase
	welcomeStart time.Time
	runStart     time.Time
	runningLabel string

	// Menu state
	cursor int

	// State
	quitting bool
	width    int
	height   int
	errorMsg string

	// Last results
	analysis  *analysisDoneMsg
	fetch     *fetchDoneMsg
	reconcile *reconcileDoneMsg
}

// New creates a new TUI model.
func New(runner Runner) Model {
	return Model{
		runner:       runner,
		keys:         DefaultKeyMap(),
		phase:        PhaseWelcome,
		welcomeStart: time.Now(),
	}
}

// Init initializes the TUI model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd returns a command that sends a tick every 100ms for smooth animations.
func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) analyzeCmd() tea.Cmd {
	runner := m.runner
	return func() tea.Msg {
		start := time.Now()
		analysis, err := runner.Analyze(context.Background())
		if err != nil {
			return errMsg{err: err}
		}
		return analysisDoneMsg{analysis: analysis, elapsed: time.Since(start)}
	}
}

func (m Model) fetchCmd() tea.Cmd {
	runner := m.runner
	return func() tea.Msg {
		start := time.Now()
		path, succeeded, failed, err := runner.Fetch(context.Background())
		if err != nil {
			return errMsg{err: err}
		}
		return fetchDoneMsg{path: path, succeeded: succeeded, failed: failed, elapsed: time.Since(start)}
	}
}

func (m Model) reconcileCmd() tea.Cmd {
	runner := m.runner
	return func() tea.Msg {
		start := time.Now()
		result, err := runner.Reconcile(context.Background())
		if err != nil {
			return errMsg{err: err}
		}
		return reconcileDoneMsg{result: result, elapsed: time.Since(start)}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Always allow quit
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		// During welcome phase, any other key skips to the menu
		if m.phase == PhaseWelcome {
			m.phase = PhaseMenu
			return m, nil
		}
		switch m.phase {
		case PhaseMenu:
			switch {
			case key.Matches(msg, m.keys.Up):
				if m.cursor > 0 {
					m.cursor--
				}
			case key.Matches(msg, m.keys.Down):
				if m.cursor < len(menuEntries)-1 {
					m.cursor++
				}
			case key.Matches(msg, m.keys.Enter):
				return m.selectEntry()
			}
		case PhaseResults:
			if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Enter) {
				m.phase = PhaseMenu
				m.errorMsg = ""
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.phase == PhaseWelcome && time.Since(m.welcomeStart) >= WelcomeDuration {
			m.phase = PhaseMenu
		}
		return m, tickCmd()

	case analysisDoneMsg:
		m.analysis = &msg
		m.phase = PhaseResults

	case fetchDoneMsg:
		m.fetch = &msg
		m.phase = PhaseResults

	case reconcileDoneMsg:
		m.reconcile = &msg
		m.phase = PhaseResults

	case errMsg:
		m.errorMsg = msg.err.Error()
		m.phase = PhaseResults
	}

	return m, nil
}

func (m Model) selectEntry() (tea.Model, tea.Cmd) {
	switch m.cursor {
	case menuAnalyze:
		m.phase = PhaseRunning
		m.runStart = time.Now()
		m.runningLabel = "Analyzing profitability"
		m.analysis = nil
		m.errorMsg = ""
		return m, m.analyzeCmd()
	case menuFetch:
		m.phase = PhaseRunning
		m.runStart = time.Now()
		m.runningLabel = "Downloading reports"
		m.fetch = nil
		m.errorMsg = ""
		return m, m.fetchCmd()
	case menuReconcile:
		m.phase = PhaseRunning
		m.runStart = time.Now()
		m.runningLabel = "Reconciling API vs file"
		m.reconcile = nil
		m.errorMsg = ""
		return m, m.reconcileCmd()
	case menuQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return "\n  Goodbye!\n\n"
	}

	switch m.phase {
	case PhaseWelcome:
		return m.renderWelcomeScreen()
	case PhaseMenu:
		return m.renderMenu()
	case PhaseRunning:
		return m.renderRunning()
	case PhaseResults:
		return m.renderResults()
	}
	return ""
}

// renderWelcomeScreen renders the splash screen.
func (m Model) renderWelcomeScreen() string {
	// Animated dots based on time
	elapsed := time.Since(m.welcomeStart)
	dotCount := int(elapsed.Milliseconds()/300) % 4
	dots := strings.Repeat(".", dotCount)

	var sb strings.Builder

	sb.WriteString("\n\n\n\n")

	logo := `
   ██████╗ ██████╗  ██████╗ ███████╗██╗████████╗██╗     ███████╗███╗   ██╗███████╗
   ██╔══██╗██╔══██╗██╔═══██╗██╔════╝██║╚══██╔══╝██║     ██╔════╝████╗  ██║██╔════╝
   ██████╔╝██████╔╝██║   ██║█████╗  ██║   ██║   ██║     █████╗  ██╔██╗ ██║███████╗
   ██╔═══╝ ██╔══██╗██║   ██║██╔══╝  ██║   ██║   ██║     ██╔══╝  ██║╚██╗██║╚════██║
   ██║     ██║  ██║╚██████╔╝██║     ██║   ██║   ███████╗███████╗██║ ╚████║███████║
   ╚═╝     ╚═╝  ╚═╝ ╚═════╝ ╚═╝     ╚═╝   ╚═╝   ╚══════╝╚══════╝╚═╝  ╚═══╝╚══════╝
`
	logoStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	sb.WriteString(logoStyle.Render(logo))
	sb.WriteString("\n")

	subtitle := "          S E L L E R   A N A L Y T I C S"
	sb.WriteString(MutedValue.Render(subtitle))
	sb.WriteString("\n\n\n")

	loading := fmt.Sprintf("               Initializing%s", dots)
	sb.WriteString(PositiveValue.Render(loading))
	sb.WriteString("\n\n")

	hint := "         Press any key to skip, or wait..."
	sb.WriteString(MutedValue.Render(hint))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(TitleStyle.Render(" SELLER ANALYTICS "))
	sb.WriteString("\n\n")

	for i, entry := range menuEntries {
		if i == m.cursor {
			sb.WriteString(MenuSelectedStyle.Render("> " + entry))
		} else {
			sb.WriteString(MenuItemStyle.Render("  " + entry))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(HelpStyle.Render("↑/↓ move | enter select | q quit"))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) renderRunning() string {
	elapsed := time.Since(m.runStart)
	dotCount := int(elapsed.Milliseconds()/300) % 4
	dots := strings.Repeat(".", dotCount)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(TitleStyle.Render(" SELLER ANALYTICS "))
	sb.WriteString("\n\n")
	sb.WriteString(PositiveValue.Render(fmt.Sprintf("  %s%s", m.runningLabel, dots)))
	sb.WriteString("\n")
	sb.WriteString(MutedValue.Render(fmt.Sprintf("  elapsed %.1fs", elapsed.Seconds())))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) renderResults() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(TitleStyle.Render(" SELLER ANALYTICS "))
	sb.WriteString("\n\n")

	switch {
	case m.errorMsg != "":
		sb.WriteString(NegativeValue.Render("  Error: " + m.errorMsg))
		sb.WriteString("\n")
	case m.analysis != nil:
		sb.WriteString(m.renderAnalysis(m.analysis))
	case m.fetch != nil:
		sb.WriteString(m.renderFetch(m.fetch))
	case m.reconcile != nil:
		sb.WriteString(m.renderReconcile(m.reconcile))
	}

	sb.WriteString("\n")
	sb.WriteString(HelpStyle.Render("esc back | q quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) renderAnalysis(msg *analysisDoneMsg) string {
	a := msg.analysis
	var sb strings.Builder

	sb.WriteString(TableHeaderStyle.Render("  PROFITABILITY SUMMARY"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("  Products analyzed: %d\n", len(a.Metrics)))
	sb.WriteString(fmt.Sprintf("  Revenue:      %s ₽\n", formatMoney(a.Totals.Revenue)))
	sb.WriteString(fmt.Sprintf("  COGS:         %s ₽\n", formatMoney(a.Totals.Cogs)))
	sb.WriteString(fmt.Sprintf("  Gross profit: %s\n", renderSigned(a.Totals.GrossProfit)))
	sb.WriteString(fmt.Sprintf("  Net profit:   %s\n", renderSigned(a.Totals.NetProfit)))

	top := a.Top(3)
	if len(top) > 0 {
		sb.WriteString("\n")
		sb.WriteString(TableHeaderStyle.Render("  TOP PERFORMERS"))
		sb.WriteString("\n")
		for _, pm := range top {
			sb.WriteString(renderMetricLine(pm))
		}
	}
	bottom := a.Bottom(3)
	if len(bottom) > 0 {
		sb.WriteString("\n")
		sb.WriteString(TableHeaderStyle.Render("  WORST PERFORMERS"))
		sb.WriteString("\n")
		for _, pm := range bottom {
			sb.WriteString(renderMetricLine(pm))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(MutedValue.Render(fmt.Sprintf("  finished in %.1fs", msg.elapsed.Seconds())))
	sb.WriteString("\n")
	return sb.String()
}

func renderMetricLine(pm catalog.ProductMetrics) string {
	name := pm.Product.Name
	if name == "" {
		name = fmt.Sprintf("nm %d", pm.Product.ID)
	}
	return fmt.Sprintf("  %-30s %s | margin %s%% | roi %s%%\n",
		truncate(name, 30),
		renderSigned(pm.NetProfit),
		pm.ProfitMarginPct.Round(2).String(),
		pm.RoiPct.Round(2).String(),
	)
}

func (m Model) renderFetch(msg *fetchDoneMsg) string {
	var sb strings.Builder
	sb.WriteString(TableHeaderStyle.Render("  REPORT DOWNLOAD"))
	sb.WriteString("\n\n")
	sb.WriteString(PositiveValue.Render(fmt.Sprintf("  Loaded: %d", msg.succeeded)))
	sb.WriteString("\n")
	if msg.failed > 0 {
		sb.WriteString(WarningValue.Render(fmt.Sprintf("  Failed: %d", msg.failed)))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  Saved to: %s\n", msg.path))
	sb.WriteString("\n")
	sb.WriteString(MutedValue.Render(fmt.Sprintf("  finished in %.1fs", msg.elapsed.Seconds())))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) renderReconcile(msg *reconcileDoneMsg) string {
	r := msg.result
	var sb strings.Builder
	sb.WriteString(TableHeaderStyle.Render("  RECONCILIATION"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("  Period: %s .. %s\n", r.From.Format("2006-01-02"), r.To.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("  File:   %s\n\n", r.FilePath))

	for _, d := range r.Report.Totals {
		status := PositiveValue.Render("[ok]")
		if d.Divergent {
			status = WarningValue.Render("[DIVERGENT]")
		}
		sb.WriteString(fmt.Sprintf("  %-10s api=%s file=%s diff=%s (%s%%) %s\n",
			d.Name, d.A.String(), d.B.String(), d.Diff.String(), d.DiffPct.Round(2).String(), status))
	}

	p := r.Report.Partition
	sb.WriteString(fmt.Sprintf("\n  Products: %d common, %d API-only, %d file-only\n",
		p.CommonCount, p.OnlyACount, p.OnlyBCount))

	sb.WriteString("\n")
	sb.WriteString(MutedValue.Render(fmt.Sprintf("  finished in %.1fs", msg.elapsed.Seconds())))
	sb.WriteString("\n")
	return sb.String()
}

func renderSigned(d decimal.Decimal) string {
	s := formatMoney(d) + " ₽"
	if d.IsNegative() {
		return NegativeValue.Render(s)
	}
	return PositiveValue.Render(s)
}

func formatMoney(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

// Run starts the TUI and blocks until it exits.
func Run(runner Runner) error {
	p := tea.NewProgram(New(runner), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
