// Package tui provides the interactive terminal UI for taskflow.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/taskflow/internal/controlplane"
	"github.com/fentz26/taskflow/internal/filter"
	"github.com/fentz26/taskflow/internal/models"
	"github.com/fentz26/taskflow/internal/stats"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("#7C3AED")
	secondaryColor = lipgloss.Color("#6366F1")
	successColor   = lipgloss.Color("#10B981")
	warningColor   = lipgloss.Color("#F59E0B")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	fgColor        = lipgloss.Color("#F9FAFB")
	cyanColor      = lipgloss.Color("#06B6D4")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(fgColor).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	taskItemStyle = lipgloss.NewStyle().
			Padding(0, 2)

	selectedStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(fgColor).
			Bold(true).
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	onlineStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	offlineStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)

// App is the main TUI application model.
type App struct {
	client       *Client
	tasks        []models.Task
	selectedIdx  int
	input        textinput.Model
	viewport     viewport.Model
	width        int
	height       int
	mode         string // modeList, modeDetail, modeStats
	currentTask  *models.Task
	summary      *stats.Summary
	strategies   []controlplane.StrategyInfo
	message      string
	filter       filter.Filter
	statusIdx    int
	loading      bool
	daemonOnline bool
	suggestions  *Suggestions
	now          func() time.Time
}

var statusFilters = []models.Status{"", models.StatusPending, models.StatusInProgress, models.StatusCompleted}
var statusFilterNames = []string{"ALL", "PENDING", "IN PROGRESS", "DONE"}

// New creates a new TUI application.
func New(apiAddr string) *App {
	ti := textinput.New()
	ti.Placeholder = "Type: add <title> | done | delete | sort <key> | search <text> | / for commands | ! for strategies"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 80

	vp := viewport.New(80, 20)

	return &App{
		client:      NewClient(apiAddr),
		input:       ti,
		viewport:    vp,
		mode:        modeList,
		suggestions: NewSuggestions(),
		now:         time.Now,
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		a.fetchTasks(),
		a.fetchStrategies(),
		a.checkDaemon(),
	)
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit

		case "esc":
			if a.mode != modeList {
				a.mode = modeList
				a.currentTask = nil
				return a, a.fetchTasks()
			}
			a.input.SetValue("")

		case "up":
			if a.suggestions.IsVisible() {
				a.suggestions.Prev()
			} else if a.mode == modeList && a.selectedIdx > 0 {
				a.selectedIdx--
			} else if a.mode != modeList {
				a.viewport.LineUp(1)
			}
			return a, nil

		case "down":
			if a.suggestions.IsVisible() {
				a.suggestions.Next()
			} else if a.mode == modeList && a.selectedIdx < len(a.tasks)-1 {
				a.selectedIdx++
			} else if a.mode != modeList {
				a.viewport.LineDown(1)
			}
			return a, nil

		case "tab":
			// If suggestions visible, accept selection
			if a.acceptSuggestion() {
				return a, nil
			}
			// Cycle the status filter
			a.mode = modeList
			a.statusIdx = (a.statusIdx + 1) % len(statusFilters)
			a.filter.Status = statusFilters[a.statusIdx]
			return a, a.fetchTasks()

		case "enter":
			if a.acceptSuggestion() {
				return a, nil
			}
			cmd := strings.TrimSpace(a.input.Value())
			if cmd != "" {
				a.input.SetValue("")
				a.suggestions.Update("")
				return a, a.executeCommand(cmd)
			} else if a.mode == modeList && len(a.tasks) > 0 {
				task := a.tasks[a.selectedIdx]
				a.mode = modeDetail
				return a, a.fetchTaskDetail(task.ID)
			}

		case "ctrl+s":
			return a, a.cycleStrategy()

		case "ctrl+t":
			a.mode = modeStats
			return a, a.fetchStats()

		case "ctrl+r":
			refresh := []tea.Cmd{a.fetchTasks(), a.fetchStrategies(), a.checkDaemon()}
			if a.mode == modeStats {
				refresh = append(refresh, a.fetchStats())
			}
			return a, tea.Batch(refresh...)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = msg.Width - 4
		a.viewport.Width = msg.Width
		a.viewport.Height = max(5, msg.Height-10)
		a.refreshViewport()

	case tasksLoadedMsg:
		a.loading = false
		a.tasks = msg.tasks
		if a.selectedIdx >= len(a.tasks) {
			a.selectedIdx = max(0, len(a.tasks)-1)
		}

	case taskDetailLoadedMsg:
		a.currentTask = msg.task
		a.refreshViewport()

	case strategiesLoadedMsg:
		a.strategies = msg.strategies
		a.suggestions.SetStrategies(msg.strategies)

	case statsLoadedMsg:
		a.summary = msg.summary
		a.refreshViewport()

	case daemonStatusMsg:
		a.daemonOnline = msg.online

	case commandResultMsg:
		a.message = msg.message
		refresh := []tea.Cmd{a.fetchTasks(), a.fetchStrategies()}
		if a.mode == modeDetail && a.currentTask != nil {
			refresh = append(refresh, a.fetchTaskDetail(a.currentTask.ID))
		}
		return a, tea.Batch(refresh...)

	case errMsg:
		a.loading = false
		a.message = "Error: " + msg.err.Error()
	}

	// Update input
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	cmds = append(cmds, cmd)

	// Update suggestions based on input
	a.suggestions.Update(a.input.Value())

	return a, tea.Batch(cmds...)
}

// acceptSuggestion copies the highlighted suggestion into the input.
func (a *App) acceptSuggestion() bool {
	if !a.suggestions.IsVisible() {
		return false
	}
	if selected := a.suggestions.Selected(); selected != nil {
		a.input.SetValue(selected.Text + " ")
		a.input.CursorEnd()
		a.suggestions.Update("")
	}
	return true
}

// activeStrategy returns the active entry of the loaded strategy list.
func (a *App) activeStrategy() (controlplane.StrategyInfo, bool) {
	for _, s := range a.strategies {
		if s.Active {
			return s, true
		}
	}
	return controlplane.StrategyInfo{}, false
}

// nextStrategyKey returns the strategy after the active one, wrapping
// around the registry order.
func (a *App) nextStrategyKey() string {
	if len(a.strategies) == 0 {
		return ""
	}
	for i, s := range a.strategies {
		if s.Active {
			return a.strategies[(i+1)%len(a.strategies)].Key
		}
	}
	return a.strategies[0].Key
}

func (a *App) selectedTask() *models.Task {
	if len(a.tasks) == 0 || a.selectedIdx >= len(a.tasks) {
		return nil
	}
	return &a.tasks[a.selectedIdx]
}

// View implements tea.Model
func (a *App) View() string {
	var b strings.Builder

	// Header with daemon status
	daemonStatus := onlineStyle.Render("● DAEMON")
	if !a.daemonOnline {
		daemonStatus = offlineStyle.Render("○ DAEMON")
	}

	sortLabel := "…"
	if s, ok := a.activeStrategy(); ok {
		sortLabel = s.Name
	}

	header := titleStyle.Render("✔ TASKFLOW")
	header += "  " + daemonStatus
	header += "  " + lipgloss.NewStyle().Foreground(cyanColor).Render("⇅ "+sortLabel)

	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("─", a.width) + "\n")

	// Main content area
	contentHeight := a.height - 8
	if contentHeight < 5 {
		contentHeight = 5
	}

	switch a.mode {
	case modeList:
		b.WriteString(lipgloss.NewStyle().Foreground(mutedColor).Render(a.filterLabel()) + "\n")
		b.WriteString(a.renderTaskList(contentHeight - 1))
	case modeDetail, modeStats:
		b.WriteString(a.viewport.View())
	}

	// Message bar
	if a.message != "" {
		msgStyle := lipgloss.NewStyle().Foreground(successColor)
		if strings.HasPrefix(a.message, "Error") {
			msgStyle = lipgloss.NewStyle().Foreground(errorColor)
		}
		b.WriteString("\n" + msgStyle.Render(a.message))
	} else {
		b.WriteString("\n")
	}

	// Input box
	b.WriteString("\n")
	b.WriteString(inputBoxStyle.Render(a.input.View()))

	// Suggestions dropdown (if visible) - renders BELOW input
	if a.suggestions.IsVisible() {
		b.WriteString("\n")
		b.WriteString(a.suggestions.Render(a.width))
	}
	b.WriteString("\n")

	// Status bar
	var status string
	switch a.mode {
	case modeList:
		status = fmt.Sprintf(" Tasks: %d | ↑↓:nav | Enter:detail | Tab:filter | Ctrl+S:sort | Ctrl+T:stats | Ctrl+R:refresh | Ctrl+C:quit", len(a.tasks))
	case modeStats:
		status = " Stats | ↑↓:scroll | Ctrl+R:refresh | Esc:back"
	default:
		status = " ↑↓:scroll | done | delete | Esc:back | Ctrl+C:quit"
	}
	b.WriteString(statusBarStyle.Width(a.width).Render(status))

	return b.String()
}

func (a *App) filterLabel() string {
	label := fmt.Sprintf(" Filter: [%s]", statusFilterNames[a.statusIdx])
	if a.filter.Priority != "" {
		label += fmt.Sprintf(" [%s]", strings.ToUpper(a.filter.Priority.Label()))
	}
	if a.filter.Search != "" {
		label += fmt.Sprintf(" search=%q", a.filter.Search)
	}
	return label
}

func (a *App) renderTaskList(height int) string {
	if a.loading && len(a.tasks) == 0 {
		return "\n  Loading tasks...\n"
	}
	if len(a.tasks) == 0 {
		if a.filter.Active() {
			return "\n  No tasks match the current filter.\n"
		}
		return "\n  No tasks found. Type: add <title> to create one.\n"
	}

	now := a.now()
	var lines []string
	for i, task := range a.tasks {
		overdue := task.Overdue(now)
		deadlineText := formatDeadline(task.Deadline)
		if overdue {
			deadlineText += " ⚠ overdue"
		}
		deadline := lipgloss.NewStyle().Foreground(mutedColor).Render(deadlineText)
		if overdue {
			deadline = lipgloss.NewStyle().Foreground(errorColor).Render(deadlineText)
		}

		if i == a.selectedIdx {
			line := selectedStyle.Render(fmt.Sprintf("▶ %s %-6s %s  %s",
				formatStatusPlain(task.Status), task.Priority.Label(), task.Title, deadlineText))
			lines = append(lines, line)
		} else {
			line := taskItemStyle.Render(fmt.Sprintf("  %s %s %s  %s",
				formatStatusIcon(task.Status), formatPriority(task.Priority), task.Title, deadline))
			lines = append(lines, line)
		}
	}

	// Limit visible lines
	if len(lines) > height {
		start := a.selectedIdx - height/2
		if start < 0 {
			start = 0
		}
		end := start + height
		if end > len(lines) {
			end = len(lines)
			start = max(0, end-height)
		}
		lines = lines[start:end]
	}

	return strings.Join(lines, "\n")
}

// refreshViewport renders the detail or stats panel into the viewport.
func (a *App) refreshViewport() {
	switch a.mode {
	case modeDetail:
		a.viewport.SetContent(renderTaskDetail(a.currentTask, a.now()))
	case modeStats:
		a.viewport.SetContent(renderStats(a.summary))
	default:
		return
	}
	a.viewport.GotoTop()
}

func renderTaskDetail(t *models.Task, now time.Time) string {
	if t == nil {
		return "\n  Loading...\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n  📋 %s\n\n", lipgloss.NewStyle().Bold(true).Render(t.Title)))
	b.WriteString(fmt.Sprintf("  ID:        %s\n", t.ID))
	b.WriteString(fmt.Sprintf("  Status:    %s\n", formatStatus(t.Status)))
	b.WriteString(fmt.Sprintf("  Priority:  %s\n", formatPriority(t.Priority)))
	if t.Overdue(now) {
		b.WriteString(fmt.Sprintf("  Deadline:  %s %s\n", formatDeadline(t.Deadline),
			lipgloss.NewStyle().Foreground(errorColor).Bold(true).Render("⚠ OVERDUE")))
	} else {
		b.WriteString(fmt.Sprintf("  Deadline:  %s\n", formatDeadline(t.Deadline)))
	}
	b.WriteString(fmt.Sprintf("  Created:   %s\n", t.CreatedAt.Local().Format("2006-01-02 15:04")))
	if t.Description != "" {
		b.WriteString("\n  " + t.Description + "\n")
	}
	return b.String()
}

func renderStats(s *stats.Summary) string {
	if s == nil {
		return "\n  Loading...\n"
	}

	var b strings.Builder
	b.WriteString("\n  📊 Task Statistics\n")
	b.WriteString("  " + strings.Repeat("─", 40) + "\n\n")

	valueStyle := lipgloss.NewStyle().Bold(true)
	b.WriteString(fmt.Sprintf("  Total:              %s\n", valueStyle.Render(fmt.Sprint(s.Total))))
	b.WriteString(fmt.Sprintf("  Completed:          %s\n", valueStyle.Foreground(successColor).Render(fmt.Sprint(s.Completed))))
	b.WriteString(fmt.Sprintf("  In Progress:        %s\n", valueStyle.Foreground(secondaryColor).Render(fmt.Sprint(s.InProgress))))
	b.WriteString(fmt.Sprintf("  Pending:            %s\n", valueStyle.Foreground(warningColor).Render(fmt.Sprint(s.Pending))))
	b.WriteString(fmt.Sprintf("  High priority open: %s\n", valueStyle.Foreground(errorColor).Render(fmt.Sprint(s.HighPriorityOpen))))
	b.WriteString(fmt.Sprintf("  Overdue:            %s\n\n", valueStyle.Foreground(errorColor).Render(fmt.Sprint(s.OverdueOpen))))

	b.WriteString(fmt.Sprintf("  Progress  %s %d%%\n\n", bar(s.ProgressPercent, 100, successColor), s.ProgressPercent))

	b.WriteString("  By priority:\n")
	for _, p := range models.Priorities() {
		b.WriteString(fmt.Sprintf("    %-8s %s %d\n", p.Label(), bar(s.ByPriority[p], s.Total, priorityColor(p)), s.ByPriority[p]))
	}
	b.WriteString("\n  By status:\n")
	for _, st := range models.Statuses() {
		b.WriteString(fmt.Sprintf("    %-12s %s %d\n", st.Label(), bar(s.ByStatus[st], s.Total, statusColor(st)), s.ByStatus[st]))
	}

	b.WriteString("\n  " + helpStyle.Render("Press Esc to go back, Ctrl+R to refresh") + "\n")
	return b.String()
}

// bar draws a 20-cell bar filled in proportion to n/total.
func bar(n, total int, color lipgloss.Color) string {
	const width = 20
	full := 0
	if total > 0 {
		full = n * width / total
	}
	if full > width {
		full = width
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", full)) +
		lipgloss.NewStyle().Foreground(mutedColor).Render(strings.Repeat("░", width-full))
}

func priorityColor(p models.Priority) lipgloss.Color {
	switch p {
	case models.PriorityHigh:
		return errorColor
	case models.PriorityMedium:
		return warningColor
	default:
		return successColor
	}
}

func statusColor(s models.Status) lipgloss.Color {
	switch s {
	case models.StatusCompleted:
		return successColor
	case models.StatusInProgress:
		return secondaryColor
	default:
		return warningColor
	}
}

func formatPriority(p models.Priority) string {
	return lipgloss.NewStyle().Foreground(priorityColor(p)).Render(fmt.Sprintf("%-6s", p.Label()))
}

func formatStatus(s models.Status) string {
	return lipgloss.NewStyle().Foreground(statusColor(s)).Render(formatStatusPlain(s) + " " + strings.ToUpper(s.Label()))
}

func formatStatusIcon(s models.Status) string {
	return lipgloss.NewStyle().Foreground(statusColor(s)).Render(formatStatusPlain(s))
}

func formatStatusPlain(s models.Status) string {
	switch s {
	case models.StatusPending:
		return "○"
	case models.StatusInProgress:
		return "◐"
	case models.StatusCompleted:
		return "●"
	default:
		return "?"
	}
}

func formatDeadline(s string) string {
	d, err := models.ParseDeadline(s)
	if err != nil {
		return s
	}
	return d.Format("Jan 02 2006")
}

// --- Commands ---

func (a *App) fetchTasks() tea.Cmd {
	a.loading = true
	f := a.filter
	return func() tea.Msg {
		tasks, err := a.client.ListTasks(f)
		if err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg{tasks}
	}
}

func (a *App) fetchTaskDetail(taskID string) tea.Cmd {
	return func() tea.Msg {
		task, err := a.client.GetTask(taskID)
		if err != nil {
			return errMsg{err}
		}
		return taskDetailLoadedMsg{task}
	}
}

func (a *App) fetchStrategies() tea.Cmd {
	return func() tea.Msg {
		infos, err := a.client.Strategies()
		if err != nil {
			return errMsg{err}
		}
		return strategiesLoadedMsg{infos}
	}
}

func (a *App) fetchStats() tea.Cmd {
	return func() tea.Msg {
		summary, err := a.client.Stats()
		if err != nil {
			return errMsg{err}
		}
		return statsLoadedMsg{summary}
	}
}

func (a *App) checkDaemon() tea.Cmd {
	return func() tea.Msg {
		h, err := a.client.Health()
		return daemonStatusMsg{online: err == nil && h.OK}
	}
}

func (a *App) cycleStrategy() tea.Cmd {
	key := a.nextStrategyKey()
	if key == "" {
		return a.fetchStrategies()
	}
	return a.setStrategy(key)
}

func (a *App) setStrategy(key string) tea.Cmd {
	return func() tea.Msg {
		info, err := a.client.SetStrategy(key)
		if err != nil {
			return commandResultMsg{"Error: " + err.Error()}
		}
		return commandResultMsg{fmt.Sprintf("✓ %s", info.Name)}
	}
}

// executeCommand runs a typed command. Filter commands change local state
// and refetch; the rest call the API in the background.
func (a *App) executeCommand(input string) tea.Cmd {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "q", "quit", "exit":
		return tea.Quit

	case "search":
		a.mode = modeList
		a.filter.Search = strings.Join(args, " ")
		if a.filter.Search == "" {
			a.message = "Search cleared"
		} else {
			a.message = fmt.Sprintf("Searching for %q", a.filter.Search)
		}
		return a.fetchTasks()

	case "priority":
		if len(args) != 1 {
			a.message = "Usage: priority <high|medium|low|all>"
			return nil
		}
		if args[0] == "all" {
			a.filter.Priority = ""
		} else {
			p, err := models.ParsePriority(args[0])
			if err != nil {
				a.message = "Error: " + err.Error()
				return nil
			}
			a.filter.Priority = p
		}
		a.mode = modeList
		return a.fetchTasks()

	case "status":
		if len(args) < 1 {
			a.message = "Usage: status <pending|in_progress|completed|all>"
			return nil
		}
		a.statusIdx = 0
		if v := strings.Join(args, " "); v != "all" {
			st, err := models.ParseStatus(v)
			if err != nil {
				a.message = "Error: " + err.Error()
				return nil
			}
			for i, s := range statusFilters {
				if s == st {
					a.statusIdx = i
				}
			}
		}
		a.filter.Status = statusFilters[a.statusIdx]
		a.mode = modeList
		return a.fetchTasks()

	case "stats":
		a.mode = modeStats
		return a.fetchStats()

	case "sort":
		if len(args) != 1 {
			a.message = "Usage: sort <priority|deadline|status|created>"
			return nil
		}
		return a.setStrategy(args[0])

	case "add":
		in, err := parseAddArgs(args, a.now())
		if err != nil {
			a.message = "Error: " + err.Error()
			return nil
		}
		return func() tea.Msg {
			task, err := a.client.CreateTask(in)
			if err != nil {
				return commandResultMsg{"Error: " + err.Error()}
			}
			return commandResultMsg{fmt.Sprintf("✓ Created task: %s", task.Title)}
		}

	case "done", "toggle":
		task := a.targetTask()
		if task == nil {
			a.message = "No task selected"
			return nil
		}
		id := task.ID
		return func() tea.Msg {
			updated, err := a.client.ToggleTask(id)
			if err != nil {
				return commandResultMsg{"Error: " + err.Error()}
			}
			return commandResultMsg{fmt.Sprintf("✓ %s is now %s", updated.Title, updated.Status.Label())}
		}

	case "delete", "rm":
		task := a.targetTask()
		if task == nil {
			a.message = "No task selected"
			return nil
		}
		id, title := task.ID, task.Title
		a.mode = modeList
		a.currentTask = nil
		return func() tea.Msg {
			if err := a.client.DeleteTask(id); err != nil {
				return commandResultMsg{"Error: " + err.Error()}
			}
			return commandResultMsg{fmt.Sprintf("✓ Deleted: %s", title)}
		}

	default:
		a.message = fmt.Sprintf("Unknown: %s (try: add, done, delete, sort, search, priority, stats, q)", cmd)
		return nil
	}
}

// targetTask is the task shown in the detail view, or the selected list row.
func (a *App) targetTask() *models.Task {
	if a.mode == modeDetail && a.currentTask != nil {
		return a.currentTask
	}
	return a.selectedTask()
}

// defaultDeadlineDays is how far out "add" places a task without due:.
const defaultDeadlineDays = 7

// parseAddArgs builds a task from "add" arguments. Tokens of the form
// due:<date> and p:<priority> (or priority:<priority>) set those fields;
// everything else forms the title.
func parseAddArgs(args []string, now time.Time) (models.TaskInput, error) {
	in := models.TaskInput{
		Deadline: now.AddDate(0, 0, defaultDeadlineDays).Format("2006-01-02"),
		Priority: models.PriorityMedium,
		Status:   models.StatusPending,
	}

	var title []string
	for _, arg := range args {
		key, value, found := strings.Cut(arg, ":")
		switch {
		case found && key == "due":
			if _, err := models.ParseDeadline(value); err != nil {
				return models.TaskInput{}, err
			}
			in.Deadline = value
		case found && (key == "p" || key == "priority"):
			p, err := models.ParsePriority(value)
			if err != nil {
				return models.TaskInput{}, err
			}
			in.Priority = p
		default:
			title = append(title, arg)
		}
	}

	in.Title = strings.Join(title, " ")
	if in.Title == "" {
		return models.TaskInput{}, fmt.Errorf("usage: add <title> [due:YYYY-MM-DD] [p:high|medium|low]")
	}
	return in, nil
}
