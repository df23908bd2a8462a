package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/tripguide/internal/animation"
	"github.com/HaiFongPan/tripguide/internal/config"
	"github.com/HaiFongPan/tripguide/internal/responsive"
	"github.com/HaiFongPan/tripguide/internal/trip"
	tuiconfig "github.com/HaiFongPan/tripguide/internal/tui/config"
	"github.com/HaiFongPan/tripguide/internal/tui/messaging"
	"github.com/HaiFongPan/tripguide/internal/tui/theme"
)

// Tab names
const (
	TabHome      = "home"
	TabMakePlan  = "make-plan"
	TabPlanLists = "plan-lists"
	TabSettings  = "settings"
	TabSearch    = "search"
)

// Tab is an entry of the bottom tab bar
type Tab struct {
	Name      string
	Label     string
	Icon      string
	Available bool
}

// Tabs lists the tab bar entries in display order
var Tabs = []Tab{
	{Name: TabHome, Label: "Home", Icon: "⌂", Available: true},
	{Name: TabMakePlan, Label: "Make Plan", Icon: "▦", Available: true},
	{Name: TabPlanLists, Label: "Plan Lists", Icon: "≡"},
	{Name: TabSettings, Label: "Settings", Icon: "⚙"},
	{Name: TabSearch, Label: "Search", Icon: "⌕"},
}

// frameMsg drives animations at the configured frame rate
type frameMsg time.Time

// ConfigReloadedMsg carries a configuration reloaded from disk
type ConfigReloadedMsg struct {
	Config *config.Config
}

// AppModel is the root model: screens, tab bar and page transitions
type AppModel struct {
	cfg     *config.Config
	engine  *responsive.Engine
	cells   responsive.CellMetrics
	clock   animation.Clock
	page    *animation.PageTransition
	home    *HomeModel
	plan    *PlanModel
	status  messaging.StatusManager
	keyMap  KeyMap
	help    help.Model
	fps     int
	width   int
	height  int
	ticking bool
	helpOn  bool
}

// NewAppModel creates the root model. The engine's viewport is refreshed from every window
// size message.
func NewAppModel(cfg *config.Config, engine *responsive.Engine, clock animation.Clock) (*AppModel, error) {
	if clock == nil {
		clock = animation.NewSystemClock()
	}

	page, err := animation.NewPageTransition(TabHome, cfg.Animation.Page(), clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create page transition: %w", err)
	}
	home, err := NewHomeModel(trip.HomeFeed(), cfg.Animation.Entrance(), clock)
	if err != nil {
		return nil, err
	}
	plan, err := NewPlanModel(trip.DemoPlaces, cfg.Animation.Entrance(), clock)
	if err != nil {
		home.Dispose()
		return nil, err
	}

	size := engine.Viewport()
	cells := cfg.Layout.Cells()
	h := help.New()
	h.ShortSeparator = " " + theme.BorderStyleSeparator + " "

	return &AppModel{
		cfg:    cfg,
		engine: engine,
		cells:  cells,
		clock:  clock,
		page:   page,
		home:   home,
		plan:   plan,
		status: messaging.NewStatusManager(clock, messaging.DefaultMessageTTL),
		keyMap: DefaultKeyMap(),
		help:   h,
		fps:    cfg.Animation.FPS,
		width:  cells.ColumnsFor(size.Width),
		height: cells.RowsFor(size.Height),
	}, nil
}

// Init implements the bubbletea.Model interface
func (m *AppModel) Init() tea.Cmd {
	m.enterScreen(m.page.Current(), false)
	return m.ensureTicking()
}

// Current returns the visible screen
func (m *AppModel) Current() string {
	return m.page.Current()
}

// Close disposes every gate owned by the app
func (m *AppModel) Close() {
	m.home.Dispose()
	m.plan.Dispose()
	m.page.Gate().Dispose()
}

// Update implements the bubbletea.Model interface
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		return m, m.stepFrame()

	case statusMsg:
		m.status.SetMessage(msg.text, msg.msgType)
		return m, m.ensureTicking()

	case PlanSubmittedMsg:
		logrus.Infof("Plan submitted: %s", msg.Plan.Summary())
		m.status.SetMessage(msg.Plan.Summary(), messaging.MessageSuccess)
		return m, m.ensureTicking()

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil
	}
	return m, nil
}

func (m *AppModel) resize(cols, rows int) {
	w, h := m.cells.FromCells(cols, rows)
	if err := m.engine.RefreshViewport(w, h); err != nil {
		logrus.Warnf("Ignoring window size %dx%d: %v", cols, rows, err)
		return
	}
	m.width, m.height = cols, rows
	logrus.Debugf("Viewport refreshed to %.0fx%.0f (landscape=%t, tablet=%t)", w, h, m.engine.IsLandscape(), m.engine.IsTablet())
}

func (m *AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// esc leaves a text field instead of quitting
	if m.page.Current() == TabMakePlan && m.plan.Editing() && key.Matches(msg, m.keyMap.LeaveField) {
		m.plan.StopEditing()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Help):
		m.helpOn = !m.helpOn
		return m, nil
	case key.Matches(msg, m.keyMap.NextTab):
		return m, m.SelectTab(m.tabOffset(1))
	case key.Matches(msg, m.keyMap.PrevTab):
		return m, m.SelectTab(m.tabOffset(-1))
	case key.Matches(msg, m.keyMap.Replay):
		m.enterScreen(m.page.Current(), true)
		return m, m.ensureTicking()
	}

	if m.page.Current() == TabMakePlan && !m.page.Transitioning() {
		return m, m.plan.Update(msg)
	}
	return m, nil
}

func (m *AppModel) tabOffset(delta int) string {
	current := 0
	for i, t := range Tabs {
		if t.Name == m.page.Current() {
			current = i
		}
	}
	return Tabs[(current+delta+len(Tabs))%len(Tabs)].Name
}

// SelectTab handles a tab press
func (m *AppModel) SelectTab(name string) tea.Cmd {
	for _, t := range Tabs {
		if t.Name != name {
			continue
		}
		if !t.Available {
			m.status.SetMessage(fmt.Sprintf("%s is not available yet", t.Label), messaging.MessageInfo)
			return m.ensureTicking()
		}
		if m.page.Navigate(name, false) {
			logrus.Debugf("Navigating to %s", name)
			return m.ensureTicking()
		}
		return nil
	}
	logrus.Warnf("Unknown tab %q", name)
	return nil
}

func (m *AppModel) enterScreen(name string, force bool) {
	switch name {
	case TabHome:
		m.home.Enter(force)
	case TabMakePlan:
		m.plan.Enter(force)
	}
}

func (m *AppModel) ensureTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return m.frameCmd()
}

func (m *AppModel) frameCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// stepFrame advances every running effect and schedules the next frame while needed
func (m *AppModel) stepFrame() tea.Cmd {
	now := m.clock.Now()

	before := m.page.Current()
	running := m.page.Step(now)
	if after := m.page.Current(); after != before {
		m.enterScreen(after, false)
	}

	if m.home.Step(now) {
		running = true
	}
	if m.plan.Step(now) {
		running = true
	}

	m.status.Expire(now)
	if m.status.HasMessage() {
		running = true
	}

	m.ticking = running
	if !running {
		return nil
	}
	return m.frameCmd()
}

func (m *AppModel) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	page := animation.GateConfig{Name: "page", Cooldown: cfg.Animation.PageCooldown}
	item := animation.GateConfig{Name: "item", Cooldown: cfg.Animation.ItemCooldown}
	for _, gc := range []animation.GateConfig{page, item} {
		if err := gc.Validate(); err != nil {
			logrus.Warnf("Rejected %s cooldown: %v", gc.Name, err)
			return
		}
	}

	for _, apply := range []func() error{
		func() error { return m.page.Gate().SetCooldown(page.Cooldown) },
		func() error { return m.home.entrances.SetCooldown(item.Cooldown) },
		func() error { return m.plan.entrances.SetCooldown(item.Cooldown) },
	} {
		if err := apply(); err != nil {
			logrus.Errorf("Failed to apply cooldowns: %v", err)
			return
		}
	}
	logrus.Infof("Animation cooldowns reloaded (page=%s, item=%s)", page.Cooldown, item.Cooldown)

	if pending := restartSections(m.cfg, cfg); len(pending) > 0 {
		logrus.Warnf("Config: %s changes apply after restart", strings.Join(pending, ", "))
		m.status.SetMessage(fmt.Sprintf("Reloaded cooldowns; %s changes apply after restart", strings.Join(pending, ", ")), messaging.MessageWarning)
	}
	m.cfg = cfg
}

// restartSections lists the reloaded settings that only take effect at startup
func restartSections(old, reloaded *config.Config) []string {
	var pending []string
	if old.Layout != reloaded.Layout {
		pending = append(pending, "layout")
	}
	timing := old.Animation
	timing.PageCooldown, timing.ItemCooldown = reloaded.Animation.PageCooldown, reloaded.Animation.ItemCooldown
	if timing != reloaded.Animation {
		pending = append(pending, "animation timing")
	}
	if old.Log != reloaded.Log {
		pending = append(pending, "log")
	}
	return pending
}

func (m *AppModel) metrics() metrics {
	return metrics{engine: m.engine, cells: m.cells, cols: m.width, rows: m.height}
}

// View implements the bubbletea.Model interface
func (m *AppModel) View() string {
	mt := m.metrics()

	var screen string
	switch m.page.Current() {
	case TabMakePlan:
		screen = m.plan.View(mt)
	default:
		screen = m.home.View(mt)
	}

	padTop := mt.rowsFor(tuiconfig.ScreenPaddingTop)
	body := lipgloss.NewStyle().
		PaddingLeft(mt.paddingX()).
		PaddingRight(mt.paddingX()).
		PaddingTop(padTop).
		Render(screen)
	body = theme.Fade(body, m.page.Opacity())

	footer := []string{}
	if m.status.HasMessage() {
		footer = append(footer, lipgloss.NewStyle().PaddingLeft(mt.paddingX()).Render(m.status.RenderMessage()))
	}
	footer = append(footer, m.renderTabBar(), m.help.ShortHelpView(m.keyMap.ShortHelp()))
	footerView := strings.Join(footer, "\n")

	// the content scrolls under the fixed tab bar
	bodyRows := max(m.height-lipgloss.Height(footerView), 1)
	body = clipLines(body, bodyRows)

	baseView := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Height(bodyRows).Render(body),
		footerView,
	)

	if m.helpOn {
		return m.renderHelpDialog(mt)
	}
	return baseView
}

func (m *AppModel) renderTabBar() string {
	items := make([]string, 0, len(Tabs))
	for _, t := range Tabs {
		label := t.Icon
		if m.engine.IsTablet() || m.engine.IsLandscape() {
			label = t.Icon + " " + t.Label
		}
		items = append(items, theme.CreateTabStyle(t.Name == m.page.Current(), t.Available).Render(label))
	}
	return theme.CreateTabBarStyle(max(m.width, 1)).Render(lipgloss.JoinHorizontal(lipgloss.Top, items...))
}

func (m *AppModel) renderHelpDialog(mt metrics) string {
	h := m.help
	h.ShowAll = true
	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.CreatePromptStyle().Render("Keyboard shortcuts"),
		h.FullHelpView(m.keyMap.FullHelp()),
	)
	dialog := theme.CreateDialogStyle(min(mt.columns(tuiconfig.DialogWidth), max(m.width-4, 10))).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

func clipLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}
