package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sketchblossom/sketch-blossom/internal/flavor"
	"github.com/sketchblossom/sketch-blossom/internal/inventory"
	"github.com/sketchblossom/sketch-blossom/internal/models"
	"github.com/sketchblossom/sketch-blossom/internal/progression"
	"github.com/sketchblossom/sketch-blossom/internal/worldmap"
)

const (
	canvasWidth  = 800.0
	canvasHeight = 600.0
	tickInterval = 250 * time.Millisecond
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFCC66"))

	elementStyles = map[models.Element]lipgloss.Style{
		models.ElementFire:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")),
		models.ElementWater: lipgloss.NewStyle().Foreground(lipgloss.Color("#5599FF")),
		models.ElementGrass: lipgloss.NewStyle().Foreground(lipgloss.Color("#55FF55")),
	}
)

// sketchpad stands in for the drawing surface: keystrokes add strokes with
// deterministic length and spread, so real telemetry flows through the
// evaluator without a pointing device.
type sketchpad struct {
	strokes     int
	totalLength float64
}

func (p *sketchpad) add() {
	p.strokes++
	p.totalLength += 40 + 8*float64(p.strokes)
}

func (p *sketchpad) clear() {
	*p = sketchpad{}
}

func (p *sketchpad) stats() models.DrawingStats {
	canvas := canvasWidth * canvasHeight
	// Each stroke spreads the drawing over more of the canvas.
	bbox := canvas * float64(p.strokes) / 12
	if bbox > canvas {
		bbox = canvas
	}
	return models.DrawingStats{
		StrokeCount:     p.strokes,
		TotalLength:     p.totalLength,
		BoundingBoxArea: bbox,
		CanvasArea:      canvas,
	}
}

type model struct {
	ctrl   *progression.Controller
	inv    *inventory.Store
	gen    flavor.Generator
	roster []worldmap.Opponent

	textInput textinput.Model
	viewport  viewport.Model
	pad       sketchpad

	loadingPreview bool
	err            error
	width          int
	height         int
}

type tickMsg time.Time

type previewReadyMsg struct {
	enc models.EncounterRecord
}

type errMsg struct {
	err error
}

func NewModel(ctrl *progression.Controller, inv *inventory.Store, gen flavor.Generator, roster []worldmap.Opponent) model {
	ti := textinput.New()
	ti.Placeholder = "Type a unit name or number..."
	ti.CharLimit = 60
	ti.Width = 40

	return model{
		ctrl:      ctrl,
		inv:       inv,
		gen:       gen,
		roster:    roster,
		textInput: ti,
		viewport:  viewport.New(60, 5),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.75)
		m.viewport.Height = 5

	case tickMsg:
		// The deferred Tame auto-return may have moved the controller
		// between frames; re-render from a fresh snapshot every tick.
		m.viewport.SetContent(m.renderEvents())
		m.viewport.GotoBottom()
		return m, tick()

	case previewReadyMsg:
		m.loadingPreview = false
		if err := m.ctrl.PreviewOpponent(msg.enc); err != nil {
			m.err = err
		}
		return m, nil

	case errMsg:
		m.loadingPreview = false
		m.err = msg.err
		return m, nil
	}

	if m.ctrl.Stage() == progression.StageSelectingUnit {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch m.ctrl.Stage() {
	case progression.StageWorldMap:
		if m.loadingPreview {
			return m, nil
		}
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.roster) {
			m.loadingPreview = true
			return m, m.fetchPreview(m.roster[n-1])
		}

	case progression.StagePreviewingEncounter:
		switch msg.String() {
		case "enter":
			if err := m.ctrl.ConfirmEncounter(); err == nil {
				m.textInput.Reset()
				m.textInput.Focus()
			}
		case "c":
			m.ctrl.CancelPreview()
		}

	case progression.StageSelectingUnit:
		if msg.Type == tea.KeyEnter {
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				m.ctrl.Request(progression.StageInBattle)
				return m, nil
			}
			m.selectUnit(input)
			m.textInput.Reset()
			return m, nil
		}
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd

	case progression.StageInBattle:
		switch msg.String() {
		case "w":
			m.ctrl.ResolveBattle(true)
		case "l":
			m.ctrl.ResolveBattle(false)
		}

	case progression.StagePostBattle:
		switch msg.String() {
		case "g":
			if err := m.ctrl.ChooseWildGrowth(); err == nil {
				m.pad.clear()
			}
		case "t":
			m.ctrl.ChooseTame()
		case "f":
			m.ctrl.Finish()
		}

	case progression.StageWildGrowthReward:
		switch msg.String() {
		case "d":
			m.pad.add()
		case "x":
			m.pad.clear()
		case "enter":
			if err := m.ctrl.ConfirmWildGrowth(m.pad.stats()); err == nil {
				m.pad.clear()
			}
		}

	case progression.StageTameReward:
		if msg.String() == "enter" {
			m.ctrl.ConfirmTame()
		}
	}
	return m, nil
}

// selectUnit resolves the typed input to a unit by list position or by
// (fuzzy) name and selects it.
func (m *model) selectUnit(input string) {
	units := m.inv.List()
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(units) {
		m.inv.Select(units[n-1].ID)
		return
	}
	if id, ok := m.inv.ResolveName(input); ok {
		m.inv.Select(id)
		return
	}
	m.err = fmt.Errorf("no unit matching %q", input)
}

func (m model) fetchPreview(op worldmap.Opponent) tea.Cmd {
	return func() tea.Msg {
		enc := op.Encounter()
		text, err := m.gen.FlavorText(context.Background(), enc)
		if err == nil && text != "" {
			enc.Flavor = text
		}
		// Flavor failures fall back to the roster's line.
		return previewReadyMsg{enc}
	}
}

func (m model) View() string {
	snap := m.ctrl.Snapshot()

	var body string
	switch snap.Stage {
	case progression.StageWorldMap:
		body = m.viewWorldMap()
	case progression.StagePreviewingEncounter:
		body = m.viewPreview(snap)
	case progression.StageSelectingUnit:
		body = m.viewSelection(snap)
	case progression.StageInBattle:
		body = m.viewBattle(snap)
	case progression.StagePostBattle:
		body = m.viewPostBattle(snap)
	case progression.StageWildGrowthReward:
		body = m.viewWildGrowth()
	case progression.StageTameReward:
		body = m.viewTame()
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderSidebar(snap))

	var footer string
	if m.err != nil {
		footer = warnStyle.Render("! " + m.err.Error())
	}
	log := m.viewport.View()

	return "\n" + lipgloss.JoinVertical(lipgloss.Left, main, "", log, footer) + "\n"
}

func (m model) viewWorldMap() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("WORLD MAP") + "\n\n")
	if m.loadingPreview {
		b.WriteString("Sizing up your opponent...\n")
		return b.String()
	}
	for i, op := range m.roster {
		enc := op.Encounter()
		line := fmt.Sprintf("%d. %-14s %s %s", i+1,
			op.Name, elementStyle(op.Element).Render(string(op.Element)), enc.Stars())
		b.WriteString(gameStyle.Render(line) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("Press a number to approach an opponent. Esc quits."))
	return b.String()
}

func (m model) viewPreview(snap progression.Snapshot) string {
	if snap.Pending == nil {
		return "No opponent previewed."
	}
	enc := *snap.Pending
	var b strings.Builder
	b.WriteString(titleStyle.Render("BATTLE PREVIEW") + "\n\n")
	b.WriteString(gameStyle.Bold(true).Render(enc.Name) + "\n")
	b.WriteString("Element: " + elementStyle(enc.Element).Render(string(enc.Element)) + "\n")
	b.WriteString("Difficulty: " + enc.Stars() + "\n\n")
	b.WriteString(gameStyle.Italic(true).Render(enc.Flavor) + "\n\n")
	b.WriteString(helpStyle.Render("enter: to battle  ·  c: back away"))
	return b.String()
}

func (m model) viewSelection(snap progression.Snapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("CHOOSE YOUR UNIT") + "\n\n")
	units := m.inv.List()
	if len(units) == 0 {
		b.WriteString("Your inventory is empty.\n")
	}
	for i, u := range units {
		marker := "  "
		if snap.Selected != nil && snap.Selected.ID == u.ID {
			marker = "> "
		}
		line := fmt.Sprintf("%s%d. Lv%-2d %-14s HP %d/%d  ATK %d  DEF %d",
			marker, i+1, u.Level, u.Name, u.CurrentHealth, u.MaxHealth, u.Attack, u.Defense)
		b.WriteString(gameStyle.Render(line) + "\n")
	}
	b.WriteString("\n" + m.textInput.View() + "\n")
	b.WriteString(helpStyle.Render("Type a name or number to select; empty enter starts the battle."))
	return b.String()
}

func (m model) viewBattle(snap progression.Snapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("BATTLE") + "\n\n")
	if snap.Selected != nil {
		b.WriteString(snap.Selected.Name + " vs " + snap.Encounter.Name + "\n\n")
	}
	b.WriteString(helpStyle.Render("w: win the battle  ·  l: lose the battle"))
	return b.String()
}

func (m model) viewPostBattle(snap progression.Snapshot) string {
	var b strings.Builder
	if snap.BattleWon {
		b.WriteString(titleStyle.Render("VICTORY! CHOOSE YOUR GROWTH PATH") + "\n\n")
		b.WriteString("g: Wild Growth - draw to power up the unit that fought\n")
		b.WriteString("t: Tame - claim the beaten opponent\n")
		b.WriteString("f: Finish - back to the world map\n")
	} else {
		b.WriteString(titleStyle.Render("DEFEAT") + "\n\n")
		b.WriteString("f: back to the world map\n")
	}
	return b.String()
}

func (m model) viewWildGrowth() string {
	stats := m.pad.stats()
	var b strings.Builder
	b.WriteString(titleStyle.Render("WILD GROWTH") + "\n\n")
	b.WriteString(fmt.Sprintf("Strokes: %d   Length: %.0f\n\n", stats.StrokeCount, stats.TotalLength))

	if mult, current, grown, ok := m.ctrl.GrowthPreview(stats); ok {
		b.WriteString(fmt.Sprintf("Quality → x%.2f\n\n", mult))
		b.WriteString(fmt.Sprintf("HP:  %d → %d\n", current.MaxHealth, grown.MaxHealth))
		b.WriteString(fmt.Sprintf("ATK: %d → %d\n", current.Attack, grown.Attack))
		b.WriteString(fmt.Sprintf("DEF: %d → %d\n\n", current.Defense, grown.Defense))
	}

	if m.ctrl.ConfirmEnabled(stats) {
		b.WriteString(helpStyle.Render("d: draw a stroke  ·  x: clear  ·  enter: confirm growth"))
	} else {
		b.WriteString(helpStyle.Render("d: draw a stroke  ·  x: clear  ·  draw more to enable confirm"))
	}
	return b.String()
}

func (m model) viewTame() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("TAME") + "\n\n")
	b.WriteString("The wild plant joins your side!\n\n")
	b.WriteString(helpStyle.Render("enter: back to the world map (returns automatically in a moment)"))
	return b.String()
}

func (m model) renderSidebar(snap progression.Snapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("UNIT") + "\n")
	if snap.Selected != nil {
		b.WriteString(snap.Selected.StatsSummary() + "\n\n")
	} else {
		b.WriteString("(none selected)\n\n")
	}

	if snap.Active {
		b.WriteString(titleStyle.Render("ENCOUNTER") + "\n")
		b.WriteString(snap.Encounter.Name + "\n")
		b.WriteString(elementStyle(snap.Encounter.Element).Render(string(snap.Encounter.Element)) + " " + snap.Encounter.Stars() + "\n")
	}

	width := 30
	if m.width > 0 {
		width = int(float64(m.width) * 0.25)
	}
	return stateStyle.Width(width).Render(b.String())
}

func (m model) renderEvents() string {
	events := m.ctrl.Events()
	if len(events) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range events {
		b.WriteString(warnStyle.Render("· "+e) + "\n")
	}
	return b.String()
}

func elementStyle(e models.Element) lipgloss.Style {
	if s, ok := elementStyles[e]; ok {
		return s
	}
	return gameStyle
}

func Run(ctrl *progression.Controller, inv *inventory.Store, gen flavor.Generator, roster []worldmap.Opponent) error {
	p := tea.NewProgram(NewModel(ctrl, inv, gen, roster), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
