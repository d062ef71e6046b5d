package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/registry"
	"github.com/vovakirdan/mazechase/internal/storage"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"up", core.ActionUp, false},
		{"w", core.ActionUp, false},
		{"k", core.ActionUp, false},
		{"left", core.ActionLeft, false},
		{"a", core.ActionLeft, false},
		{"h", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"j", core.ActionDown, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(keyMsg(tc.key))
		if action != tc.action || quit != tc.quit {
			t.Errorf("MapKey(%q) = %s, %v; expected %s, %v", tc.key, action, quit, tc.action, tc.quit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("a"), &frame) {
		t.Error("a is not a quit key")
	}
	if km.MapKeyToFrame(keyMsg("up"), &frame) {
		t.Error("up is not a quit key")
	}
	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionUp) {
		t.Error("frame should hold both pressed directions")
	}
	if !km.MapKeyToFrame(keyMsg("q"), &frame) || frame.Has(core.ActionQuit) {
		t.Error("quit should be reported, not queued")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := map[string]MenuAction{
		"up":    MenuActionUp,
		"j":     MenuActionDown,
		"enter": MenuActionSelect,
		"esc":   MenuActionBack,
		"tab":   MenuActionScoreboard,
		"q":     MenuActionQuit,
		"x":     MenuActionNone,
	}
	for key, want := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(key)); got != want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", key, got, want)
		}
	}
}

func TestTickInterval(t *testing.T) {
	if got := tickInterval(50); got != 20*time.Millisecond {
		t.Errorf("tickInterval(50) = %v", got)
	}
	if got := tickInterval(0); got != time.Second/defaultTickRate {
		t.Errorf("tickInterval(0) = %v, expected default rate", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawTextColored(0, 1, "██", core.ColorBlue)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "cd", "██"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q: %q", want, out)
		}
	}
}

// scriptedGame ends after a fixed number of steps.
type scriptedGame struct {
	steps   int
	endAt   int
	score   int
	resets  int
	lastIn  []core.Action
	seed    int64
	preset  string
	stopped bool
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(cfg core.RuntimeConfig) { g.resets++; g.steps = 0; g.seed = cfg.Seed; g.stopped = false }
func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) Seed() int64 { return g.seed }
func (g *scriptedGame) Difficulty() string { return g.preset }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.lastIn = g.lastIn[:0]
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionRestart} {
		if in.Has(a) {
			g.lastIn = append(g.lastIn, a)
		}
	}
	if g.stopped && in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{Seed: g.seed + 1})
		return core.StepResult{State: g.State()}
	}
	if !g.stopped {
		g.steps++
		g.stopped = g.steps >= g.endAt
	}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.score, Level: 2, GameOver: g.stopped}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(Model)
}

func TestModelSavesRunOnce(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{endAt: 3, score: 420, preset: "hard"}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 9}, nil)

	for range 10 {
		m = tick(t, m)
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved run, got %d", len(scores))
	}
	if got := scores[0]; got.Score != 420 || got.Level != 2 || got.Difficulty != "hard" || got.Seed != 9 {
		t.Errorf("saved run = %+v", got)
	}

	// Restarting and finishing again records a second run.
	next, _ := m.Update(keyMsg("r"))
	m = next.(Model)
	for range 10 {
		m = tick(t, m)
	}
	if scores, _ := store.TopScores("scripted", 10); len(scores) != 2 {
		t.Errorf("expected a second run after restart, got %d", len(scores))
	}
}

func TestModelForwardsKeysForOneTick(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1}, nil)

	next, _ := m.Update(keyMsg("left"))
	m = tick(t, next.(Model))
	if len(g.lastIn) != 1 || g.lastIn[0] != core.ActionLeft {
		t.Fatalf("step input = %v, expected [left]", g.lastIn)
	}

	tick(t, m)
	if len(g.lastIn) != 0 {
		t.Errorf("input should clear after a tick, got %v", g.lastIn)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&scriptedGame{endAt: 100}, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, Seed: 1}, nil)

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, Seed: 1}, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	m = next.(Model)
	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("view should draw the game")
	}
}

func TestDifficultyModelSelect(t *testing.T) {
	m := NewDifficultyModel(80, 24)
	if p, ok := m.Selected(); ok {
		t.Fatalf("nothing chosen yet, got %q", p)
	}

	next, _ := m.Update(keyMsg("j"))
	next, cmd := next.(DifficultyModel).Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("select should quit the selector")
	}
	p, ok := next.(DifficultyModel).Selected()
	if !ok || p != "hard" {
		t.Errorf("selected %q, %v; expected hard", p, ok)
	}
}

func TestScoreboardFiltersByDifficulty(t *testing.T) {
	store := openStore(t)
	runs := []storage.Run{
		{GameID: "chase", Score: 900, Level: 3, Difficulty: "hard", Seed: 1},
		{GameID: "chase", Score: 500, Level: 2, Difficulty: "easy", Seed: 2},
		{GameID: "chase", Score: 300, Level: 1, Difficulty: "hard", Seed: 3},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	m.games = []registry.GameInfo{{ID: "chase", Title: "Maze Chase"}}
	m.load()

	if len(m.visible) != 3 {
		t.Fatalf("all filter shows %d runs, want 3", len(m.visible))
	}
	if m.stats == nil || m.stats.HighScore != 900 || m.stats.BestLevel != 3 {
		t.Errorf("stats = %+v", m.stats)
	}

	// all -> easy -> normal -> hard
	for range 3 {
		next, _ := m.Update(keyMsg("l"))
		m = next.(ScoreboardModel)
	}
	if m.filters[m.filter] != "hard" {
		t.Fatalf("filter = %s, want hard", m.filters[m.filter])
	}
	if len(m.visible) != 2 || m.visible[0].Score != 900 || m.visible[1].Score != 300 {
		t.Errorf("hard runs = %+v", m.visible)
	}

	next, _ := m.Update(keyMsg("h"))
	m = next.(ScoreboardModel)
	if len(m.visible) != 0 {
		t.Errorf("normal filter shows %d runs", len(m.visible))
	}
	if !strings.Contains(m.View(), "No normal runs yet.") {
		t.Error("empty filter should say so")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("nil store should render an empty board")
	}

	next, cmd := m.Update(keyMsg("esc"))
	if cmd == nil || !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
}
