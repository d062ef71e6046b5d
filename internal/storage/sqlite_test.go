package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesNestedDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.mazechase/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".mazechase", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}

func TestSaveRunAndTopScores(t *testing.T) {
	store := openTemp(t)

	runs := []Run{
		{GameID: "chase", Score: 1200, Level: 2, Difficulty: "normal", Seed: 7},
		{GameID: "chase", Score: 450, Level: 1, Difficulty: "hard", Seed: 8},
		{GameID: "chase", Score: 3100, Level: 4, Difficulty: "easy", Seed: 9},
		{GameID: "other", Score: 9999},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}

	scores, err := store.TopScores("chase", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 chase runs, got %d", len(scores))
	}

	want := []int{3100, 1200, 450}
	for i, s := range scores {
		if s.Score != want[i] {
			t.Errorf("rank %d score = %d, expected %d", i+1, s.Score, want[i])
		}
	}

	top := scores[0]
	if top.Level != 4 || top.Difficulty != "easy" || top.Seed != 9 {
		t.Errorf("top run = %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("created_at should be populated")
	}
}

func TestOpenMigratesScoresWithoutRunColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO scores (game_id, score) VALUES ('chase', 90);
	`)
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := store.SaveRun(Run{GameID: "chase", Score: 40, Level: 2, Difficulty: "hard", Seed: 3}); err != nil {
		t.Fatal(err)
	}
	scores, err := store.TopScores("chase", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 {
		t.Fatalf("scores = %+v", scores)
	}
	if old := scores[0]; old.Score != 90 || old.Level != 1 || old.Difficulty != "" || old.Seed != 0 {
		t.Errorf("migrated row = %+v", old)
	}
	if scores[1].Level != 2 || scores[1].Difficulty != "hard" {
		t.Errorf("new row = %+v", scores[1])
	}

	// Opening again leaves the migrated table alone.
	store.Close()
	again, err := Open(path)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	again.Close()
}

func TestSaveRunRequiresGameID(t *testing.T) {
	store := openTemp(t)

	if _, err := store.SaveRun(Run{Score: 10}); err == nil {
		t.Error("run without game id should be rejected")
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := range 5 {
		store.SaveRun(Run{GameID: "chase", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("chase", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("scores not in expected order: %v", scores)
	}

	all, err := store.AllScores("chase")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Errorf("AllScores = %d entries, expected 5", len(all))
	}
}

func TestHighScoreAndClear(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("chase")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "chase", Score: 100})
	store.SaveRun(Run{GameID: "chase", Score: 300})
	store.SaveRun(Run{GameID: "other", Score: 700})

	if high, _ = store.HighScore("chase"); high != 300 {
		t.Errorf("high score = %d, expected 300", high)
	}

	if err := store.ClearScores("chase"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("chase", 10); len(scores) != 0 {
		t.Errorf("expected no chase scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("clearing chase should not touch other games")
	}
}

func TestGameStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.GetGameStats("chase")
	if err != nil {
		t.Fatalf("GetGameStats() on empty table failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{GameID: "chase", Score: 100, Level: 1})
	store.SaveRun(Run{GameID: "chase", Score: 300, Level: 3})
	store.SaveRun(Run{GameID: "other", Score: 50, Level: 1})

	stats, err := store.GetGameStats("chase")
	if err != nil {
		t.Fatal(err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.BestLevel != 3 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("avg = %v, expected 200", stats.AvgScore)
	}
	if time.Since(stats.LastPlayed) > 24*time.Hour {
		t.Errorf("last played = %v, expected recent", stats.LastPlayed)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all["other"].GamesCount != 1 || all["chase"].BestLevel != 3 {
		t.Errorf("all stats = %v", all)
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	if got := parseTime("2024-03-01 12:30:00"); !got.Equal(want) {
		t.Errorf("sqlite text = %v", got)
	}
	if got := parseTime(want); !got.Equal(want) {
		t.Errorf("time.Time = %v", got)
	}
	if got := parseTime(nil); !got.IsZero() {
		t.Errorf("nil = %v, expected zero", got)
	}
}
