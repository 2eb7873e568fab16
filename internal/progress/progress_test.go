package progress

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLevelForXP(t *testing.T) {
	tests := []struct{ xp, want int }{
		{0, 1}, {139, 1}, {140, 2}, {168, 2}, {280, 3}, {700, 6},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestCosmeticForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Nebula Classic"}, {2, "Nebula Classic"}, {3, "Solar Flare"},
		{4, "Solar Flare"}, {5, "Emerald Rush"}, {40, "Emerald Rush"},
	}
	for _, tt := range tests {
		if got := CosmeticForLevel(tt.level).Name; got != tt.want {
			t.Errorf("CosmeticForLevel(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestGainReportsUnlocks(t *testing.T) {
	s := Load(NewMemoryStorage())
	res, err := s.Gain(168)
	if err != nil {
		t.Fatalf("Gain: %v", err)
	}
	if res.XP != 168 || res.Level != 2 || len(res.Unlocked) != 0 {
		t.Errorf("unexpected result %+v", res)
	}

	res, _ = s.Gain(600) // 768 XP -> level 6
	if res.Level != 6 {
		t.Fatalf("Level = %d, want 6", res.Level)
	}
	if len(res.Unlocked) != 2 || res.Unlocked[0] != "Solar Flare" || res.Unlocked[1] != "Emerald Rush" {
		t.Errorf("Unlocked = %v", res.Unlocked)
	}
	if s.Cosmetic().Name != "Emerald Rush" {
		t.Errorf("Cosmetic = %q", s.Cosmetic().Name)
	}
}

func TestRoundTrip(t *testing.T) {
	storage := FileStorage{Dir: t.TempDir()}
	s := Load(storage)
	if _, err := s.Gain(321); err != nil {
		t.Fatalf("Gain: %v", err)
	}
	if got := Load(storage).XP(); got != 321 {
		t.Errorf("reloaded XP = %d, want 321", got)
	}
}

func TestLoadFallsBackToZero(t *testing.T) {
	tests := map[string]string{
		"garbage":    "{not json",
		"string xp":  `{"xp":"12"}`,
		"missing xp": `{"level":4}`,
		"null xp":    `{"xp":null}`,
		"array":      `[1,2,3]`,
		"empty":      ``,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			storage := NewMemoryStorage()
			_ = storage.Set(Key, raw)
			if got := Load(storage).XP(); got != 0 {
				t.Errorf("XP = %d, want 0", got)
			}
		})
	}
}

func TestLoadNormalisesNumbers(t *testing.T) {
	tests := map[string]int{
		`{"xp":12.9}`:  12,
		`{"xp":-40}`:   0,
		`{"xp":1e3}`:   1000,
		`{"xp":1e300}`: MaxXP,
	}
	for raw, want := range tests {
		storage := NewMemoryStorage()
		_ = storage.Set(Key, raw)
		if got := Load(storage).XP(); got != want {
			t.Errorf("Load(%s) XP = %d, want %d", raw, got, want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if got := Load(FileStorage{Dir: filepath.Join(t.TempDir(), "absent")}).XP(); got != 0 {
		t.Errorf("XP = %d, want 0", got)
	}
}

type failingStorage struct{}

func (failingStorage) Get(string) (string, bool, error) { return "", false, errors.New("disk on fire") }
func (failingStorage) Set(string, string) error         { return errors.New("disk on fire") }

func TestGainKeepsXPWhenSaveFails(t *testing.T) {
	s := Load(failingStorage{})
	res, err := s.Gain(150)
	if err == nil {
		t.Fatal("expected save error")
	}
	if res.XP != 150 || s.XP() != 150 || res.Level != 2 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestFileStorageWritesNamespacedKey(t *testing.T) {
	dir := t.TempDir()
	s := Load(FileStorage{Dir: dir})
	if _, err := s.Gain(5); err != nil {
		t.Fatalf("Gain: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, Key+".json"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != `{"xp":5}` {
		t.Errorf("stored %q", data)
	}
}
