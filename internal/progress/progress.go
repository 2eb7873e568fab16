// Package progress tracks experience points, levels and cosmetic unlocks.
package progress

import (
	"encoding/json"
	"fmt"
	"image/color"
	"log"
	"math"
)

// Key is the storage key of the progression record.
const Key = "pongdrift_progress_v1"

// XPPerLevel is the experience needed for each level.
const XPPerLevel = 140

// MaxXP caps a stored total so it always fits an int.
const MaxXP = math.MaxInt32

// Cosmetic is a paddle/trail colour scheme unlocked at a level.
type Cosmetic struct {
	Name        string
	UnlockLevel int
	PlayerColor color.NRGBA
	AIColor     color.NRGBA
	TrailColor  color.NRGBA
}

// Cosmetics are ordered by unlock level.
var Cosmetics = []Cosmetic{
	{
		Name:        "Nebula Classic",
		UnlockLevel: 1,
		PlayerColor: color.NRGBA{240, 246, 255, 242},
		AIColor:     color.NRGBA{158, 214, 255, 242},
		TrailColor:  color.NRGBA{125, 214, 255, 255},
	},
	{
		Name:        "Solar Flare",
		UnlockLevel: 3,
		PlayerColor: color.NRGBA{255, 229, 170, 242},
		AIColor:     color.NRGBA{255, 163, 102, 242},
		TrailColor:  color.NRGBA{255, 179, 116, 255},
	},
	{
		Name:        "Emerald Rush",
		UnlockLevel: 5,
		PlayerColor: color.NRGBA{199, 255, 228, 242},
		AIColor:     color.NRGBA{85, 225, 186, 242},
		TrailColor:  color.NRGBA{103, 240, 186, 255},
	},
}

// LevelForXP derives the level from an XP total.
func LevelForXP(xp int) int {
	return 1 + xp/XPPerLevel
}

// CosmeticForLevel returns the highest cosmetic unlocked at level.
func CosmeticForLevel(level int) Cosmetic {
	selected := Cosmetics[0]
	for _, c := range Cosmetics {
		if level >= c.UnlockLevel {
			selected = c
		}
	}
	return selected
}

// Unlocked returns the names of cosmetics whose unlock level is in (before, after].
func Unlocked(before, after int) []string {
	var names []string
	for _, c := range Cosmetics {
		if c.UnlockLevel > before && c.UnlockLevel <= after {
			names = append(names, c.Name)
		}
	}
	return names
}

// record is the persisted form.
type record struct {
	XP int `json:"xp"`
}

// Result describes the outcome of an XP award.
type Result struct {
	XP       int
	Level    int
	Unlocked []string
}

// Store holds the player's progression and writes it through to Storage.
type Store struct {
	storage Storage
	xp      int
}

// Load reads progression from storage. Missing, malformed or non-numeric
// data yields zero XP; it never fails.
func Load(storage Storage) *Store {
	s := &Store{storage: storage}
	raw, ok, err := storage.Get(Key)
	if err != nil {
		log.Printf("progress: load failed, starting from 0 XP: %v", err)
		return s
	}
	if !ok {
		return s
	}
	xp, err := decode(raw)
	if err != nil {
		log.Printf("progress: ignoring malformed record: %v", err)
		return s
	}
	s.xp = xp
	return s
}

func decode(raw string) (int, error) {
	var parsed struct {
		XP *float64 `json:"xp"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return 0, err
	}
	if parsed.XP == nil || math.IsNaN(*parsed.XP) || math.IsInf(*parsed.XP, 0) {
		return 0, fmt.Errorf("xp missing or not a number")
	}
	return int(math.Min(math.Max(0, math.Floor(*parsed.XP)), MaxXP)), nil
}

// XP returns the experience total.
func (s *Store) XP() int { return s.xp }

// Level returns the current level.
func (s *Store) Level() int { return LevelForXP(s.xp) }

// Cosmetic returns the active cosmetic for the current level.
func (s *Store) Cosmetic() Cosmetic { return CosmeticForLevel(s.Level()) }

// Save writes the current XP to storage.
func (s *Store) Save() error {
	data, err := json.Marshal(record{XP: s.xp})
	if err != nil {
		return fmt.Errorf("encode progression: %w", err)
	}
	if err := s.storage.Set(Key, string(data)); err != nil {
		return fmt.Errorf("save progression: %w", err)
	}
	return nil
}

// Gain adds amount XP, persists it and reports newly unlocked cosmetics.
// The in-memory total advances even when saving fails; the error is returned
// alongside a complete Result.
func (s *Store) Gain(amount int) (Result, error) {
	if amount < 0 {
		amount = 0
	}
	before := s.Level()
	s.xp = min(s.xp+amount, MaxXP)
	err := s.Save()
	after := s.Level()
	return Result{XP: s.xp, Level: after, Unlocked: Unlocked(before, after)}, err
}
