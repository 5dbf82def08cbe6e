// Package menu holds the fixed weekly nutrition menu and picks today's entry.
package menu

import (
	"fmt"
	"strings"
	"time"
)

// Meals is one day's menu. Each description carries a calorie estimate.
type Meals struct {
	Morning string
	Midday  string
	Evening string
}

// Entry is the menu for a named weekday.
type Entry struct {
	Weekday string
	Meals
}

// Weekdays maps time.Weekday (0=Sunday) to its Indonesian name.
var Weekdays = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var table = map[string]Meals{
	"Senin": {
		Morning: "Oatmeal + kiwi & chia (≈310 kcal)",
		Midday:  "Ayam kukus + sayur rebus (≈420 kcal)",
		Evening: "Sup tomat + tofu goreng (≈350 kcal)",
	},
	"Selasa": {
		Morning: "Roti gandum + selai kacang (≈360 kcal)",
		Midday:  "Nasi merah + ayam teriyaki (≈500 kcal)",
		Evening: "Tumis brokoli + telur orak-arik (≈330 kcal)",
	},
	"Rabu": {
		Morning: "Smoothie mangga + granola (≈300 kcal)",
		Midday:  "Bakwan jagung + lalapan (≈450 kcal)",
		Evening: "Spaghetti gandum + saus sayur (≈480 kcal)",
	},
	"Kamis": {
		Morning: "Telur rebus + pisang (≈280 kcal)",
		Midday:  "Soto ayam bening + nasi merah (≈430 kcal)",
		Evening: "Salmon bakar + salad timun (≈460 kcal)",
	},
	"Jumat": {
		Morning: "Chia pudding + alpukat (≈320 kcal)",
		Midday:  "Gado-gado + lontong (≈520 kcal)",
		Evening: "Sup jamur + telur dadar (≈340 kcal)",
	},
	"Sabtu": {
		Morning: "Greek yogurt + granola (≈310 kcal)",
		Midday:  "Capcay ayam + tahu (≈440 kcal)",
		Evening: "Kari kentang + tempe panggang (≈480 kcal)",
	},
	"Minggu": {
		Morning: "French toast gandum + madu (≈370 kcal)",
		Midday:  "Pepes ikan + sayur asem (≈460 kcal)",
		Evening: "Nasi uduk + tahu bacem (≈500 kcal)",
	},
}

// Select returns the entry for t's local weekday.
func Select(t time.Time) Entry {
	name := Weekdays[t.Weekday()]
	return Entry{Weekday: name, Meals: table[name]}
}

// Lookup returns the entry for a weekday name, case-insensitively.
func Lookup(name string) (Entry, error) {
	for _, wd := range Weekdays {
		if strings.EqualFold(wd, strings.TrimSpace(name)) {
			return Entry{Weekday: wd, Meals: table[wd]}, nil
		}
	}
	return Entry{}, fmt.Errorf("unknown weekday: %s", name)
}

// Week returns all seven entries, Sunday first.
func Week() []Entry {
	out := make([]Entry, 0, len(Weekdays))
	for _, wd := range Weekdays {
		out = append(out, Entry{Weekday: wd, Meals: table[wd]})
	}
	return out
}

// Selector picks today's entry from an injectable clock.
type Selector struct {
	Now func() time.Time
}

// Today returns the entry for the selector's current local weekday.
func (s Selector) Today() Entry {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return Select(now())
}
