package menu

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_EachWeekday(t *testing.T) {
	// 2024-06-02 is a Sunday.
	sunday := time.Date(2024, time.June, 2, 9, 0, 0, 0, time.Local)

	tests := []struct {
		offset  int
		weekday string
		morning string
		midday  string
		evening string
	}{
		{0, "Minggu", "French toast gandum + madu (≈370 kcal)", "Pepes ikan + sayur asem (≈460 kcal)", "Nasi uduk + tahu bacem (≈500 kcal)"},
		{1, "Senin", "Oatmeal + kiwi & chia (≈310 kcal)", "Ayam kukus + sayur rebus (≈420 kcal)", "Sup tomat + tofu goreng (≈350 kcal)"},
		{2, "Selasa", "Roti gandum + selai kacang (≈360 kcal)", "Nasi merah + ayam teriyaki (≈500 kcal)", "Tumis brokoli + telur orak-arik (≈330 kcal)"},
		{3, "Rabu", "Smoothie mangga + granola (≈300 kcal)", "Bakwan jagung + lalapan (≈450 kcal)", "Spaghetti gandum + saus sayur (≈480 kcal)"},
		{4, "Kamis", "Telur rebus + pisang (≈280 kcal)", "Soto ayam bening + nasi merah (≈430 kcal)", "Salmon bakar + salad timun (≈460 kcal)"},
		{5, "Jumat", "Chia pudding + alpukat (≈320 kcal)", "Gado-gado + lontong (≈520 kcal)", "Sup jamur + telur dadar (≈340 kcal)"},
		{6, "Sabtu", "Greek yogurt + granola (≈310 kcal)", "Capcay ayam + tahu (≈440 kcal)", "Kari kentang + tempe panggang (≈480 kcal)"},
	}

	for _, tc := range tests {
		t.Run(tc.weekday, func(t *testing.T) {
			day := sunday.AddDate(0, 0, tc.offset)
			sel := Selector{Now: func() time.Time { return day }}

			got := sel.Today()
			assert.Equal(t, tc.weekday, got.Weekday)
			assert.Equal(t, tc.morning, got.Morning)
			assert.Equal(t, tc.midday, got.Midday)
			assert.Equal(t, tc.evening, got.Evening)

			// Deterministic for the same date.
			assert.Equal(t, got, sel.Today())
		})
	}
}

func TestSelect_MondayIsOatmeal(t *testing.T) {
	monday := time.Date(2024, time.June, 3, 23, 59, 0, 0, time.Local)
	assert.Contains(t, Select(monday).Morning, "Oatmeal")
}

func TestLookup(t *testing.T) {
	e, err := Lookup(" kamis ")
	require.NoError(t, err)
	assert.Equal(t, "Kamis", e.Weekday)
	assert.Contains(t, e.Evening, "Salmon")

	_, err = Lookup("Monday")
	assert.EqualError(t, err, "unknown weekday: Monday")
}

func TestWeek(t *testing.T) {
	week := Week()
	require.Len(t, week, 7)
	assert.Equal(t, "Minggu", week[0].Weekday)
	assert.Equal(t, "Sabtu", week[6].Weekday)
	for _, e := range week {
		assert.NotEmpty(t, e.Morning)
		assert.NotEmpty(t, e.Midday)
		assert.NotEmpty(t, e.Evening)
	}
}

func TestSelector_DefaultClock(t *testing.T) {
	got := Selector{}.Today()
	assert.Contains(t, Weekdays[:], got.Weekday)
	assert.NotEmpty(t, got.Morning)
}

func TestWeek_AgreesWithLookupAndSelect(t *testing.T) {
	sunday := time.Date(2024, time.June, 2, 12, 0, 0, 0, time.Local)
	for i, e := range Week() {
		byName, err := Lookup(e.Weekday)
		require.NoError(t, err)
		if diff := cmp.Diff(e, byName); diff != "" {
			t.Errorf("Lookup(%s) mismatch (-week +lookup):\n%s", e.Weekday, diff)
		}
		if diff := cmp.Diff(e, Select(sunday.AddDate(0, 0, i))); diff != "" {
			t.Errorf("Select(day %d) mismatch (-week +select):\n%s", i, diff)
		}
	}
}
