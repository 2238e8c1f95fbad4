package gamification_test

import (
	"testing"
	"time"

	"go_4_vocab_progress/internal/gamification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestApplyStreak(t *testing.T) {
	today := day(2026, 6, 15)
	yesterday := day(2026, 6, 14)
	lastWeek := day(2026, 6, 8)
	tomorrow := day(2026, 6, 16)
	nextYear := day(2027, 6, 15)

	tests := []struct {
		name        string
		state       gamification.StreakState
		wantPhase   gamification.StreakPhase
		wantStreak  int
		wantLongest int
		wantChanged bool
		wantNewBest bool
	}{
		{
			name:        "初回練習: streak=1",
			state:       gamification.StreakState{},
			wantPhase:   gamification.NoPriorPractice,
			wantStreak:  1,
			wantLongest: 1,
			wantChanged: true,
			wantNewBest: true,
		},
		{
			name:        "昨日練習済み: streak+1 (最長は更新しない)",
			state:       gamification.StreakState{Streak: 3, LongestStreak: 5, LastPracticeDate: &yesterday},
			wantPhase:   gamification.PracticedYesterday,
			wantStreak:  4,
			wantLongest: 5,
			wantChanged: true,
			wantNewBest: false,
		},
		{
			name:        "昨日練習済み: 最長を更新",
			state:       gamification.StreakState{Streak: 5, LongestStreak: 5, LastPracticeDate: &yesterday},
			wantPhase:   gamification.PracticedYesterday,
			wantStreak:  6,
			wantLongest: 6,
			wantChanged: true,
			wantNewBest: true,
		},
		{
			name:        "今日練習済み: 変化なし",
			state:       gamification.StreakState{Streak: 2, LongestStreak: 7, LastPracticeDate: &today},
			wantPhase:   gamification.PracticedToday,
			wantStreak:  2,
			wantLongest: 7,
			wantChanged: false,
			wantNewBest: false,
		},
		{
			name:        "途切れた: streak=1",
			state:       gamification.StreakState{Streak: 9, LongestStreak: 9, LastPracticeDate: &lastWeek},
			wantPhase:   gamification.StreakBroken,
			wantStreak:  1,
			wantLongest: 9,
			wantChanged: true,
			wantNewBest: false,
		},
		{
			name:        "異常系: 最終練習日が明日 (時計の巻き戻り) は途切れた扱い",
			state:       gamification.StreakState{Streak: 4, LongestStreak: 6, LastPracticeDate: &tomorrow},
			wantPhase:   gamification.StreakBroken,
			wantStreak:  1,
			wantLongest: 6,
			wantChanged: true,
			wantNewBest: false,
		},
		{
			name:        "異常系: 最終練習日が1年後も途切れた扱い",
			state:       gamification.StreakState{Streak: 2, LongestStreak: 2, LastPracticeDate: &nextYear},
			wantPhase:   gamification.StreakBroken,
			wantStreak:  1,
			wantLongest: 2,
			wantChanged: true,
			wantNewBest: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, tr := gamification.ApplyStreak(tt.state, today)

			assert.Equal(t, tt.wantPhase, tr.Phase)
			assert.Equal(t, tt.wantStreak, got.Streak)
			assert.Equal(t, tt.wantLongest, got.LongestStreak)
			assert.Equal(t, tt.wantChanged, tr.Changed)
			assert.Equal(t, tt.wantNewBest, tr.LongestIncreased)
			require.NotNil(t, got.LastPracticeDate)
			assert.True(t, got.LastPracticeDate.Equal(today))
			assert.LessOrEqual(t, got.Streak, got.LongestStreak)
		})
	}
}

func TestApplyStreak_IdempotentWithinDay(t *testing.T) {
	yesterday := day(2026, 6, 14)
	morning := time.Date(2026, 6, 15, 7, 30, 0, 0, time.UTC)
	evening := time.Date(2026, 6, 15, 22, 10, 0, 0, time.UTC)

	once, _ := gamification.ApplyStreak(gamification.StreakState{Streak: 3, LongestStreak: 3, LastPracticeDate: &yesterday}, morning)
	twice, tr := gamification.ApplyStreak(once, evening)

	assert.Equal(t, once.Streak, twice.Streak)
	assert.Equal(t, once.LongestStreak, twice.LongestStreak)
	assert.False(t, tr.Changed)
}

func TestApplyStreak_MonthBoundary(t *testing.T) {
	last := day(2026, 2, 28)
	got, tr := gamification.ApplyStreak(gamification.StreakState{Streak: 1, LongestStreak: 1, LastPracticeDate: &last}, day(2026, 3, 1))

	assert.Equal(t, gamification.PracticedYesterday, tr.Phase)
	assert.Equal(t, 2, got.Streak)
}

func TestToday_UsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	now := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC) // 東京では16日 5:00

	assert.True(t, gamification.Today(now, tokyo).Equal(day(2026, 6, 16)))
	assert.True(t, gamification.Today(now, time.UTC).Equal(day(2026, 6, 15)))
}

func TestDailyBonus(t *testing.T) {
	assert.Equal(t, 5, gamification.DailyBonus(1))
	assert.Equal(t, 35, gamification.DailyBonus(7))
	assert.Equal(t, 50, gamification.DailyBonus(10))
	assert.Equal(t, 50, gamification.DailyBonus(365))
	assert.Equal(t, 0, gamification.DailyBonus(0))
}
