package gamification

import "time"

// 1日あたりのボーナスと上限
const (
	DailyBonusPerStreakDay = 5
	MaxDailyBonus          = 50
)

// StreakPhase は最終練習日と今日の関係
type StreakPhase string

const (
	NoPriorPractice    StreakPhase = "no_prior_practice"
	PracticedToday     StreakPhase = "practiced_today"
	PracticedYesterday StreakPhase = "practiced_yesterday"
	StreakBroken       StreakPhase = "streak_broken"
)

// StreakState はストリーク計算に必要な進捗の一部
type StreakState struct {
	Streak           int
	LongestStreak    int
	LastPracticeDate *time.Time // 日付のみ意味を持つ
}

// StreakTransition は ApplyStreak の結果
type StreakTransition struct {
	Phase            StreakPhase
	Changed          bool
	LongestIncreased bool
}

// DateOf は t の年月日だけを持つ UTC 0時の値を返します (t 自身のロケーションで日付を取る)
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today は loc における now の日付を返します
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return DateOf(now.In(loc))
}

// Classify は最終練習日から今日の状態を判定します
func Classify(last *time.Time, today time.Time) StreakPhase {
	if last == nil {
		return NoPriorPractice
	}
	lastDay := DateOf(*last)
	today = DateOf(today)
	switch {
	case lastDay.Equal(today):
		return PracticedToday
	case lastDay.Equal(today.AddDate(0, 0, -1)):
		return PracticedYesterday
	default:
		return StreakBroken
	}
}

// ApplyStreak は今日の練習をストリークに反映します。同じ日に何度呼んでも結果は同じ。
func ApplyStreak(state StreakState, today time.Time) (StreakState, StreakTransition) {
	today = DateOf(today)
	tr := StreakTransition{Phase: Classify(state.LastPracticeDate, today)}

	switch tr.Phase {
	case PracticedToday:
		return state, tr
	case PracticedYesterday:
		state.Streak++
	default:
		state.Streak = 1
	}
	tr.Changed = true

	if state.Streak > state.LongestStreak {
		state.LongestStreak = state.Streak
		tr.LongestIncreased = true
	}
	state.LastPracticeDate = &today
	return state, tr
}

// DailyBonus は min(streak*5, 50)
func DailyBonus(streak int) int {
	bonus := streak * DailyBonusPerStreakDay
	if bonus > MaxDailyBonus {
		return MaxDailyBonus
	}
	if bonus < 0 {
		return 0
	}
	return bonus
}
