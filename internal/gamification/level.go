// Package gamification は経験値・レベル・ストリークの純粋な計算をまとめたパッケージです。
// 永続化は service 層が行います。
package gamification

import (
	"math"
	"strconv"

	"go_4_vocab_progress/internal/model"
)

// LevelForXP は累計経験値からレベルを求めます。
// レベル L+1 に必要な累計は 100 + 200 + ... + L*100。
func LevelForXP(xp int) int {
	if xp < 100 {
		return 1
	}
	// 50*L*(L-1) <= xp の近似解から始めて前後を補正する
	level := int((1 + math.Sqrt(1+float64(xp)/12.5)) / 2)
	for level > 1 {
		if t, ok := levelThreshold(level); ok && t <= xp {
			break
		}
		level--
	}
	for {
		t, ok := levelThreshold(level + 1)
		if !ok || t > xp {
			return level
		}
		level++
	}
}

// XPForLevel はレベル到達に必要な累計経験値を返します (レベル1は0)。
// int に収まらない場合は math.MaxInt を返す。
func XPForLevel(level int) int {
	t, ok := levelThreshold(level)
	if !ok {
		return math.MaxInt
	}
	return t
}

// levelThreshold は 100*(L-1)*L/2 を計算し、桁あふれする場合は false を返します
func levelThreshold(level int) (int, bool) {
	if level <= 1 {
		return 0, true
	}
	if level-1 > math.MaxInt/level {
		return 0, false
	}
	// (L-1)*L は常に偶数
	half := (level - 1) * level / 2
	if half > math.MaxInt/100 {
		return 0, false
	}
	return 100 * half, true
}

// LevelProgress は現在レベル内の獲得量と、次のレベルまでの残りを返します。
// 到達可能な最大レベルでは toNext は math.MaxInt - xp になる。
func LevelProgress(xp int) (level, into, toNext int) {
	level = LevelForXP(xp)
	into = xp - XPForLevel(level)
	toNext = XPForLevel(level+1) - xp
	return level, into, toNext
}

// LevelAchievement はレベル到達実績のIDを返します (例: level_3)
func LevelAchievement(level int) string {
	return model.AchievementLevelPrefix + strconv.Itoa(level)
}

// LevelAchievements は prev から next までに超えた各レベルの実績IDを返します
func LevelAchievements(prev, next int) []string {
	if next <= prev {
		return nil
	}
	ids := make([]string, 0, next-prev)
	for l := prev + 1; l <= next; l++ {
		ids = append(ids, LevelAchievement(l))
	}
	return ids
}
