// Package srs は単語の復習間隔を計算します。
// 固定倍率方式 (easy=2.5, medium=1.5, hard=1.0) で、SM-2 ではありません。
package srs

import (
	"math"
	"time"

	"go_4_vocab_progress/internal/model"
)

var multipliers = map[model.Rating]float64{
	model.RatingEasy:   2.5,
	model.RatingMedium: 1.5,
	model.RatingHard:   1.0,
}

// ComputeNextInterval は更新後の復習回数と評価から次回までの日数を返します。
// 結果は常に1以上。
func ComputeNextInterval(updatedReviewCount int, rating model.Rating) (int, error) {
	m, ok := multipliers[rating]
	if !ok {
		return 0, model.ErrInvalidRating
	}
	days := int(math.Round(float64(updatedReviewCount) * m))
	if days < 1 {
		days = 1
	}
	return days, nil
}

// IsDue は単語が復習対象かどうかを返します (NextReviewAt が未設定、または now 以前)
func IsDue(word *model.Word, now time.Time) bool {
	return word.NextReviewAt == nil || !word.NextReviewAt.After(now)
}

// ApplyReview は評価結果を単語に反映します。
// easy のときだけ正解数を増やす (medium は正解扱いにしない)。
func ApplyReview(word model.Word, rating model.Rating, now time.Time) (model.Word, error) {
	if !rating.Valid() {
		return word, model.ErrInvalidRating
	}

	word.ReviewCount++
	if rating == model.RatingEasy {
		word.CorrectCount++
	}

	days, err := ComputeNextInterval(word.ReviewCount, rating)
	if err != nil {
		return word, err
	}

	reviewedAt := now
	next := now.AddDate(0, 0, days)
	word.LastReviewedAt = &reviewedAt
	word.NextReviewAt = &next
	return word, nil
}
