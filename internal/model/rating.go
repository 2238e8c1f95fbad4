package model

import "strings"

// Rating は復習時の難易度評価
type Rating string

const (
	RatingEasy   Rating = "easy"
	RatingMedium Rating = "medium"
	RatingHard   Rating = "hard"
)

func (r Rating) Valid() bool {
	switch r {
	case RatingEasy, RatingMedium, RatingHard:
		return true
	}
	return false
}

// ParseRating は文字列を Rating に変換します (前後の空白・大文字小文字は無視)
func ParseRating(s string) (Rating, error) {
	r := Rating(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", ErrInvalidRating
	}
	return r, nil
}
