package srs_test

import (
	"testing"
	"time"

	"go_4_vocab_progress/internal/model"
	"go_4_vocab_progress/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNextInterval(t *testing.T) {
	tests := []struct {
		name        string
		reviewCount int
		rating      model.Rating
		want        int
	}{
		{name: "easy 1回目は round(2.5)=3", reviewCount: 1, rating: model.RatingEasy, want: 3},
		{name: "hard 2回目は 2", reviewCount: 2, rating: model.RatingHard, want: 2},
		{name: "medium 1回目は round(1.5)=2", reviewCount: 1, rating: model.RatingMedium, want: 2},
		{name: "medium 3回目は round(4.5)=5", reviewCount: 3, rating: model.RatingMedium, want: 5},
		{name: "easy 4回目は 10", reviewCount: 4, rating: model.RatingEasy, want: 10},
		{name: "hard 1回目は 1", reviewCount: 1, rating: model.RatingHard, want: 1},
		{name: "0回でも最小値 1", reviewCount: 0, rating: model.RatingEasy, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := srs.ComputeNextInterval(tt.reviewCount, tt.rating)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeNextInterval_InvalidRating(t *testing.T) {
	_, err := srs.ComputeNextInterval(1, model.Rating("perfect"))
	assert.ErrorIs(t, err, model.ErrInvalidRating)
}

func TestComputeNextInterval_DeterministicAndPositive(t *testing.T) {
	ratings := []model.Rating{model.RatingEasy, model.RatingMedium, model.RatingHard}
	for n := 1; n <= 200; n++ {
		for _, r := range ratings {
			first, err := srs.ComputeNextInterval(n, r)
			require.NoError(t, err)
			second, err := srs.ComputeNextInterval(n, r)
			require.NoError(t, err)
			assert.Equal(t, first, second)
			assert.GreaterOrEqual(t, first, 1)
		}
	}
}

func TestApplyReview_EasyFirstReview(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	word := model.Word{WordID: uuid.New(), Term: "apple"}

	updated, err := srs.ApplyReview(word, model.RatingEasy, now)

	require.NoError(t, err)
	assert.Equal(t, 1, updated.ReviewCount)
	assert.Equal(t, 1, updated.CorrectCount)
	require.NotNil(t, updated.LastReviewedAt)
	require.NotNil(t, updated.NextReviewAt)
	assert.Equal(t, now, *updated.LastReviewedAt)
	assert.Equal(t, now.AddDate(0, 0, 3), *updated.NextReviewAt)
	assert.Equal(t, 0, word.ReviewCount, "元の値は変更されない")
}

func TestApplyReview_HardSecondReview(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	word := model.Word{WordID: uuid.New(), ReviewCount: 1, CorrectCount: 1}

	updated, err := srs.ApplyReview(word, model.RatingHard, now)

	require.NoError(t, err)
	assert.Equal(t, 2, updated.ReviewCount)
	assert.Equal(t, 1, updated.CorrectCount, "hard は正解数を増やさない")
	assert.Equal(t, now.AddDate(0, 0, 2), *updated.NextReviewAt)
}

func TestApplyReview_MediumDoesNotCountAsCorrect(t *testing.T) {
	now := time.Now()
	updated, err := srs.ApplyReview(model.Word{}, model.RatingMedium, now)

	require.NoError(t, err)
	assert.Equal(t, 1, updated.ReviewCount)
	assert.Equal(t, 0, updated.CorrectCount)
}

func TestApplyReview_Invariants(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	word := model.Word{}
	ratings := []model.Rating{model.RatingHard, model.RatingEasy, model.RatingMedium, model.RatingEasy, model.RatingHard}

	for i, r := range ratings {
		var err error
		word, err = srs.ApplyReview(word, r, now.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
		assert.LessOrEqual(t, word.CorrectCount, word.ReviewCount)
		assert.False(t, word.NextReviewAt.Before(*word.LastReviewedAt))
	}
	assert.Equal(t, len(ratings), word.ReviewCount)
	assert.Equal(t, 2, word.CorrectCount)
}

func TestApplyReview_InvalidRating(t *testing.T) {
	word := model.Word{ReviewCount: 4}
	updated, err := srs.ApplyReview(word, model.Rating(""), time.Now())

	assert.ErrorIs(t, err, model.ErrInvalidRating)
	assert.Equal(t, 4, updated.ReviewCount)
}

func TestIsDue(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.True(t, srs.IsDue(&model.Word{}, now), "未設定は今すぐ復習")
	assert.True(t, srs.IsDue(&model.Word{NextReviewAt: &past}, now))
	assert.True(t, srs.IsDue(&model.Word{NextReviewAt: &now}, now), "ちょうど now も対象")
	assert.False(t, srs.IsDue(&model.Word{NextReviewAt: &future}, now))
}

func TestParseRating(t *testing.T) {
	r, err := model.ParseRating("  Easy ")
	require.NoError(t, err)
	assert.Equal(t, model.RatingEasy, r)

	_, err = model.ParseRating("again")
	assert.ErrorIs(t, err, model.ErrInvalidRating)
}
