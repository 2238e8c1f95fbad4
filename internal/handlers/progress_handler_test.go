package handlers_test

import (
	"encoding/json"
	"math"
	"net/http"
	"testing"

	"go_4_vocab_progress/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProgressHandler_GetProgress(t *testing.T) {
	learnerID := uuid.New()
	server, svcs := newTestServer(t)
	date := "2024-03-01"
	svcs.progress.On("GetProgress", mock.Anything, learnerID).Return(&model.ProgressResponse{
		LearnerID:        learnerID,
		XP:               250,
		Level:            3,
		XPIntoLevel:      50,
		XPToNextLevel:    50,
		Streak:           4,
		LongestStreak:    4,
		LastPracticeDate: &date,
		Achievements:     []string{"level_2", "level_3"},
		LessonProgress:   map[string]model.LessonProgress{},
	}, nil).Once()

	body := sendRequest(t, server, httpRequestDetails{
		Method:  http.MethodGet,
		Path:    "/api/v1/progress",
		Headers: learnerHeader(learnerID),
	}, http.StatusOK)

	var resp model.ProgressResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, 3, resp.Level)
	assert.Equal(t, []string{"level_2", "level_3"}, resp.Achievements)
	assert.Contains(t, string(body), `"last_practice_date":"2024-03-01"`)
}

func TestProgressHandler_ClaimDailyBonus(t *testing.T) {
	learnerID := uuid.New()

	t.Run("正常系: ボーナス付与", func(t *testing.T) {
		server, svcs := newTestServer(t)
		svcs.progress.On("ClaimDailyBonus", mock.Anything, learnerID).Return(&model.DailyBonusResponse{
			Granted:  true,
			Amount:   15,
			Streak:   2,
			NewXP:    15,
			NewLevel: 1,
		}, nil).Once()

		body := sendRequest(t, server, httpRequestDetails{
			Method:  http.MethodPost,
			Path:    "/api/v1/progress/daily-bonus",
			Headers: learnerHeader(learnerID),
		}, http.StatusOK)
		assert.Contains(t, string(body), `"amount":15`)
		assert.Contains(t, string(body), `"unlocked":[]`)
	})

	t.Run("異常系: 同じ日の2回目は409", func(t *testing.T) {
		server, svcs := newTestServer(t)
		err := model.NewAppError("ALREADY_CLAIMED_TODAY", "本日のボーナスは受け取り済みです。", "", model.ErrAlreadyClaimedToday)
		svcs.progress.On("ClaimDailyBonus", mock.Anything, learnerID).Return(nil, err).Once()

		body := sendRequest(t, server, httpRequestDetails{
			Method:  http.MethodPost,
			Path:    "/api/v1/progress/daily-bonus",
			Headers: learnerHeader(learnerID),
		}, http.StatusConflict)
		assert.Equal(t, "ALREADY_CLAIMED_TODAY", decodeError(t, body).Code)
	})
}

func TestProgressHandler_RecordLessonResult(t *testing.T) {
	learnerID := uuid.New()
	path := "/api/v1/progress/lessons/lesson-1"

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMock      func(s testServices)
		expectedStatus int
		expectedField  string
	}{
		{
			name:    "正常系: 結果を記録",
			reqBody: map[string]int{"correct": 8, "total": 10, "xp": 30},
			setupMock: func(s testServices) {
				s.progress.On("RecordLessonResult", mock.Anything, learnerID, "lesson-1", 8, 10, 30).Return(&model.LessonResultResponse{
					LessonID: "lesson-1",
					Lesson:   model.LessonProgress{Completed: true, Attempts: 1, XPEarned: 30, Accuracy: 80},
					XPAward:  &model.XPAward{Amount: 30, NewXP: 30, PreviousLevel: 1, NewLevel: 1},
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "正常系: 正解数0も受け付ける",
			reqBody: map[string]int{"correct": 0, "total": 5},
			setupMock: func(s testServices) {
				s.progress.On("RecordLessonResult", mock.Anything, learnerID, "lesson-1", 0, 5, 0).Return(&model.LessonResultResponse{
					LessonID: "lesson-1",
					Lesson:   model.LessonProgress{Completed: true, Attempts: 1},
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: correct がない",
			reqBody:        map[string]int{"total": 5},
			setupMock:      func(s testServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "correct",
		},
		{
			name:           "異常系: total が0",
			reqBody:        map[string]int{"correct": 0, "total": 0},
			setupMock:      func(s testServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "total",
		},
		{
			name:           "異常系: xp が負",
			reqBody:        map[string]int{"correct": 1, "total": 2, "xp": -5},
			setupMock:      func(s testServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "xp",
		},
		{
			name:    "境界値: xp が上限ちょうど",
			reqBody: map[string]int{"correct": 1, "total": 2, "xp": 10000},
			setupMock: func(s testServices) {
				s.progress.On("RecordLessonResult", mock.Anything, learnerID, "lesson-1", 1, 2, 10000).Return(&model.LessonResultResponse{
					LessonID: "lesson-1",
					Lesson:   model.LessonProgress{Completed: true, Attempts: 1, XPEarned: 10000, Accuracy: 50},
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: xp が上限を超える",
			reqBody:        map[string]int{"correct": 1, "total": 2, "xp": 10001},
			setupMock:      func(s testServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "xp",
		},
		{
			name:           "異常系: xp が int の上限付近",
			reqBody:        map[string]int{"correct": 1, "total": 2, "xp": math.MaxInt - 50},
			setupMock:      func(s testServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "xp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, svcs := newTestServer(t)
			tt.setupMock(svcs)

			body := sendRequest(t, server, httpRequestDetails{
				Method:  http.MethodPost,
				Path:    path,
				Body:    tt.reqBody,
				Headers: learnerHeader(learnerID),
			}, tt.expectedStatus)

			if tt.expectedField != "" {
				detail := decodeError(t, body)
				assert.Equal(t, "VALIDATION_ERROR", detail.Code)
				assert.Equal(t, tt.expectedField, detail.Field)
				return
			}
			assert.Contains(t, string(body), `"lesson_id":"lesson-1"`)
		})
	}
}

func TestProgressHandler_ResetProgress(t *testing.T) {
	learnerID := uuid.New()
	server, svcs := newTestServer(t)
	svcs.progress.On("ResetProgress", mock.Anything, learnerID).Return(&model.ProgressResponse{
		LearnerID:      learnerID,
		Level:          1,
		XPToNextLevel:  100,
		Achievements:   []string{},
		LessonProgress: map[string]model.LessonProgress{},
	}, nil).Once()

	body := sendRequest(t, server, httpRequestDetails{
		Method:  http.MethodDelete,
		Path:    "/api/v1/progress",
		Headers: learnerHeader(learnerID),
	}, http.StatusOK)
	assert.Contains(t, string(body), `"xp":0`)
	assert.Contains(t, string(body), `"level":1`)
}
