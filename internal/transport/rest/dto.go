package rest

import (
	"time"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
)

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

type recordResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	DurationMinutes int       `json:"durationMinutes"`
	Memo            *string   `json:"memo"`
	Date            string    `json:"date"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toRecordResponse(rec *domain.Record) recordResponse {
	return recordResponse{
		ID:              rec.ID.String(),
		Title:           rec.Title,
		Category:        rec.Category,
		DurationMinutes: rec.DurationMinutes,
		Memo:            rec.Memo,
		Date:            rec.Date.Format(domain.DateLayout),
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}

type scoreResponse struct {
	TotalXP int64 `json:"totalXp"`
	Level   int64 `json:"level"`
	// XPToNextLevel is how much XP is missing until Level+1.
	XPToNextLevel int64 `json:"xpToNextLevel"`
}

func toScoreResponse(s *domain.Score) *scoreResponse {
	if s == nil {
		return nil
	}
	return &scoreResponse{
		TotalXP:       s.TotalXP,
		Level:         s.Level,
		XPToNextLevel: s.Level*domain.XPPerLevel - s.TotalXP,
	}
}

type leaderboardEntryResponse struct {
	Rank      int     `json:"rank"`
	UserID    string  `json:"userId"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
	TotalXP   int64   `json:"totalXp"`
	Level     int64   `json:"level"`
}

type dailyMinutesResponse struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

type statsResponse struct {
	TotalMinutes int                      `json:"totalMinutes"`
	TotalHours   int                      `json:"totalHours"`
	ActiveDays   int                      `json:"activeDays"`
	RecordCount  int                      `json:"recordCount"`
	ByCategory   []domain.CategoryMinutes `json:"byCategory"`
	Daily        []dailyMinutesResponse   `json:"daily"`
}

func toStatsResponse(s *domain.RecordStats) statsResponse {
	resp := statsResponse{
		TotalMinutes: s.TotalMinutes,
		TotalHours:   s.TotalHours,
		ActiveDays:   s.ActiveDays,
		RecordCount:  s.RecordCount,
		ByCategory:   s.ByCategory,
		Daily:        make([]dailyMinutesResponse, len(s.Daily)),
	}
	if resp.ByCategory == nil {
		resp.ByCategory = []domain.CategoryMinutes{}
	}
	for i, d := range s.Daily {
		resp.Daily[i] = dailyMinutesResponse{Date: d.Date.Format(domain.DateLayout), Minutes: d.Minutes}
	}
	return resp
}
