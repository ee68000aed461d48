package domain

import (
	"fmt"
	"time"
)

// DateLayout - формат календарной даты анализа
const DateLayout = "2006-01-02"

// Analysis - запись анализа, созданная пользователем для выбранного региона
type Analysis struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Region string `json:"region"`
}

// NewAnalysis создает анализ на календарную дату момента t
func NewAnalysis(id string, t time.Time, regionID string) Analysis {
	return Analysis{
		ID:     id,
		Date:   t.Format(DateLayout),
		Region: regionID,
	}
}

// Label - подпись кнопки анализа на карте
func (a Analysis) Label() string {
	return fmt.Sprintf("Analysis %s (%s)", a.ID, a.Date)
}

// SeedAnalyses - начальный список анализов новой сессии
func SeedAnalyses() []Analysis {
	return []Analysis{
		{ID: "1", Date: "2024-02-15", Region: "coonoor"},
	}
}
