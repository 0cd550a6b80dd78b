package service

import "time"

const (
	firstCalendarYear = 2021
	lastCalendarYear  = 2040
)

// Month is a month option for report pickers.
type Month struct {
	Value int    `json:"value"`
	Name  string `json:"name"`
}

// CalendarService serves the static month and year lists used by report filters
type CalendarService struct{}

func NewCalendarService() *CalendarService {
	return &CalendarService{}
}

func (s *CalendarService) Months() []Month {
	months := make([]Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, Month{Value: int(m), Name: m.String()})
	}
	return months
}

func (s *CalendarService) Years() []int {
	years := make([]int, 0, lastCalendarYear-firstCalendarYear+1)
	for y := firstCalendarYear; y <= lastCalendarYear; y++ {
		years = append(years, y)
	}
	return years
}
