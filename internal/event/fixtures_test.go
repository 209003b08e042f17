package event

import "fmt"

// monthBoundaryEvents spans two months and a week that crosses July/August.
func monthBoundaryEvents() []Event {
	dates := []string{
		"2024-11-01", "2024-11-01", "2024-07-01", "2024-07-08",
		"2024-07-15", "2024-07-31", "2024-07-30", "2024-08-01",
	}
	events := make([]Event, 0, len(dates))
	for i, d := range dates {
		start, end := "16:30", "17:30"
		if i == 0 {
			start, end = "14:30", "15:30"
		}
		events = append(events, Event{
			ID:               fmt.Sprint(i + 1),
			Title:            fmt.Sprintf("이벤트 %d", i+1),
			Date:             d,
			StartTime:        start,
			EndTime:          end,
			Description:      "Test Description",
			Location:         "Test Location",
			Category:         "Test Category",
			Repeat:           Repeat{Type: RepeatNone, Interval: 1},
			NotificationTime: 10,
		})
	}
	return events
}

// autumnEvents straddles the October/November 2024 boundary.
func autumnEvents() []Event {
	none := Repeat{Type: RepeatNone, Interval: 0}
	return []Event{
		{ID: "12eqdw", Title: "팀 회의", Date: "2024-10-31", StartTime: "10:00", EndTime: "11:00", Description: "주간 팀 미팅", Location: "회의실 A", Category: "업무", Repeat: none, NotificationTime: 1},
		{ID: "erfg", Title: "점심 약속", Date: "2024-11-01", StartTime: "12:30", EndTime: "13:30", Description: "동료와 점심 식사", Location: "회사 근처 식당", Category: "개인", Repeat: none, NotificationTime: 1},
		{ID: "yhb", Title: "팀 회의", Date: "2024-11-05", StartTime: "09:00", EndTime: "18:00", Description: "주간 팀 미팅", Location: "사무실", Category: "업무", Repeat: none, NotificationTime: 1},
		{ID: "a", Title: "생일 파티", Date: "2024-11-08", StartTime: "19:00", EndTime: "22:00", Description: "친구 생일 축하", Location: "친구 집", Category: "개인", Repeat: none, NotificationTime: 1},
		{ID: "b", Title: "팀 회의", Date: "2024-11-29", StartTime: "18:00", EndTime: "19:00", Description: "주간 팀 미팅", Location: "헬스장", Category: "개인", Repeat: none, NotificationTime: 1},
	}
}

func ids(events []Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}
