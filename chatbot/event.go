package chatbot

import "elevate-bot/web/types"

var detailedSchedule = []types.ScheduleItem{
	{
		ID:          "e1",
		Title:       "Startup Conclave: The Beginning",
		Time:        "09:00 AM - 11:30 AM",
		Date:        "Feb 24, 2026",
		Venue:       "Main Auditorium",
		Description: "Inauguration and keynote speech by Ashish Kanaujia about the future of tech startups.",
		Category:    "Guest Lecture",
	},
	{
		ID:          "e2",
		Title:       "Innovation Workshop",
		Time:        "12:00 PM - 02:00 PM",
		Date:        "Feb 24, 2026",
		Venue:       "Innovation Hub",
		Description: "Hands-on session on prototyping and lean startup methodology.",
		Category:    "Workshop",
	},
	{
		ID:          "e3",
		Title:       "Networking Lunch",
		Time:        "02:00 PM - 03:30 PM",
		Date:        "Feb 24, 2026",
		Venue:       "Startup Showcase Arena",
		Description: "Connect with fellow innovators and mentors over lunch.",
		Category:    "Networking",
	},
	{
		ID:          "e4",
		Title:       "Venture Capital Insights",
		Time:        "10:00 AM - 12:00 PM",
		Date:        "Feb 25, 2026",
		Venue:       "Main Auditorium",
		Description: "Neha Malhotra shares secrets on how to pitch and secure venture capital.",
		Category:    "Guest Lecture",
	},
	{
		ID:          "e5",
		Title:       "Innovation Showcase (Finals)",
		Time:        "01:00 PM - 04:00 PM",
		Date:        "Feb 25, 2026",
		Venue:       "Startup Showcase Arena",
		Description: "Top startup ideas compete for glory and recognition.",
		Category:    "Competition",
	},
}

// EventInfo returns the static event projection served by the events endpoint.
func EventInfo() types.EventInfo {
	return types.EventInfo{
		Name:    "ELEVATE'26 - Startup Conclave",
		Summary: "A two-day event bringing together innovators and entrepreneurs.",
		Events:  detailedSchedule,
	}
}

// Venues returns the static venue dataset.
func Venues() []types.Venue {
	return []types.Venue{
		{Name: "Main Auditorium", Purpose: "Keynote speeches and guest lectures"},
		{Name: "Innovation Hub", Purpose: "Workshops and interactive sessions"},
		{Name: "Startup Showcase Arena", Purpose: "Innovation Showcase Competition"},
	}
}
