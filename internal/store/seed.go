package store

import "github.com/codementor/codementor-api/internal/models"

// InitialCode is the starter buffer shown when a war room opens
const InitialCode = `function twoSum(nums, target) {
  // Find two numbers that add up to target
  // Return their indices
}`

// SeedMentors is the demo mentor catalog. Mentors are not persisted in the
// store: the catalog is static and served through the in-memory cache.
func SeedMentors() []models.Mentor {
	return []models.Mentor{
		{ID: "m1", Name: "Sarah Chen", Title: "Staff Engineer", Company: "Stripe", Skills: []string{"React", "TypeScript", "System Design"}, HourlyRate: 85, Rating: 4.9, Reviews: 127, IsOnline: true},
		{ID: "m2", Name: "James Rodriguez", Title: "ML Engineer", Company: "Spotify", Skills: []string{"Python", "Machine Learning", "Data Engineering"}, HourlyRate: 95, Rating: 4.8, Reviews: 89, IsOnline: true},
		{ID: "m3", Name: "Aisha Patel", Title: "Principal Developer", Company: "Microsoft", Skills: []string{"C#", ".NET", "Azure"}, HourlyRate: 80, Rating: 4.7, Reviews: 203, IsOnline: false},
		{ID: "m4", Name: "Tom Becker", Title: "Backend Lead", Company: "Shopify", Skills: []string{"JavaScript", "Node.js", "GraphQL"}, HourlyRate: 70, Rating: 4.6, Reviews: 64, IsOnline: true},
		{ID: "m5", Name: "Elena Volkov", Title: "Competitive Programming Coach", Skills: []string{"Algorithms", "Competitive Programming", "Python"}, HourlyRate: 110, Rating: 5.0, Reviews: 41, IsOnline: true},
	}
}

// SeedSessions returns the demo session history: upcoming sessions plus
// completed past ones.
func SeedSessions() []models.Session {
	return []models.Session{
		{ID: "s1", MentorID: "m1", MentorName: "Sarah Chen", Topic: "React performance deep dive", Date: "Tomorrow, 3:00 PM", Status: models.SessionStatusUpcoming},
		{ID: "s2", MentorID: "m5", MentorName: "Elena Volkov", Topic: "Dynamic programming patterns", Date: "Friday, 10:00 AM", Status: models.SessionStatusUpcoming},
		{ID: "s3", MentorID: "m2", MentorName: "James Rodriguez", Topic: "Intro to pandas", Date: "Aug 20, 2:00 PM", Status: models.SessionStatusCompleted, Rating: 5, Earnings: 95},
		{ID: "s4", MentorID: "m4", MentorName: "Tom Becker", Topic: "Debugging async code", Date: "Aug 12, 9:00 AM", Status: models.SessionStatusCompleted, Rating: 4, Earnings: 70},
	}
}

// SeedRequests returns the demo review queue for mentors
func SeedRequests() []models.SessionRequest {
	return []models.SessionRequest{
		{ID: "r1", RequesterName: "Alex Johnson", Topic: "Binary trees", ProposedDate: "Mon, Sep 1", Message: "I keep getting lost in recursive traversals, could use a walkthrough.", Status: models.RequestStatusPending},
		{ID: "r2", RequesterName: "Maria Garcia", Topic: "REST API design", ProposedDate: "Tue, Sep 2", Message: "Want a review of my endpoint naming and error handling.", Status: models.RequestStatusPending},
		{ID: "r3", RequesterName: "David Kim", Topic: "SQL joins", ProposedDate: "Thu, Aug 28", Status: models.RequestStatusAccepted},
	}
}

// SeedProblems returns the demo practice problem set
func SeedProblems() []models.Problem {
	return []models.Problem{
		{ID: "p1", Title: "Two Sum", Difficulty: models.DifficultyEasy, Tags: []string{"arrays", "hash-map"}, Description: "Given an array of integers and a target, return indices of the two numbers that add up to the target.", AcceptanceRate: 48.5, StarterCode: InitialCode},
		{ID: "p2", Title: "Valid Parentheses", Difficulty: models.DifficultyEasy, Tags: []string{"stack", "strings"}, Description: "Given a string containing brackets, determine if the input string is valid.", AcceptanceRate: 40.1},
		{ID: "p3", Title: "Longest Substring Without Repeating Characters", Difficulty: models.DifficultyMedium, Tags: []string{"sliding-window", "strings"}, Description: "Find the length of the longest substring without repeating characters.", AcceptanceRate: 33.8},
		{ID: "p4", Title: "Merge K Sorted Lists", Difficulty: models.DifficultyHard, Tags: []string{"linked-list", "heap"}, Description: "Merge k sorted linked lists into one sorted list.", AcceptanceRate: 49.2},
	}
}

// SeedTimeSlots returns the demo mentor availability grid
func SeedTimeSlots() []models.TimeSlot {
	return []models.TimeSlot{
		{ID: "t1", Day: "Monday", Time: "10:00", Booked: false},
		{ID: "t2", Day: "Monday", Time: "14:00", Booked: true},
		{ID: "t3", Day: "Wednesday", Time: "09:00", Booked: false},
		{ID: "t4", Day: "Wednesday", Time: "16:00", Booked: false},
		{ID: "t5", Day: "Friday", Time: "11:00", Booked: true},
	}
}

// SeedBadges returns the demo achievement list
func SeedBadges() []models.Badge {
	return []models.Badge{
		{ID: "b1", Name: "First Steps", Description: "Complete your first session", Icon: "footprints", Earned: true},
		{ID: "b2", Name: "Problem Solver", Description: "Solve 10 practice problems", Icon: "puzzle", Earned: true},
		{ID: "b3", Name: "Streak Week", Description: "Practice 7 days in a row", Icon: "flame", Earned: false},
		{ID: "b4", Name: "Polyglot", Description: "Solve problems in 3 languages", Icon: "globe", Earned: false},
	}
}

// SeedRanking returns the demo leaderboard. The caller marks the row
// belonging to the current user.
func SeedRanking() []models.RankingEntry {
	return []models.RankingEntry{
		{Rank: 1, Name: "Elena Volkov", Points: 4820},
		{Rank: 2, Name: "Maria Garcia", Points: 3975},
		{Rank: 3, Name: "David Kim", Points: 3410},
		{Rank: 4, Name: "Alex Johnson", Points: 2890},
		{Rank: 5, Name: "Tom Becker", Points: 2150},
	}
}

// SeedReportMetrics returns the demo figures on the admin reports page
func SeedReportMetrics() []models.ReportMetric {
	return []models.ReportMetric{
		{Label: "Active mentees", Value: "1,248", Change: "+12%"},
		{Label: "Sessions this month", Value: "342", Change: "+8%"},
		{Label: "Average rating", Value: "4.7", Change: "+0.2"},
		{Label: "Pending requests", Value: "27", Change: "-15%"},
	}
}
