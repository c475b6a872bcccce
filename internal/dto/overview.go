package dto

// AssignmentStatusCounts breaks down assignments by workflow status
type AssignmentStatusCounts struct {
	NotStarted int64 `json:"not_started"`
	InProgress int64 `json:"in_progress"`
	Done       int64 `json:"done"`
}

// OverviewDTO is the payload of the general overview endpoint
type OverviewDTO struct {
	UserCount    int64                  `json:"user_count"`
	PostCount    int64                  `json:"post_count"`
	MessageCount int64                  `json:"message_count"`
	Assignments  AssignmentStatusCounts `json:"assignments"`
	RecentPosts  []OperationPostDTO     `json:"recent_posts"`
}
