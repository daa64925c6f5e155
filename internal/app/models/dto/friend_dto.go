package dto

// FriendRequestAction identifies the target of a friend-request operation
type FriendRequestAction struct {
	UserID string `json:"userId" binding:"required" example:"2"`
}

// FriendListResponse carries the resolved friend profiles of a user
type FriendListResponse struct {
	Friends []*ProfileSummaryResponse `json:"friends"`
}

// FriendRequestListResponse carries resolved request profiles
type FriendRequestListResponse struct {
	Requests []*ProfileSummaryResponse `json:"requests"`
}
