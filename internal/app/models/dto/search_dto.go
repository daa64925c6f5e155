package dto

// SearchUsersResponse carries user search hits
type SearchUsersResponse struct {
	Query   string                    `json:"query" example:"jo"`
	Results []*ProfileSummaryResponse `json:"results"`
}

// SearchCommunitiesResponse carries community search hits
type SearchCommunitiesResponse struct {
	Query   string               `json:"query" example:"cedo"`
	Results []*CommunityResponse `json:"results"`
}
