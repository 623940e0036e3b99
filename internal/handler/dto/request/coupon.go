package request

type GrantRewardsRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Count     int    `json:"count" binding:"required,gt=0"`
}
