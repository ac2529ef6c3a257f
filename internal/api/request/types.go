package request

// RecordProgressRequest is the request body for logging progress
type RecordProgressRequest struct {
	PlayerID  int64  `json:"player_id"`
	FirstName string `json:"first_name,omitempty"`
	Username  string `json:"username,omitempty"`
	Alias     string `json:"alias"`
	Amount    int64  `json:"amount"`
}

// ResetExerciseRequest is the request body for resetting one exercise
type ResetExerciseRequest struct {
	FirstName string `json:"first_name,omitempty"`
	Username  string `json:"username,omitempty"`
	Alias     string `json:"alias"`
}
