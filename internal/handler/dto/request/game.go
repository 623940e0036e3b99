package request

type PickNumberRequest struct {
	Number int `json:"number" binding:"required,min=1,max=6"`
}

type RollRequest struct {
	Rolled int `json:"rolled" binding:"required,min=1,max=6"`
}
