package dto

type ApplyRequest struct {
	ProjectID   string `json:"project_id" validate:"required,uuid"`
	CoverLetter string `json:"cover_letter" validate:"max=5000"`
}

type UpdateStatusRequest struct {
	Status   string `json:"status" validate:"required"`
	Feedback string `json:"feedback" validate:"max=5000"`
}

type UpdateSkillRequest struct {
	Level *int `json:"level" validate:"required"`
}

type PromptRequest struct {
	Action string `json:"action" validate:"required,max=200"`
}
