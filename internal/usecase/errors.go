package usecase

import "errors"

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrTokenRevoked        = errors.New("token revoked")
	ErrInvalidState        = errors.New("invalid oauth state")
	ErrOAuthDisabled       = errors.New("oauth login not configured")
	ErrInternal            = errors.New("internal error")
	ErrInvalidInput        = errors.New("invalid input")

	ErrRoleRequired  = errors.New("valid role is required")
	ErrInvalidRole   = errors.New("invalid role")
	ErrProfileExists = errors.New("profile already exists")

	ErrRecruiterOnly   = errors.New("only recruiters can create projects")
	ErrNotProjectOwner = errors.New("not authorized to update this project")

	ErrApplicantOnly     = errors.New("only applicants can apply to projects")
	ErrProfileIncomplete = errors.New("please complete your profile first")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrInvalidStatus     = errors.New("invalid application status")
	ErrInvalidSkillLevel = errors.New("skill level must be between 0 and 100")
	ErrInterviewDate     = errors.New("invalid interview date")

	ErrNoFile          = errors.New("no cv file uploaded")
	ErrUnsupportedFile = errors.New("unsupported cv file type")
	ErrCVProcessing    = errors.New("cv processing failed")
)
