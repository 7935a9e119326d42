package admin

import (
	"github.com/storelaunch/launchlist/internal/models"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=255"`
}

type AdminUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Token     string            `json:"token"`
	ExpiresAt string            `json:"expires_at"`
	User      AdminUserResponse `json:"user"`
}

type StatsResponse struct {
	TotalEntries     int64 `json:"total_entries"`
	PendingEntries   int64 `json:"pending_entries"`
	CompletedEntries int64 `json:"completed_entries"`
	VerifiedEntries  int64 `json:"verified_entries"`
	PendingEmails    int64 `json:"pending_emails"`
}

func ToAdminUserResponse(user *models.AdminUser) AdminUserResponse {
	if user == nil {
		return AdminUserResponse{}
	}
	return AdminUserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}
}
