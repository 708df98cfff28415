package dto

// DateLayout renders timestamps as YYYY-MM-DD.
const DateLayout = "2006-01-02"

type UserResponse struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	IsActive  bool     `json:"isActive"`
	Roles     []string `json:"roles"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt *string  `json:"updatedAt"`
}

type RoleResponse struct {
	Name        string  `json:"name"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   *string `json:"updatedAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
