package models

// CreateUserRequest is the body of POST /user.
type CreateUserRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

// UpdateUserRequest is the body of PUT /user. The whole record is replaced.
type UpdateUserRequest struct {
	ID          string   `json:"id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required"`
	TotalTokens *int64   `json:"totalTokens" binding:"required,min=0"`
	Plan        string   `json:"plan" binding:"required"`
	Chats       []string `json:"chats"`
}

// ChargeRequest is the body of POST /user/:id/charge.
type ChargeRequest struct {
	Count int64 `json:"count" binding:"required,gt=0"`
}

// CreateChatRequest is the body of POST /chat.
type CreateChatRequest struct {
	OwnerID string      `json:"ownerId" binding:"required"`
	Name    string      `json:"name" binding:"required"`
	Variant ChatVariant `json:"variant"`
	SheetID string      `json:"sheetId"`
}

// AddMessageRequest is the body of POST /chat/:id/messages. A non-empty
// ImageURL makes it a vision message.
type AddMessageRequest struct {
	Content  string `json:"content"`
	Role     Role   `json:"role"`
	ImageURL string `json:"image_url"`
}

// CreateSubscriptionRequest is the body of POST /subscription.
type CreateSubscriptionRequest struct {
	OwnerID string `json:"ownerId" binding:"required"`
	Type    string `json:"type" binding:"required"`
}
