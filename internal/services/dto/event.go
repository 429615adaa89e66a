package dto

// AddEventRequest is the legacy admin-page form payload.
type AddEventRequest struct {
	EventName string `json:"eventName" validate:"required,max=255"`
	EventDate string `json:"eventDate" validate:"required,max=32"`
}

type CreateEventRequest struct {
	CategoryID  uint   `json:"category_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=255"`
	EventDate   string `json:"event_date" validate:"required,max=32"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

type NotifyCategoryRequest struct {
	CategoryID       uint   `json:"category_id" validate:"required"`
	EventName        string `json:"event_name" validate:"required,max=255"`
	EventDescription string `json:"event_description" validate:"omitempty,max=2000"`
	EventDate        string `json:"event_date" validate:"omitempty,max=32"`
}

type NotifyUsersRequest struct {
	Type         string `json:"type" validate:"required,oneof=event category general"`
	Title        string `json:"title" validate:"required,max=255"`
	Message      string `json:"message" validate:"required,max=2000"`
	EventName    string `json:"eventName" validate:"omitempty,max=255"`
	EventDate    string `json:"eventDate" validate:"omitempty,max=32"`
	CategoryName string `json:"categoryName" validate:"omitempty,max=100"`
}
