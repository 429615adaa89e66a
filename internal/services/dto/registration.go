package dto

import "encoding/json"

// SubEventList accepts either a JSON array or a single comma-joined string,
// which is how the registration form submits it.
type SubEventList []string

func (s *SubEventList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*s = nil
	} else {
		*s = []string{single}
	}
	return nil
}

type RegisterRequest struct {
	Name      string       `json:"name" validate:"required,max=255"`
	Branch    string       `json:"branch" validate:"required,max=100"`
	Phone     string       `json:"phone" validate:"required,max=20"`
	EventType string       `json:"eventType" validate:"required,max=100"`
	SubEvents SubEventList `json:"subEvents"`
	Email     string       `json:"email" validate:"required,email"`
}

type ContactFormRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Contact string `json:"contact" validate:"omitempty,max=20"`
	Message string `json:"message" validate:"required,max=5000"`
}

type FeedbackRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
	Rating  int    `json:"rating" validate:"omitempty,min=1,max=5"`
}
