package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SubmitMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

type ContactMessageResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

type InboxResponse struct {
	Items []ContactMessageResponse `json:"items"`
}

type AskRequest struct {
	Query string `json:"query"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

type SuggestedQuestionResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type SuggestedQuestionsResponse struct {
	Items []SuggestedQuestionResponse `json:"items"`
}
