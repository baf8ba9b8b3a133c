package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"rentloo/contexts/community-experience/support-service/application"
	"rentloo/contexts/community-experience/support-service/domain/entities"
	httptransport "rentloo/contexts/community-experience/support-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) SubmitMessageHandler(ctx context.Context, req httptransport.SubmitMessageRequest) (httptransport.ContactMessageResponse, error) {
	message, err := h.Service.SubmitMessage(ctx, application.SubmitMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		return httptransport.ContactMessageResponse{}, err
	}
	return mapMessage(message), nil
}

func (h Handler) ListMessagesHandler(ctx context.Context) (httptransport.InboxResponse, error) {
	messages, err := h.Service.ListMessages(ctx)
	if err != nil {
		return httptransport.InboxResponse{}, err
	}
	items := make([]httptransport.ContactMessageResponse, 0, len(messages))
	for _, message := range messages {
		items = append(items, mapMessage(message))
	}
	return httptransport.InboxResponse{Items: items}, nil
}

func (h Handler) MarkReadHandler(ctx context.Context, id string) error {
	return h.Service.MarkRead(ctx, id)
}

func (h Handler) DeleteMessageHandler(ctx context.Context, id string) error {
	return h.Service.DeleteMessage(ctx, id)
}

func (h Handler) AskHandler(_ context.Context, req httptransport.AskRequest) httptransport.AskResponse {
	return httptransport.AskResponse{Answer: h.Service.Ask(req.Query)}
}

func (h Handler) SuggestedQuestionsHandler(_ context.Context) httptransport.SuggestedQuestionsResponse {
	questions := application.SuggestedQuestions()
	items := make([]httptransport.SuggestedQuestionResponse, 0, len(questions))
	for _, question := range questions {
		items = append(items, httptransport.SuggestedQuestionResponse{
			ID:       question.ID,
			Question: question.Question,
			Answer:   question.Answer,
		})
	}
	return httptransport.SuggestedQuestionsResponse{Items: items}
}

func mapMessage(message entities.ContactMessage) httptransport.ContactMessageResponse {
	return httptransport.ContactMessageResponse{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Message:   message.Body,
		Read:      message.Read,
		CreatedAt: message.CreatedAt.UTC().Format(time.RFC3339),
	}
}
