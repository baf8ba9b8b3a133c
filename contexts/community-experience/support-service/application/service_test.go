package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"rentloo/contexts/community-experience/support-service/adapters/memory"
	domainerrors "rentloo/contexts/community-experience/support-service/domain/errors"
)

func newService() Service {
	return Service{
		Messages: memory.NewStore(),
		Clock:    memory.SystemClock{},
		IDGen:    memory.UUIDGenerator{},
	}
}

func TestSubmitMessagePrependsToInbox(t *testing.T) {
	service := newService()

	first, err := service.SubmitMessage(context.Background(), SubmitMessageInput{
		Name:  "Ravi",
		Email: "ravi@example.com",
		Body:  "My drone rental arrived late.",
	})
	if err != nil {
		t.Fatalf("SubmitMessage: %v", err)
	}
	second, err := service.SubmitMessage(context.Background(), SubmitMessageInput{
		Name:    "Asha",
		Email:   "asha@example.com",
		Subject: "Refund",
		Body:    "Requesting a refund for order ord_123.",
	})
	if err != nil {
		t.Fatalf("SubmitMessage: %v", err)
	}

	inbox, err := service.ListMessages(context.Background())
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(inbox) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(inbox))
	}
	if inbox[0].ID != second.ID || inbox[1].ID != first.ID {
		t.Fatal("expected newest message first")
	}
	if inbox[0].Read {
		t.Fatal("new messages start unread")
	}
}

func TestSubmitMessageRejectsBlankFields(t *testing.T) {
	service := newService()

	cases := []SubmitMessageInput{
		{Name: " ", Email: "a@b.c", Body: "hello"},
		{Name: "A", Email: "", Body: "hello"},
		{Name: "A", Email: "a@b.c", Body: "   "},
	}
	for _, input := range cases {
		if _, err := service.SubmitMessage(context.Background(), input); !errors.Is(err, domainerrors.ErrInvalidRequest) {
			t.Fatalf("input %+v: expected ErrInvalidRequest, got %v", input, err)
		}
	}
}

func TestMarkReadAndDelete(t *testing.T) {
	service := newService()

	message, err := service.SubmitMessage(context.Background(), SubmitMessageInput{
		Name:  "Ravi",
		Email: "ravi@example.com",
		Body:  "Hello",
	})
	if err != nil {
		t.Fatalf("SubmitMessage: %v", err)
	}

	if err := service.MarkRead(context.Background(), message.ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	inbox, err := service.ListMessages(context.Background())
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if !inbox[0].Read {
		t.Fatal("expected message marked read")
	}

	if err := service.DeleteMessage(context.Background(), message.ID); err != nil {
		t.Fatalf("DeleteMessage: %v", err)
	}
	if err := service.DeleteMessage(context.Background(), message.ID); !errors.Is(err, domainerrors.ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestBotAnswersSuggestedQuestions(t *testing.T) {
	for _, suggested := range SuggestedQuestions() {
		if got := Answer(suggested.Question); got != suggested.Answer {
			t.Fatalf("question %q: got %q", suggested.Question, got)
		}
	}
}

func TestBotAnswersKeywordTopics(t *testing.T) {
	cases := []struct {
		query    string
		fragment string
	}{
		{"How does Rentloo work?", "Browse & Rent"},
		{"Tell me about Rentloo", "peer-to-peer rental marketplace"},
		{"What is the Rentloo Guarantee?", "insured up to"},
		{"Show me the FAQ", "frequently asked questions"},
		{"Where are your terms?", "Terms and Conditions"},
		{"privacy policy please", "We take privacy seriously"},
		{"partnership inquiry", "partners@rentloo.com"},
	}
	for _, tc := range cases {
		if got := Answer(tc.query); !strings.Contains(got, tc.fragment) {
			t.Fatalf("query %q: answer %q does not mention %q", tc.query, got, tc.fragment)
		}
	}
}

func TestBotFallsBackOnUnknownQuery(t *testing.T) {
	if got := Answer("do you rent elephants"); got != fallbackAnswer {
		t.Fatalf("expected fallback, got %q", got)
	}
}
