package services

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/yungbote/recallai-backend/internal/clients/openrouter"
	"github.com/yungbote/recallai-backend/internal/types"
)

func TestSummarizeEmptyContentReturnsEmptyState(t *testing.T) {
	ai := &stubAIClient{}
	svc := NewSummaryService(newTestLogger(t), ai, nil, 0.3)

	got := svc.Summarize(context.Background(), "")
	want := types.ClassSummary{
		Topics:         []string{},
		KeyTakeaways:   []string{"No class content uploaded yet"},
		RecapQuestions: []string{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Summarize(\"\") = %+v, want %+v", got, want)
	}
	if ai.calls != 0 {
		t.Fatalf("expected no AI calls for empty content, got %d", ai.calls)
	}
}

func TestSummarizeMissingCredential(t *testing.T) {
	svc := NewSummaryService(newTestLogger(t), nil, nil, 0.3)

	got := svc.Summarize(context.Background(), "lecture notes")
	if len(got.Topics) != 1 || got.Topics[0] != "Error loading summary" {
		t.Fatalf("topics = %v, want [Error loading summary]", got.Topics)
	}
	if len(got.KeyTakeaways) == 0 {
		t.Fatal("key_takeaways must describe the failure")
	}
	if len(got.RecapQuestions) != 0 {
		t.Fatalf("recap_questions = %v, want empty", got.RecapQuestions)
	}
}

func TestSummarizeUpstreamFailureDegrades(t *testing.T) {
	ai := &stubAIClient{err: &openrouter.Error{Kind: openrouter.KindRateLimit, StatusCode: 429}}
	svc := NewSummaryService(newTestLogger(t), ai, nil, 0.3)

	got := svc.Summarize(context.Background(), "lecture notes")
	if len(got.Topics) != 1 || got.Topics[0] != "Error loading summary" {
		t.Fatalf("topics = %v, want [Error loading summary]", got.Topics)
	}
	if len(got.KeyTakeaways) == 0 {
		t.Fatal("key_takeaways must be non-empty on failure")
	}
	if len(got.RecapQuestions) != 0 {
		t.Fatalf("recap_questions = %v, want empty", got.RecapQuestions)
	}
	if ai.calls != 1 {
		t.Fatalf("expected exactly one AI call, got %d", ai.calls)
	}
}

func TestSummarizeMalformedJSONDegrades(t *testing.T) {
	ai := &stubAIClient{text: "this is not json"}
	svc := NewSummaryService(newTestLogger(t), ai, nil, 0.3)

	got := svc.Summarize(context.Background(), "lecture notes")
	if len(got.Topics) != 1 || got.Topics[0] != "Error loading summary" {
		t.Fatalf("topics = %v, want [Error loading summary]", got.Topics)
	}
	if len(got.KeyTakeaways) == 0 {
		t.Fatal("key_takeaways must describe the parse failure")
	}
}

func TestSummarizeParsesWellFormedResponse(t *testing.T) {
	ai := &stubAIClient{text: `{"topics":["interfaces"],"key_takeaways":["interfaces define behavior"],"recap_questions":["what is an interface?"]}`}
	svc := NewSummaryService(newTestLogger(t), ai, nil, 0.3)

	got := svc.Summarize(context.Background(), "Lecture on interfaces")
	want := types.ClassSummary{
		Topics:         []string{"interfaces"},
		KeyTakeaways:   []string{"interfaces define behavior"},
		RecapQuestions: []string{"what is an interface?"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Summarize = %+v, want %+v", got, want)
	}
	if !strings.Contains(ai.lastPrompt, "Lecture on interfaces") {
		t.Fatalf("prompt does not contain class content: %q", ai.lastPrompt)
	}
}

func TestSummarizeFillsMissingFields(t *testing.T) {
	ai := &stubAIClient{text: `{"topics":["interfaces"]}`}
	svc := NewSummaryService(newTestLogger(t), ai, nil, 0.3)

	got := svc.Summarize(context.Background(), "lecture notes")
	if got.KeyTakeaways == nil || got.RecapQuestions == nil {
		t.Fatalf("missing fields must decode to empty slices, got %+v", got)
	}
}
