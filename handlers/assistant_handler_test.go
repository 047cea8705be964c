package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"electoral_site/assistant"
	"electoral_site/models"
)

// emptyFetcher answers every fetch with no rows, which drives the engine
// to its help text.
type emptyFetcher struct{}

func (emptyFetcher) VotesByCandidate(context.Context, string) ([]models.VoteRecord, error) {
	return nil, nil
}
func (emptyFetcher) TurnoutByMunicipality(context.Context, string, int, int) ([]models.TurnoutRecord, error) {
	return nil, nil
}
func (emptyFetcher) VotesByMunicipality(context.Context, string, []int, int, int) ([]models.VoteRecord, error) {
	return nil, nil
}
func (emptyFetcher) VotesByZone(context.Context, string, int, int, int, int) ([]models.VoteRecord, error) {
	return nil, nil
}
func (emptyFetcher) TopTurnoutZones(context.Context, int, int) ([]models.TurnoutRecord, error) {
	return nil, nil
}
func (emptyFetcher) TurnoutByYear(context.Context, string, int) ([]models.TurnoutRecord, error) {
	return nil, nil
}
func (emptyFetcher) VotesByOffice(context.Context, int, string, int, int) ([]models.VoteRecord, error) {
	return nil, nil
}

func TestAskAssistant(t *testing.T) {
	Engine = assistant.New(emptyFetcher{})

	body := strings.NewReader(`{"message": "bom dia", "session_id": "s1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant", body)
	rec := httptest.NewRecorder()

	AskAssistant(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var response AssistantResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if response.Reply == "" {
		t.Error("expected a non-empty reply for an unrecognized question")
	}
}

func TestAskAssistantRequiresMessage(t *testing.T) {
	Engine = assistant.New(emptyFetcher{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	AskAssistant(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetConversationHistoryRequiresSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/assistant/history", nil)
	rec := httptest.NewRecorder()

	GetConversationHistory(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetMunicipalities(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/municipalities", nil)
	rec := httptest.NewRecorder()

	GetMunicipalities(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var names []string
	if err := json.Unmarshal(rec.Body.Bytes(), &names); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(names) != 52 {
		t.Errorf("expected 52 municipalities, got %d", len(names))
	}
	if names[0] != "Porto Velho" {
		t.Errorf("capital must come first, got %q", names[0])
	}
}
