package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"electoral_site/assistant"
	"electoral_site/config"
	"electoral_site/models"
)

// Engine is the assistant instance the routes are served from. Wired in
// main after the database is up.
var Engine *assistant.Assistant

type AssistantRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type AssistantResponse struct {
	Reply string `json:"reply"`
}

// AskAssistant answers one free-text question. The engine never fails a
// request for "no data"; whatever it returns is the reply.
func AskAssistant(w http.ResponseWriter, r *http.Request) {
	var req AssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	log.Printf("[Assistant] session=%s question=%q", req.SessionID, req.Message)

	reply := Engine.Answer(r.Context(), req.Message)

	if req.SessionID != "" {
		saveConversation(req.SessionID, req.Message, reply)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(AssistantResponse{Reply: reply}); err != nil {
		log.Printf("Error encoding assistant response: %v", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

// saveConversation persists the exchange when Mongo is configured.
// Persistence failures are logged, never surfaced: the reply already went
// through the main path.
func saveConversation(sessionID, question, answer string) {
	if config.MongoDB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conv := models.Conversation{
		SessionID: sessionID,
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now().Unix(),
	}
	if _, err := config.MongoDB.Collection("conversations").InsertOne(ctx, conv); err != nil {
		log.Printf("Error saving conversation for session %s: %v", sessionID, err)
	}
}

// GetConversationHistory lists stored exchanges for one session, oldest
// first.
func GetConversationHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	if config.MongoDB == nil {
		http.Error(w, "Conversation history is not enabled", http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(200)

	cursor, err := config.MongoDB.Collection("conversations").Find(ctx,
		bson.M{"session_id": sessionID}, findOptions)
	if err != nil {
		log.Printf("Error fetching history for session %s: %v", sessionID, err)
		http.Error(w, "Error fetching conversation history", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	conversations := []models.Conversation{}
	if err := cursor.All(ctx, &conversations); err != nil {
		log.Printf("Error decoding history for session %s: %v", sessionID, err)
		http.Error(w, "Error decoding conversation history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(conversations)
}
