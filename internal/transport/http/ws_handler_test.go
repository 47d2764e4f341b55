package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eduquest-service/internal/app"
	"eduquest-service/internal/domain"
	"eduquest-service/internal/infra/memory"
	"github.com/gorilla/websocket"
)

func TestLeaderboardStream(t *testing.T) {
	ctx := context.Background()
	students := memory.NewStudentStore()
	quests := memory.NewQuestStore()
	progress := memory.NewProgressStore()
	_, _ = quests.SeedIfEmpty(ctx, []domain.Quest{
		{
			ID: "quest-1", Subject: domain.SubjectMath, Grade: 1, XPReward: 50,
			Questions: []domain.Question{{ID: "q1", CorrectAnswer: "15"}},
		},
	})

	hub := app.NewLeaderboardHub()
	service := app.NewQuestService(students, quests, progress, hub)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws/leaderboard", NewWSHandler(service, hub).ServeWS)
	server := httptest.NewServer(mux)
	defer server.Close()

	student, err := service.RegisterStudent(ctx, app.Registration{Name: "A", Age: 7, Grade: 1, Avatar: "girl"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	u := "ws" + server.URL[len("http"):] + "/ws/leaderboard"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Initial snapshot arrives first.
	initial := readSnapshot(t, conn)
	if len(initial) != 1 || initial[0].TotalXP != 0 {
		t.Fatalf("unexpected initial snapshot %+v", initial)
	}

	if _, err := service.SubmitQuest(ctx, student.ID, "quest-1", []domain.QuestionAnswer{
		{QuestionID: "q1", Answer: "15"},
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	update := readSnapshot(t, conn)
	if len(update) != 1 || update[0].TotalXP != 50 || update[0].Rank != 1 {
		t.Fatalf("unexpected update %+v", update)
	}
}

func readSnapshot(t *testing.T, conn *websocket.Conn) []domain.LeaderboardEntry {
	t.Helper()
	var msg struct {
		Type    string                    `json:"type"`
		Payload []domain.LeaderboardEntry `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if msg.Type != "leaderboard" {
		t.Fatalf("expected leaderboard message, got %s", msg.Type)
	}
	return msg.Payload
}
