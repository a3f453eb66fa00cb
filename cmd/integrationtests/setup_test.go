package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"skinswap/internal/auth"
	inventory "skinswap/internal/inventoryService"
	model "skinswap/internal/models"
	"skinswap/internal/notify"
	"skinswap/internal/repository"
	"skinswap/internal/server"
	trading "skinswap/internal/tradingService"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const testSecret = "integration-secret"

// testEnv bundles a router with the backing repo and a token signer
type testEnv struct {
	router     *gin.Engine
	repo       *repository.MemoryRepo
	dispatcher *notify.Dispatcher
	jwt        *auth.JWTService
}

// SetupTestEnv initializes the full router over an in-memory repository seeded with users and items.
func SetupTestEnv(t *testing.T, users []model.User, items []model.InventoryItem) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, u := range users {
		repo.AddUser(u)
	}
	for _, i := range items {
		repo.AddItem(i)
	}

	dispatcher := notify.NewDispatcher(repo, notify.DefaultBuffer)
	t.Cleanup(dispatcher.Close)

	jwtService := auth.NewJWTService(testSecret)
	router := server.SetupRouter(server.Dependencies{
		Trading:     trading.NewTradingService(repo, dispatcher),
		Inventory:   inventory.NewInventoryService(repo),
		Feed:        notify.NewFeed(repo),
		JWT:         jwtService,
		Idempotency: server.NewIdempotencyStore(time.Hour),
	})

	return &testEnv{router: router, repo: repo, dispatcher: dispatcher, jwt: jwtService}
}

// defaultEnv seeds alice and bob with two items each; bob's second item is equipped.
func defaultEnv(t *testing.T) *testEnv {
	return SetupTestEnv(t,
		[]model.User{
			{UserID: "alice", Username: "alice", Coins: 100},
			{UserID: "bob", Username: "bob", Coins: 50},
			{UserID: "carol", Username: "carol"},
		},
		[]model.InventoryItem{
			{ItemID: "a1", OwnerID: "alice", Name: "AK-47 | Redline", Value: decimal.RequireFromString("24.50")},
			{ItemID: "a2", OwnerID: "alice", Name: "P250 | Sand Dune", Value: decimal.RequireFromString("0.10")},
			{ItemID: "b1", OwnerID: "bob", Name: "AWP | Asiimov", Value: decimal.RequireFromString("96.10")},
			{ItemID: "b2", OwnerID: "bob", Name: "Glock-18 | Fade", Value: decimal.RequireFromString("412.75"), Equipped: true},
			{ItemID: "c1", OwnerID: "carol", Name: "USP-S | Kill Confirmed", Value: decimal.RequireFromString("38")},
		},
	)
}

// request describes a single authenticated call
type request struct {
	method         string
	url            string
	user           string
	body           any
	idempotencyKey string
}

// Do executes an HTTP request as the given user and parses the response envelope
func (e *testEnv) Do(t *testing.T, r request) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := r.body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(r.method, r.url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if r.user != "" {
		token, err := e.jwt.GenerateToken(r.user, r.user, time.Hour)
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if r.idempotencyKey != "" {
		req.Header.Set(server.IdempotencyHeader, r.idempotencyKey)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// data returns the envelope payload as an object
func data(resp map[string]any) map[string]any {
	d, _ := resp["data"].(map[string]any)
	return d
}

func userFor(userID string) model.User {
	return model.User{UserID: userID, Username: userID}
}

func itemFor(itemID, ownerID string) model.InventoryItem {
	return model.InventoryItem{ItemID: itemID, OwnerID: ownerID, Name: itemID, Value: decimal.NewFromInt(1)}
}
