package item_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"

	"lostfound_backend/apis"
	"lostfound_backend/config"
	"lostfound_backend/middlewares"
	"lostfound_backend/models"
	"lostfound_backend/utils"
	"lostfound_backend/utils/auth"
)

var app *fiber.App

func TestMain(m *testing.M) {
	_ = os.Setenv("MODE", "test")
	config.InitConfig()
	models.InitDB()

	app = fiber.New(fiber.Config{
		AppName:      config.AppName,
		ErrorHandler: utils.MyErrorHandler,
	})
	middlewares.RegisterMiddlewares(app)
	apis.RegisterRoutes(app)

	os.Exit(m.Run())
}

var emailSeq int64

func createUser(t *testing.T, role string) (*models.User, string) {
	t.Helper()
	var organization models.Organization
	err := models.DB.Take(&organization, "code = ?", models.DefaultOrganizationCode).Error
	if err != nil {
		t.Fatal(err)
	}
	user := &models.User{
		Name:           "Reporter",
		Email:          fmt.Sprintf("item%d@example.com", atomic.AddInt64(&emailSeq, 1)),
		Password:       "unusable",
		Role:           role,
		Status:         models.UserStatusActive,
		OrganizationID: organization.ID,
	}
	if err = models.DB.Create(user).Error; err != nil {
		t.Fatal(err)
	}
	accessToken, _, err := auth.CreateToken(user.ID, user.Role, user.OrganizationID)
	if err != nil {
		t.Fatal(err)
	}
	return user, accessToken
}

func request(t *testing.T, method, target, token string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, target, reader)
	if err != nil {
		t.Fatal(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var response map[string]any
	data, _ := io.ReadAll(resp.Body)
	if len(data) > 0 {
		_ = json.Unmarshal(data, &response)
	}
	return resp.StatusCode, response
}

func createItem(t *testing.T, token, itemType, title string) int {
	t.Helper()
	status, response := request(t, "POST", "/api/items/", token, map[string]any{
		"type":        itemType,
		"title":       title,
		"description": "left on a bench",
		"location":    "central park",
	})
	if status != 201 {
		t.Fatalf("create item = %d: %v", status, response)
	}
	item := response["item"].(map[string]any)
	return int(item["id"].(float64))
}

func TestCreateItemRequiresLogin(t *testing.T) {
	status, _ := request(t, "POST", "/api/items/", "", map[string]any{
		"type":        "lost",
		"title":       "wallet",
		"description": "brown leather",
		"location":    "library",
	})
	if status != 401 {
		t.Errorf("anonymous create = %d, want 401", status)
	}
}

func TestListItemsFilterAndPagination(t *testing.T) {
	_, token := createUser(t, models.RoleUser)
	for i := 0; i < 3; i++ {
		createItem(t, token, "lost", fmt.Sprintf("paginated umbrella %d", i))
	}
	createItem(t, token, "found", "paginated keys")

	status, response := request(t, "GET",
		"/api/items/?type=lost&search=paginated&page=1&limit=2", "", nil)
	if status != 200 {
		t.Fatalf("list = %d: %v", status, response)
	}
	items := response["items"].([]any)
	if len(items) != 2 {
		t.Errorf("page size = %d, want 2", len(items))
	}
	for _, raw := range items {
		if raw.(map[string]any)["type"] != "lost" {
			t.Error("type filter ignored")
		}
	}
	pagination := response["pagination"].(map[string]any)
	if pagination["total"] != float64(3) {
		t.Errorf("total = %v, want 3", pagination["total"])
	}
	if pagination["pages"] != float64(2) {
		t.Errorf("pages = %v, want 2", pagination["pages"])
	}

	status, response = request(t, "GET",
		"/api/items/?search=paginated&page=2&limit=2&type=lost", "", nil)
	if status != 200 {
		t.Fatalf("second page = %d", status)
	}
	if len(response["items"].([]any)) != 1 {
		t.Errorf("second page size = %d, want 1", len(response["items"].([]any)))
	}
}

func TestModifyItemOwnership(t *testing.T) {
	_, ownerToken := createUser(t, models.RoleUser)
	id := createItem(t, ownerToken, "lost", "ownership phone")

	_, strangerToken := createUser(t, models.RoleUser)
	status, _ := request(t, "PUT", fmt.Sprintf("/api/items/%d", id), strangerToken,
		map[string]any{"title": "hijacked"})
	if status != 403 {
		t.Errorf("stranger modify = %d, want 403", status)
	}

	status, response := request(t, "PUT", fmt.Sprintf("/api/items/%d", id), ownerToken,
		map[string]any{"title": "ownership phone v2", "reward": 50})
	if status != 200 {
		t.Fatalf("owner modify = %d: %v", status, response)
	}
	item := response["item"].(map[string]any)
	if item["title"] != "ownership phone v2" {
		t.Errorf("title = %v", item["title"])
	}
	if item["reward"] != float64(50) {
		t.Errorf("reward = %v, want 50", item["reward"])
	}

	// admins may modify anyone's item
	_, adminToken := createUser(t, models.RoleAdmin)
	status, _ = request(t, "PUT", fmt.Sprintf("/api/items/%d", id), adminToken,
		map[string]any{"status": "claimed"})
	if status != 200 {
		t.Errorf("admin modify = %d, want 200", status)
	}
}

func TestResolveItem(t *testing.T) {
	user, token := createUser(t, models.RoleUser)
	id := createItem(t, token, "found", "resolve badge")

	status, response := request(t, "PATCH", fmt.Sprintf("/api/items/%d/resolve", id), token,
		map[string]any{"notes": "returned to owner"})
	if status != 200 {
		t.Fatalf("resolve = %d: %v", status, response)
	}
	item := response["item"].(map[string]any)
	if item["status"] != "resolved" {
		t.Errorf("status = %v, want resolved", item["status"])
	}
	if item["resolvedBy"] != float64(user.ID) {
		t.Errorf("resolvedBy = %v, want %d", item["resolvedBy"], user.ID)
	}
	if item["resolvedAt"] == nil {
		t.Error("resolvedAt not set")
	}
	if item["notes"] != "returned to owner" {
		t.Errorf("notes = %v", item["notes"])
	}
}
