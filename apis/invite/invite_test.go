package invite_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"testing"
	"time"

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

func createUser(t *testing.T, role string, organizationID int) (*models.User, string) {
	t.Helper()
	user := &models.User{
		Name:           "Tester",
		Email:          fmt.Sprintf("tester%d@example.com", atomic.AddInt64(&emailSeq, 1)),
		Password:       "unusable",
		Role:           role,
		Status:         models.UserStatusActive,
		OrganizationID: organizationID,
	}
	err := models.DB.Create(user).Error
	if err != nil {
		t.Fatal(err)
	}
	accessToken, _, err := auth.CreateToken(user.ID, user.Role, user.OrganizationID)
	if err != nil {
		t.Fatal(err)
	}
	return user, accessToken
}

func createOrganization(t *testing.T, code string) *models.Organization {
	t.Helper()
	organization := &models.Organization{
		Name:   code,
		Code:   code,
		Type:   "community",
		Status: models.OrganizationStatusActive,
	}
	err := models.DB.Create(organization).Error
	if err != nil {
		t.Fatal(err)
	}
	return organization
}

func defaultOrganizationID(t *testing.T) int {
	t.Helper()
	var organization models.Organization
	err := models.DB.Take(&organization, "code = ?", models.DefaultOrganizationCode).Error
	if err != nil {
		t.Fatal(err)
	}
	return organization.ID
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

func generateCode(t *testing.T, token string, body map[string]any) string {
	t.Helper()
	status, response := request(t, "POST", "/api/invite-codes/generate", token, body)
	if status != 201 {
		t.Fatalf("generate returned %d: %v", status, response)
	}
	inviteCode, _ := response["inviteCode"].(map[string]any)
	code, _ := inviteCode["code"].(string)
	if code == "" {
		t.Fatalf("no code in response: %v", response)
	}
	return code
}

func TestGenerateRequiresAdmin(t *testing.T) {
	organizationID := defaultOrganizationID(t)

	status, _ := request(t, "POST", "/api/invite-codes/generate", "", map[string]any{})
	if status != 401 {
		t.Errorf("anonymous generate = %d, want 401", status)
	}

	_, userToken := createUser(t, models.RoleUser, organizationID)
	status, _ = request(t, "POST", "/api/invite-codes/generate", userToken, map[string]any{})
	if status != 403 {
		t.Errorf("member generate = %d, want 403", status)
	}

	_, adminToken := createUser(t, models.RoleAdmin, organizationID)
	status, response := request(t, "POST", "/api/invite-codes/generate", adminToken,
		map[string]any{"type": "admin", "maxUses": 3, "notes": "ops team"})
	if status != 201 {
		t.Fatalf("admin generate = %d: %v", status, response)
	}
	inviteCode := response["inviteCode"].(map[string]any)
	if inviteCode["type"] != "admin" {
		t.Errorf("type = %v, want admin", inviteCode["type"])
	}
	if inviteCode["maxUses"] != float64(3) {
		t.Errorf("maxUses = %v, want 3", inviteCode["maxUses"])
	}
	if inviteCode["status"] != "active" {
		t.Errorf("status = %v, want active", inviteCode["status"])
	}
}

func TestValidateEndpoint(t *testing.T) {
	organizationID := defaultOrganizationID(t)
	_, adminToken := createUser(t, models.RoleAdmin, organizationID)
	code := generateCode(t, adminToken, map[string]any{})

	status, _ := request(t, "POST", "/api/invite-codes/validate", "",
		map[string]any{"code": "FFFFFFFF"})
	if status != 404 {
		t.Errorf("unknown code = %d, want 404", status)
	}

	// validation is repeatable and consumes nothing
	for i := 0; i < 2; i++ {
		status, response := request(t, "POST", "/api/invite-codes/validate", "",
			map[string]any{"code": code})
		if status != 200 {
			t.Fatalf("validate %d = %d: %v", i, status, response)
		}
		inviteCode := response["inviteCode"].(map[string]any)
		if inviteCode["currentUses"] != float64(0) {
			t.Errorf("validate %d consumed a use", i)
		}
	}
}

func TestValidateOrganizationFieldsArePublic(t *testing.T) {
	organization := createOrganization(t, "PUBORG")
	organization.ContactEmail = "ops@puborg.example.com"
	organization.ContactPhone = "555-0000"
	if err := models.DB.Save(organization).Error; err != nil {
		t.Fatal(err)
	}
	admin, adminToken := createUser(t, models.RoleAdmin, organization.ID)
	code := generateCode(t, adminToken, map[string]any{"maxUses": 2})

	assertPublicOrganization := func(response map[string]any) {
		t.Helper()
		inviteCode, _ := response["inviteCode"].(map[string]any)
		embedded, ok := inviteCode["organization"].(map[string]any)
		if !ok {
			t.Fatalf("no organization in response: %v", response)
		}
		if embedded["code"] != "PUBORG" {
			t.Errorf("organization code = %v, want PUBORG", embedded["code"])
		}
		for _, key := range []string{"settings", "statistics", "contactEmail", "contactPhone", "createdBy", "status"} {
			if _, leaked := embedded[key]; leaked {
				t.Errorf("organization leaked %q to an unauthenticated caller", key)
			}
		}
	}

	status, response := request(t, "POST", "/api/invite-codes/validate", "",
		map[string]any{"code": code})
	if status != 200 {
		t.Fatalf("validate = %d: %v", status, response)
	}
	assertPublicOrganization(response)

	status, response = request(t, "POST", "/api/invite-codes/use", "",
		map[string]any{"code": code, "userId": admin.ID})
	if status != 200 {
		t.Fatalf("use = %d: %v", status, response)
	}
	assertPublicOrganization(response)
}

func TestValidateExpired(t *testing.T) {
	organizationID := defaultOrganizationID(t)
	_, adminToken := createUser(t, models.RoleAdmin, organizationID)
	code := generateCode(t, adminToken, map[string]any{})

	err := models.DB.Model(&models.InviteCode{}).
		Where("code = ?", code).
		Update("expires_at", time.Now().Add(-time.Hour)).Error
	if err != nil {
		t.Fatal(err)
	}

	status, response := request(t, "POST", "/api/invite-codes/validate", "",
		map[string]any{"code": code})
	if status != 400 {
		t.Errorf("expired code = %d, want 400", status)
	}
	if response["message"] != "Invite code has expired" {
		t.Errorf("message = %v", response["message"])
	}
}

func TestUseEndpoint(t *testing.T) {
	organizationID := defaultOrganizationID(t)
	admin, adminToken := createUser(t, models.RoleAdmin, organizationID)
	code := generateCode(t, adminToken, map[string]any{"maxUses": 1})

	status, response := request(t, "POST", "/api/invite-codes/use", "",
		map[string]any{"code": code, "userId": admin.ID})
	if status != 200 {
		t.Fatalf("use = %d: %v", status, response)
	}
	inviteCode := response["inviteCode"].(map[string]any)
	if inviteCode["currentUses"] != float64(1) {
		t.Errorf("currentUses = %v, want 1", inviteCode["currentUses"])
	}
	if inviteCode["status"] != "used" {
		t.Errorf("status = %v, want used", inviteCode["status"])
	}

	status, _ = request(t, "POST", "/api/invite-codes/use", "",
		map[string]any{"code": code, "userId": admin.ID})
	if status != 400 {
		t.Errorf("second use = %d, want 400", status)
	}
}

func TestListInviteCodesScopedToOrganization(t *testing.T) {
	organizationID := defaultOrganizationID(t)
	_, adminToken := createUser(t, models.RoleAdmin, organizationID)
	generateCode(t, adminToken, map[string]any{"type": "admin"})
	generateCode(t, adminToken, map[string]any{})

	other := createOrganization(t, "LISTORG")
	_, otherToken := createUser(t, models.RoleAdmin, other.ID)
	foreign := generateCode(t, otherToken, map[string]any{})

	status, response := request(t, "GET", "/api/invite-codes/?limit=100", adminToken, nil)
	if status != 200 {
		t.Fatalf("list = %d: %v", status, response)
	}
	inviteCodes := response["inviteCodes"].([]any)
	for _, raw := range inviteCodes {
		if raw.(map[string]any)["code"] == foreign {
			t.Error("list leaked a foreign organization's code")
		}
	}

	status, response = request(t, "GET", "/api/invite-codes/?type=admin&limit=100", adminToken, nil)
	if status != 200 {
		t.Fatalf("filtered list = %d", status)
	}
	for _, raw := range response["inviteCodes"].([]any) {
		if raw.(map[string]any)["type"] != "admin" {
			t.Error("type filter ignored")
		}
	}
}

func TestDeleteInviteCode(t *testing.T) {
	organizationID := defaultOrganizationID(t)
	_, adminToken := createUser(t, models.RoleAdmin, organizationID)
	code := generateCode(t, adminToken, map[string]any{})

	var inviteCode models.InviteCode
	err := models.DB.Take(&inviteCode, "code = ?", code).Error
	if err != nil {
		t.Fatal(err)
	}

	other := createOrganization(t, "DELORG")
	_, otherToken := createUser(t, models.RoleAdmin, other.ID)
	status, _ := request(t, "DELETE", fmt.Sprintf("/api/invite-codes/%d", inviteCode.ID), otherToken, nil)
	if status != 403 {
		t.Errorf("foreign delete = %d, want 403", status)
	}

	status, _ = request(t, "DELETE", fmt.Sprintf("/api/invite-codes/%d", inviteCode.ID), adminToken, nil)
	if status != 200 {
		t.Errorf("owner delete = %d, want 200", status)
	}

	status, _ = request(t, "DELETE", fmt.Sprintf("/api/invite-codes/%d", inviteCode.ID), adminToken, nil)
	if status != 404 {
		t.Errorf("repeated delete = %d, want 404", status)
	}
}
