package auth

import (
	"os"
	"testing"

	"lostfound_backend/config"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("MODE", "test")
	config.InitConfig()
	os.Exit(m.Run())
}

func TestCreateAndParseToken(t *testing.T) {
	access, refresh, err := CreateToken(42, "admin", 3)
	if err != nil {
		t.Fatal(err)
	}
	if access == refresh {
		t.Error("access and refresh tokens are identical")
	}

	claims, err := ParseToken(access)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 42 || claims.Role != "admin" || claims.OrganizationID != 3 {
		t.Errorf("claims = %+v", claims)
	}
	if claims.Type != TokenTypeAccess {
		t.Errorf("type = %q, want access", claims.Type)
	}

	claims, err = ParseToken(refresh)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("type = %q, want refresh", claims.Type)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseToken(token); err == nil {
			t.Errorf("ParseToken(%q) accepted", token)
		}
	}
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	access, _, err := CreateToken(1, "user", 1)
	if err != nil {
		t.Fatal(err)
	}

	original := config.Config.JwtSecret
	config.Config.JwtSecret = "another-secret"
	defer func() { config.Config.JwtSecret = original }()

	if _, err = ParseToken(access); err == nil {
		t.Error("token with a foreign signature accepted")
	}
}

func TestPasswordHashFormat(t *testing.T) {
	hashed, err := MakePassword("password123")
	if err != nil {
		t.Fatal(err)
	}
	ok, err := CheckPassword("password123", hashed)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("round trip failed")
	}

	// two hashes of the same password differ by salt
	other, err := MakePassword("password123")
	if err != nil {
		t.Fatal(err)
	}
	if hashed == other {
		t.Error("salt is not random")
	}
}
