package models

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"lostfound_backend/config"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("MODE", "test")
	config.InitConfig()
	InitDB()
	os.Exit(m.Run())
}

var emailSeq int64

func newTestAdmin(t *testing.T) *User {
	t.Helper()
	var organization Organization
	err := DB.Take(&organization, "code = ?", DefaultOrganizationCode).Error
	if err != nil {
		t.Fatal(err)
	}
	user := &User{
		Name:           "Issuer",
		Email:          fmt.Sprintf("issuer%d@example.com", atomic.AddInt64(&emailSeq, 1)),
		Password:       "unusable",
		Role:           RoleAdmin,
		Status:         UserStatusActive,
		OrganizationID: organization.ID,
	}
	err = DB.Create(user).Error
	if err != nil {
		t.Fatal(err)
	}
	return user
}

func newTestInviteCode(t *testing.T, maxUses, expiresInDays int) *InviteCode {
	t.Helper()
	inviteCode, err := NewInviteCode(InviteCodeTypeUser, "", maxUses, expiresInDays, "", newTestAdmin(t))
	if err != nil {
		t.Fatal(err)
	}
	err = DB.Create(inviteCode).Error
	if err != nil {
		t.Fatal(err)
	}
	return inviteCode
}

func TestNewInviteCodeDefaults(t *testing.T) {
	issuer := newTestAdmin(t)
	inviteCode, err := NewInviteCode(InviteCodeTypeUser, "a@example.com", 1, 7, "welcome", issuer)
	if err != nil {
		t.Fatal(err)
	}

	if len(inviteCode.Code) != 8 {
		t.Errorf("code length = %d, want 8", len(inviteCode.Code))
	}
	for _, r := range inviteCode.Code {
		if !(r >= '0' && r <= '9' || r >= 'A' && r <= 'F') {
			t.Errorf("code %q contains non uppercase hex rune %q", inviteCode.Code, r)
		}
	}
	if inviteCode.Status != InviteCodeStatusActive {
		t.Errorf("status = %q, want active", inviteCode.Status)
	}
	if inviteCode.CurrentUses != 0 {
		t.Errorf("current uses = %d, want 0", inviteCode.CurrentUses)
	}
	if inviteCode.OrganizationID != issuer.OrganizationID {
		t.Errorf("organization = %d, want issuer's %d", inviteCode.OrganizationID, issuer.OrganizationID)
	}

	wantExpiry := time.Now().AddDate(0, 0, 7)
	if diff := inviteCode.ExpiresAt.Sub(wantExpiry); diff < -time.Minute || diff > time.Minute {
		t.Errorf("expires at %v, want about %v", inviteCode.ExpiresAt, wantExpiry)
	}
}

func TestCheckPrecedence(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	// an inactive flag wins over everything else
	inviteCode := &InviteCode{Status: InviteCodeStatusUsed, ExpiresAt: past, MaxUses: 1, CurrentUses: 1}
	if err := inviteCode.Check(now); !errors.Is(err, ErrInviteCodeInactive) {
		t.Errorf("Check() = %v, want inactive", err)
	}

	// expiry wins over the exhausted counter
	inviteCode = &InviteCode{Status: InviteCodeStatusActive, ExpiresAt: past, MaxUses: 1, CurrentUses: 1}
	if err := inviteCode.Check(now); !errors.Is(err, ErrInviteCodeExpired) {
		t.Errorf("Check() = %v, want expired", err)
	}

	inviteCode = &InviteCode{Status: InviteCodeStatusActive, ExpiresAt: future, MaxUses: 1, CurrentUses: 1}
	if err := inviteCode.Check(now); !errors.Is(err, ErrInviteCodeExhausted) {
		t.Errorf("Check() = %v, want exhausted", err)
	}

	inviteCode = &InviteCode{Status: InviteCodeStatusActive, ExpiresAt: future, MaxUses: 1, CurrentUses: 0}
	if err := inviteCode.Check(now); err != nil {
		t.Errorf("Check() = %v, want nil", err)
	}
}

func TestCheckInviteCodeIsReadOnly(t *testing.T) {
	created := newTestInviteCode(t, 1, 7)

	for i := 0; i < 3; i++ {
		inviteCode, err := CheckInviteCode(created.Code)
		if err != nil {
			t.Fatalf("validation %d failed: %v", i, err)
		}
		if inviteCode.CurrentUses != 0 {
			t.Fatalf("validation %d consumed a use", i)
		}
	}

	var reloaded InviteCode
	if err := DB.Take(&reloaded, created.ID).Error; err != nil {
		t.Fatal(err)
	}
	if reloaded.CurrentUses != 0 || reloaded.Status != InviteCodeStatusActive {
		t.Errorf("code mutated by validation: uses=%d status=%q", reloaded.CurrentUses, reloaded.Status)
	}
}

func TestCheckInviteCodeUnknown(t *testing.T) {
	_, err := CheckInviteCode("DOESNOTX")
	if !errors.Is(err, ErrInviteCodeNotFound) {
		t.Errorf("CheckInviteCode() = %v, want not found", err)
	}
}

func TestCheckInviteCodeCaseInsensitive(t *testing.T) {
	created := newTestInviteCode(t, 1, 7)

	inviteCode, err := CheckInviteCode(created.Code)
	if err != nil {
		t.Fatal(err)
	}
	lower, err := CheckInviteCode(toLower(created.Code))
	if err != nil {
		t.Fatal(err)
	}
	if inviteCode.ID != lower.ID {
		t.Error("lowercase lookup resolved a different code")
	}
}

func toLower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func TestRedeemSingleUse(t *testing.T) {
	created := newTestInviteCode(t, 1, 7)
	user := newTestAdmin(t)

	inviteCode, err := RedeemInviteCode(created.Code, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if inviteCode.CurrentUses != 1 {
		t.Errorf("current uses = %d, want 1", inviteCode.CurrentUses)
	}
	if inviteCode.Status != InviteCodeStatusUsed {
		t.Errorf("status = %q, want used", inviteCode.Status)
	}
	if inviteCode.UsedByID == nil || *inviteCode.UsedByID != user.ID {
		t.Errorf("used by = %v, want %d", inviteCode.UsedByID, user.ID)
	}
	if inviteCode.UsedAt == nil {
		t.Error("used at not set")
	}

	// the code is retired, so the second attempt sees an inactive status
	_, err = RedeemInviteCode(created.Code, user.ID)
	if !errors.Is(err, ErrInviteCodeInactive) {
		t.Errorf("second redemption = %v, want inactive", err)
	}
}

func TestRedeemMultiUse(t *testing.T) {
	created := newTestInviteCode(t, 2, 7)
	first := newTestAdmin(t)
	second := newTestAdmin(t)

	inviteCode, err := RedeemInviteCode(created.Code, first.ID)
	if err != nil {
		t.Fatal(err)
	}
	if inviteCode.CurrentUses != 1 || inviteCode.Status != InviteCodeStatusActive {
		t.Errorf("after first use: uses=%d status=%q, want 1 active", inviteCode.CurrentUses, inviteCode.Status)
	}

	inviteCode, err = RedeemInviteCode(created.Code, second.ID)
	if err != nil {
		t.Fatal(err)
	}
	if inviteCode.CurrentUses != 2 || inviteCode.Status != InviteCodeStatusUsed {
		t.Errorf("after second use: uses=%d status=%q, want 2 used", inviteCode.CurrentUses, inviteCode.Status)
	}
	if inviteCode.UsedByID == nil || *inviteCode.UsedByID != second.ID {
		t.Errorf("used by = %v, want the last redeemer %d", inviteCode.UsedByID, second.ID)
	}

	_, err = RedeemInviteCode(created.Code, first.ID)
	if !errors.Is(err, ErrInviteCodeInactive) {
		t.Errorf("third redemption = %v, want inactive", err)
	}
}

func TestRedeemExpired(t *testing.T) {
	created := newTestInviteCode(t, 1, 7)
	err := DB.Model(created).Update("expires_at", time.Now().Add(-time.Hour)).Error
	if err != nil {
		t.Fatal(err)
	}

	_, err = RedeemInviteCode(created.Code, 1)
	if !errors.Is(err, ErrInviteCodeExpired) {
		t.Errorf("RedeemInviteCode() = %v, want expired", err)
	}

	var reloaded InviteCode
	if err = DB.Take(&reloaded, created.ID).Error; err != nil {
		t.Fatal(err)
	}
	if reloaded.CurrentUses != 0 {
		t.Errorf("expired code consumed a use: %d", reloaded.CurrentUses)
	}
}

func TestRedeemUnknown(t *testing.T) {
	_, err := RedeemInviteCode("NOPE0000", 1)
	if !errors.Is(err, ErrInviteCodeNotFound) {
		t.Errorf("RedeemInviteCode() = %v, want not found", err)
	}
}

// Two redeemers that both read the last remaining use before either writes:
// the guarded update lets exactly one through. Shared-cache in-memory sqlite
// allows a single writer at a time and fails concurrent goroutines with
// SQLITE_BUSY, so the race is scripted as the stale-read interleave the
// guard exists to stop.
func TestConsumeUseGuardsLastUse(t *testing.T) {
	created := newTestInviteCode(t, 1, 7)

	firstView, err := LoadInviteCode(DB, created.Code)
	if err != nil {
		t.Fatal(err)
	}
	secondView, err := LoadInviteCode(DB, created.Code)
	if err != nil {
		t.Fatal(err)
	}
	if err = firstView.Check(time.Now()); err != nil {
		t.Fatal(err)
	}
	if err = secondView.Check(time.Now()); err != nil {
		t.Fatal(err)
	}

	if err = consumeUse(DB, firstView.ID, 7); err != nil {
		t.Fatalf("first writer failed: %v", err)
	}
	err = consumeUse(DB, secondView.ID, 9)
	if !errors.Is(err, ErrInviteCodeExhausted) {
		t.Fatalf("second writer = %v, want exhausted", err)
	}

	var reloaded InviteCode
	if err = DB.Take(&reloaded, created.ID).Error; err != nil {
		t.Fatal(err)
	}
	if reloaded.CurrentUses != 1 {
		t.Errorf("current uses = %d, want exactly 1", reloaded.CurrentUses)
	}
	if reloaded.UsedByID == nil || *reloaded.UsedByID != 7 {
		t.Errorf("used by = %v, want the winner 7", reloaded.UsedByID)
	}
}

func TestExpireInviteCodesTask(t *testing.T) {
	overdue := newTestInviteCode(t, 1, 7)
	err := DB.Model(overdue).Update("expires_at", time.Now().Add(-time.Hour)).Error
	if err != nil {
		t.Fatal(err)
	}
	fresh := newTestInviteCode(t, 1, 7)

	ExpireInviteCodesTask()

	var reloaded InviteCode
	if err = DB.Take(&reloaded, overdue.ID).Error; err != nil {
		t.Fatal(err)
	}
	if reloaded.Status != InviteCodeStatusExpired {
		t.Errorf("overdue code status = %q, want expired", reloaded.Status)
	}
	reloaded = InviteCode{}
	if err = DB.Take(&reloaded, fresh.ID).Error; err != nil {
		t.Fatal(err)
	}
	if reloaded.Status != InviteCodeStatusActive {
		t.Errorf("fresh code status = %q, want active", reloaded.Status)
	}
}
