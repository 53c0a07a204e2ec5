package models

import (
	"testing"
)

func TestOrganizationOwnsItsRecords(t *testing.T) {
	for _, relation := range []string{"Users", "Items", "InviteCodes", "Reports", "Notifications"} {
		if !DB.Migrator().HasConstraint(&Organization{}, relation) {
			t.Errorf("organization has no foreign key for %s", relation)
		}
	}
	if !DB.Migrator().HasConstraint(&User{}, "Notifications") {
		t.Error("user has no foreign key for Notifications")
	}
}

func TestDefaultOrganizationAllowsPublicRegistration(t *testing.T) {
	var organization Organization
	err := DB.Take(&organization, "code = ?", DefaultOrganizationCode).Error
	if err != nil {
		t.Fatal(err)
	}
	if !organization.Settings.AllowPublicRegistration {
		t.Error("seeded default organization refuses public registration")
	}
	if organization.Settings.RequireInviteCode {
		t.Error("seeded default organization requires an invite code")
	}
}
