package domain_test

import (
	"testing"

	"github.com/AvihaiAdler/onereport/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRole_Level(t *testing.T) {
	assert.Less(t, domain.RoleAdmin.Level(), domain.RoleManager.Level())
	assert.Less(t, domain.RoleManager.Level(), domain.RoleUser.Level())
	assert.Equal(t, -1, domain.Role("CLERK").Level())
}

func TestIsPermitted_AllPairs(t *testing.T) {
	permitted := map[domain.Role]map[domain.Role]bool{
		domain.RoleAdmin:   {domain.RoleAdmin: true, domain.RoleManager: true, domain.RoleUser: true},
		domain.RoleManager: {domain.RoleAdmin: false, domain.RoleManager: true, domain.RoleUser: true},
		domain.RoleUser:    {domain.RoleAdmin: false, domain.RoleManager: false, domain.RoleUser: true},
	}

	for _, actor := range domain.Roles() {
		for _, target := range domain.Roles() {
			assert.Equal(t, permitted[actor][target], domain.IsPermitted(actor, target),
				"actor %s target %s", actor, target)
		}
	}
}

func TestIsPermitted_InvalidRoles(t *testing.T) {
	assert.False(t, domain.IsPermitted(domain.Role(""), domain.RoleUser))
	assert.False(t, domain.IsPermitted(domain.RoleAdmin, domain.Role("SUPERUSER")))
}

func TestCompany_Valid(t *testing.T) {
	for _, c := range domain.Companies() {
		assert.True(t, c.Valid())
	}
	assert.False(t, domain.Company("D").Valid())
	assert.False(t, domain.Company("").Valid())
}

func TestPlatoon_Valid(t *testing.T) {
	assert.True(t, domain.PlatoonUncategorized.Valid())
	for _, p := range []string{"1", "5", "9"} {
		assert.True(t, domain.Platoon(p).Valid())
	}
	assert.False(t, domain.Platoon("0").Valid())
	assert.False(t, domain.Platoon("10").Valid())
}

func TestActive_RoundTrip(t *testing.T) {
	assert.True(t, domain.StatusActive.Bool())
	assert.False(t, domain.StatusInactive.Bool())
	assert.Equal(t, domain.StatusActive, domain.ActiveFromBool(true))
	assert.Equal(t, domain.StatusInactive, domain.ActiveFromBool(false))
	assert.False(t, domain.Active("RETIRED").Valid())
}
