package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		role Role
		res  Resource
		act  Action
		want bool
	}{
		{User, ResCourses, ActionRead, true},
		{User, ResCourses, ActionWrite, false},
		{User, ResCourses, ActionDelete, false},
		{Readit, ResCourses, ActionWrite, true},
		{Readit, ResCourses, ActionDelete, false},
		{Admin, ResCourses, ActionDelete, true},
		{SystemAdmin, ResCourses, ActionDelete, true},

		{User, ResAssignments, ActionRead, false},
		{Readit, ResAssignments, ActionWrite, true},
		{Readit, ResAssignments, ActionDelete, false},

		{User, ResPersonnel, ActionRead, false},
		{Readit, ResPersonnel, ActionRead, true},
		{Readit, ResPersonnel, ActionWrite, false},
		{Admin, ResPersonnel, ActionWrite, true},

		{User, ResCrews, ActionRead, true},
		{User, ResCrews, ActionWrite, false},

		{User, ResKnowledge, ActionRead, true},
		{Readit, ResKnowledge, ActionWrite, true},
		{User, ResKnowledge, ActionWrite, false},

		{Admin, ResUsers, ActionRead, true},
		{Admin, ResUsers, ActionWrite, false},
		{SystemAdmin, ResUsers, ActionWrite, true},
		{Readit, ResUsers, ActionRead, false},

		{User, ResFiles, ActionWrite, false},
		{Readit, ResFiles, ActionWrite, true},
	}

	for _, tc := range cases {
		got := Allowed(tc.role, tc.res, tc.act)
		assert.Equal(t, tc.want, got, "%s %s %s", tc.role, tc.res, tc.act)
	}
}

func TestAllowed_UnknownInputs(t *testing.T) {
	assert.False(t, Allowed("Ghost", ResCourses, ActionRead))
	assert.False(t, Allowed(Admin, Resource("widgets"), ActionRead))
	assert.False(t, Allowed(Admin, ResUsers, Action("transmogrify")))
}

func TestRoleValid(t *testing.T) {
	for _, r := range AllRoles() {
		assert.True(t, r.Valid())
	}
	assert.False(t, Role("Superuser").Valid())
	assert.False(t, Role("").Valid())
}
