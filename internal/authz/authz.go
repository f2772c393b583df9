package authz

// Roles are a flat set. There is no hierarchy: every permission is read off
// the policy table, never derived from another role's rights.
type Role string

const (
	SystemAdmin Role = "SystemAdmin"
	Admin       Role = "Admin"
	Readit      Role = "Readit" // instructor role, historical name
	User        Role = "User"
)

func (r Role) Valid() bool {
	switch r {
	case SystemAdmin, Admin, Readit, User:
		return true
	}
	return false
}

func AllRoles() []Role {
	return []Role{SystemAdmin, Admin, Readit, User}
}

type Resource string

const (
	ResCourses     Resource = "courses"
	ResAssignments Resource = "assignments"
	ResPersonnel   Resource = "personnel"
	ResCrews       Resource = "crews"
	ResEquipment   Resource = "equipment"
	ResKnowledge   Resource = "knowledge"
	ResUsers       Resource = "users"
	ResFiles       Resource = "files"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionDelete Action = "delete"
)

// policy maps (resource, action) to the explicit allow-list. Read access to
// courses/knowledge is open to every role; the course access gate narrows
// what a User actually sees on top of this.
var policy = map[Resource]map[Action][]Role{
	ResCourses: {
		ActionRead:   {SystemAdmin, Admin, Readit, User},
		ActionWrite:  {SystemAdmin, Admin, Readit},
		ActionDelete: {SystemAdmin, Admin},
	},
	ResAssignments: {
		ActionRead:   {SystemAdmin, Admin, Readit},
		ActionWrite:  {SystemAdmin, Admin, Readit},
		ActionDelete: {SystemAdmin, Admin},
	},
	ResPersonnel: {
		ActionRead:   {SystemAdmin, Admin, Readit},
		ActionWrite:  {SystemAdmin, Admin},
		ActionDelete: {SystemAdmin, Admin},
	},
	ResCrews: {
		ActionRead:   {SystemAdmin, Admin, Readit, User},
		ActionWrite:  {SystemAdmin, Admin},
		ActionDelete: {SystemAdmin, Admin},
	},
	ResEquipment: {
		ActionRead:   {SystemAdmin, Admin, Readit, User},
		ActionWrite:  {SystemAdmin, Admin},
		ActionDelete: {SystemAdmin, Admin},
	},
	ResKnowledge: {
		ActionRead:   {SystemAdmin, Admin, Readit, User},
		ActionWrite:  {SystemAdmin, Admin, Readit},
		ActionDelete: {SystemAdmin, Admin},
	},
	ResUsers: {
		ActionRead:  {SystemAdmin, Admin},
		ActionWrite: {SystemAdmin},
	},
	ResFiles: {
		ActionRead:   {SystemAdmin, Admin, Readit, User},
		ActionWrite:  {SystemAdmin, Admin, Readit},
		ActionDelete: {SystemAdmin, Admin},
	},
}

func Allowed(role Role, res Resource, act Action) bool {
	actions, ok := policy[res]
	if !ok {
		return false
	}
	for _, r := range actions[act] {
		if r == role {
			return true
		}
	}
	return false
}
