package roles

// Role is the permission level attached to a user account.
type Role string

const (
	Employee   Role = "employee"
	Admin      Role = "admin"
	Superadmin Role = "superadmin"
)

type HierarchyLevel int

const (
	EmployeeLevel   HierarchyLevel = 1
	AdminLevel      HierarchyLevel = 2
	SuperadminLevel HierarchyLevel = 3
)

func (r Role) GetHierarchyLevel() HierarchyLevel {
	switch r {
	case Employee:
		return EmployeeLevel
	case Admin:
		return AdminLevel
	case Superadmin:
		return SuperadminLevel
	default:
		return EmployeeLevel
	}
}

// HasPermission reports whether the role satisfies the required role.
func (r Role) HasPermission(requiredRole Role) bool {
	return r.GetHierarchyLevel() >= requiredRole.GetHierarchyLevel()
}

func (r Role) IsValid() bool {
	switch r {
	case Employee, Admin, Superadmin:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
