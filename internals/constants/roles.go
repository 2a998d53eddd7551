package constants

// Departemen yang membatasi akses route (prefix /ppic dan /produksi).
const (
	DepartmentPPIC     = "ppic"
	DepartmentProduksi = "produksi"
)

// Role dalam masing-masing departemen.
const (
	RoleManagerPPIC     = "managerppic"
	RoleStaffPPIC       = "staffppic"
	RoleManagerProduksi = "managerproduksi"
	RoleStaffProduksi   = "staffproduksi"
)

// Status akun user.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

var ValidDepartments = []string{DepartmentPPIC, DepartmentProduksi}
