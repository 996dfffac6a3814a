package rbac

import "github.com/saxena100parth/codriva-hrms-sub002/internal/user"

// Permission adalah satu baris policy bawaan.
type Permission struct {
	Role     string
	Resource string
	Action   string
	Label    string
}

// roleHierarchy: kiri mewarisi semua permission kanan.
var roleHierarchy = [][2]string{
	{user.RoleAdmin, user.RoleHR},
	{user.RoleHR, user.RoleEmployee},
}

var defaultPolicy = []Permission{
	{user.RoleEmployee, "leave", "create", "Apply for leave"},
	{user.RoleEmployee, "leave", "read", "View own leave requests"},
	{user.RoleEmployee, "leave", "cancel", "Cancel own leave requests"},
	{user.RoleEmployee, "leave_balance", "read", "View own leave balance"},
	{user.RoleEmployee, "holiday", "read", "View holiday calendar"},
	{user.RoleEmployee, "user", "read:own", "View own profile"},
	{user.RoleEmployee, "rbac", "read", "View own permissions"},

	{user.RoleHR, "leave", "read_all", "View all leave requests"},
	{user.RoleHR, "leave", "approve", "Approve or reject leave"},
	{user.RoleHR, "leave", "export", "Export leave report"},
	{user.RoleHR, "leave_balance", "read_all", "View any leave balance"},
	{user.RoleHR, "leave_balance", "update", "Adjust leave balance"},
	{user.RoleHR, "leave_balance", "reconcile", "Reconcile leave ledger"},
	{user.RoleHR, "holiday", "create", "Create holiday"},
	{user.RoleHR, "holiday", "delete", "Delete holiday"},
	{user.RoleHR, "onboarding", "invite", "Invite new joiner"},
	{user.RoleHR, "onboarding", "read", "View onboarding pipeline"},
	{user.RoleHR, "onboarding", "review", "Approve or reject onboarding"},
	{user.RoleHR, "user", "read", "View people directory"},
	{user.RoleHR, "user", "update", "Update people status and manager"},

	{user.RoleAdmin, "user", "change_role", "Change user role"},
	{user.RoleAdmin, "rbac", "enforce", "Check arbitrary role permissions"},
}
