package contracts

// PermissionChecker answers whether a role may perform an action on a kind of
// resource at all, before any ownership check.
type PermissionChecker interface {
	IsAllowed(role, resource, action string) bool
}
