package resources

import (
	_ "embed"
)

//go:embed rbac_model.conf
var RBACModel string

//go:embed rbac_policy.csv
var RBACPolicy string
