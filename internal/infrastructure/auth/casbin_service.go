package auth

import (
	"github.com/casbin/casbin/v2"
)

type CasbinService struct{ E *casbin.Enforcer }

// NewCasbinService builds an enforcer from the model and csv policy files.
// Policies are static; there is no runtime policy mutation surface.
func NewCasbinService(modelPath, policyPath string) (*CasbinService, error) {
	E, err := casbin.NewEnforcer(modelPath, policyPath)
	if err != nil {
		return nil, err
	}
	if err := E.LoadPolicy(); err != nil {
		return nil, err
	}
	return &CasbinService{E}, nil
}
