package rbac

import (
	"sort"
	"sync"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

const ownSuffix = ":own"

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	// Authorize memeriksa capability penuh dulu, lalu "<action>:own" bila actor pemilik target.
	Authorize(role, actorID, ownerID, resource, action string) (bool, error)
	Permissions(role string) ([]domain.PermissionResponse, error)
}

type service struct {
	enforcer *casbin.Enforcer
	labels   map[string]string
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	s := &service{
		enforcer: enforcer,
		labels:   make(map[string]string, len(defaultPolicy)),
		logger:   l,
	}
	if err := s.loadPolicy(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) loadPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for _, g := range roleHierarchy {
		if _, err := s.enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return err
		}
	}
	for _, p := range defaultPolicy {
		if _, err := s.enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return err
		}
		s.labels[p.Resource+":"+p.Action] = p.Label
	}

	s.logger.Info("rbac policy loaded",
		zap.Int("grouping", len(roleHierarchy)),
		zap.Int("permissions", len(defaultPolicy)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) Authorize(role, actorID, ownerID, resource, action string) (bool, error) {
	allowed, err := s.Enforce(domain.EnforceRequest{Role: role, Resource: resource, Action: action})
	if err != nil || allowed {
		return allowed, err
	}
	if actorID == "" || actorID != ownerID {
		return false, nil
	}
	return s.Enforce(domain.EnforceRequest{Role: role, Resource: resource, Action: action + ownSuffix})
}

func (s *service) Permissions(role string) ([]domain.PermissionResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PermissionResponse, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		out = append(out, domain.PermissionResponse{
			Resource: rule[1],
			Action:   rule[2],
			Label:    s.labels[rule[1]+":"+rule[2]],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Resource != out[j].Resource {
			return out[i].Resource < out[j].Resource
		}
		return out[i].Action < out[j].Action
	})
	return out, nil
}
