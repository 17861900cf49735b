package fsdk

import (
	"context"
	"fmt"
)

const adminUsersPath = "/api/admin/users"

// AdminService covers user administration. All calls require the admin
// role; others get a 403 from the backend.
type AdminService struct {
	sdk *Sdk
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

func (s *AdminService) ListUsers(ctx context.Context, opts ListOptions) ([]User, error) {
	var users []User
	if err := s.sdk.get(ctx, adminUsersPath, opts.values(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	return s.sdk.delete(ctx, fmt.Sprintf("%s/%d", adminUsersPath, id))
}

func (s *AdminService) UpdateUserRole(ctx context.Context, id int64, role string) (*User, error) {
	switch role {
	case RoleAdmin, RoleAccountant, RoleViewer:
	default:
		return nil, validationError("role", fmt.Sprintf("unknown role %q", role))
	}
	var user User
	if err := s.sdk.put(ctx, fmt.Sprintf("%s/%d/role", adminUsersPath, id), updateRoleRequest{Role: role}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
