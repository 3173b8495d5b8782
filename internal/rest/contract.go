//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/lifeverse/dm-frontend/internal/model"
)

type AuthClient interface {
	Login(ctx context.Context, email, password string) (*model.LoginResponse, error)
}
