//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package backend

import "github.com/lifeverse/dm-frontend/internal/model"

// TokenStore is the single shared auth state. The client reads it on every
// request and writes it back after a successful rotation.
type TokenStore interface {
	Get() (model.TokenPair, bool)
	Set(pair model.TokenPair) error
	Clear() error
}
