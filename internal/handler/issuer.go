package handler

import (
	"context"

	"github.com/dfwpark/dfw-parking/internal/repository"
	"github.com/dfwpark/dfw-parking/internal/utils"
)

// JWTIssuer implements tokenIssuer on top of the utils token helpers
// and the refresh token repository.
type JWTIssuer struct {
	Secret         string
	AccessTTLMin   int
	RefreshTTLDays int
	Tokens         *repository.TokenRepo
}

// IssuePair signs a new access token and stores a new refresh token
// hash for the account.
func (i JWTIssuer) IssuePair(ctx context.Context, accountID uint64, role string) (tokenPart, tokenPart, error) {
	access, err := utils.NewAccessToken(i.Secret, accountID, role, i.AccessTTLMin)
	if err != nil {
		return tokenPart{}, tokenPart{}, err
	}
	refresh, err := utils.NewRefreshToken(i.RefreshTTLDays)
	if err != nil {
		return tokenPart{}, tokenPart{}, err
	}
	if err := i.Tokens.StoreRefresh(ctx, accountID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return tokenPart{}, tokenPart{}, err
	}
	return tokenPart{Token: access.Token, Expires: access.Exp},
		tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, nil
}

func verifyPassword(hash, plain string) bool { return utils.VerifyPassword(hash, plain) }

func hashRefresh(raw string) string { return utils.HashRefreshRaw(raw) }
