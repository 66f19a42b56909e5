package dropbox

import "context"

// Users is the account information group.
type Users struct {
	caller Caller
}

// GetCurrentAccount returns the account the access token belongs to.
func (u *Users) GetCurrentAccount(ctx context.Context) (Envelope, error) {
	return u.caller.RPC(ctx, "/users/get_current_account", nil)
}

// GetAccount returns an account by id.
func (u *Users) GetAccount(ctx context.Context, accountID string) (Envelope, error) {
	return u.caller.RPC(ctx, "/users/get_account", Params{"account_id": accountID})
}

// GetAccountBatch returns several accounts by id.
func (u *Users) GetAccountBatch(ctx context.Context, accountIDs []string) (Envelope, error) {
	return u.caller.RPC(ctx, "/users/get_account_batch", Params{"account_ids": accountIDs})
}

// GetSpaceUsage returns the space usage of the current account.
func (u *Users) GetSpaceUsage(ctx context.Context) (Envelope, error) {
	return u.caller.RPC(ctx, "/users/get_space_usage", nil)
}

// GetFeaturesValues returns the values of account features.
func (u *Users) GetFeaturesValues(ctx context.Context, features []UserFeature) (Envelope, error) {
	return u.caller.RPC(ctx, "/users/features/get_values", Params{"features": taggedList(features)})
}
