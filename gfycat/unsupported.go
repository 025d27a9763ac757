package gfycat

import (
	"context"
	"io"
)

// The operations below are part of the gfycat API but not supported by this
// client yet. Each returns an *APIError of kind ErrNotImplemented without
// touching the network.

// FollowUser follows the given user
func (c *Client) FollowUser(ctx context.Context, username string) error {
	return notImplemented("follow user")
}

// UnfollowUser stops following the given user
func (c *Client) UnfollowUser(ctx context.Context, username string) error {
	return notImplemented("unfollow user")
}

// IsFollowing checks whether the authenticated account follows username
func (c *Client) IsFollowing(ctx context.Context, username string) (bool, error) {
	return false, notImplemented("is following")
}

// Following lists the usernames the authenticated account follows
func (c *Client) Following(ctx context.Context) ([]string, error) {
	return nil, notImplemented("following")
}

// Followers lists the usernames following the authenticated account
func (c *Client) Followers(ctx context.Context) ([]string, error) {
	return nil, notImplemented("followers")
}

// Albums lists the albums of the given user
func (c *Client) Albums(ctx context.Context, userID string) ([]Collection, error) {
	return nil, notImplemented("albums")
}

// Folders lists the folders of the authenticated account
func (c *Client) Folders(ctx context.Context) ([]Collection, error) {
	return nil, notImplemented("folders")
}

// Bookmarks lists the bookmark folders of the authenticated account
func (c *Client) Bookmarks(ctx context.Context) ([]Collection, error) {
	return nil, notImplemented("bookmarks")
}

// UserFeed lists the published gfycats of the given user
func (c *Client) UserFeed(ctx context.Context, userID string) ([]*MediaItem, error) {
	return nil, notImplemented("user feed")
}

// UploadProfileImage replaces the profile image of the authenticated account
func (c *Client) UploadProfileImage(ctx context.Context, image io.Reader) error {
	return notImplemented("upload profile image")
}

// CreateAccount registers a new account
func (c *Client) CreateAccount(ctx context.Context, account NewAccount) error {
	return notImplemented("create account")
}

// UpdateUserDetails applies changes to the authenticated profile
func (c *Client) UpdateUserDetails(ctx context.Context, updates ...UserDetailUpdate) error {
	return notImplemented("update user details")
}
