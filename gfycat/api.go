package gfycat

import (
	"context"
	"io"
)

// API defines the interface for gfycat operations
type API interface {
	// UsernameAvailable checks whether a username is still free
	UsernameAvailable(ctx context.Context, username string) (bool, error)

	// EmailVerified checks the authenticated account's email status
	EmailVerified(ctx context.Context) (bool, error)

	// SendVerificationEmail requests a verification email
	SendVerificationEmail(ctx context.Context) error

	// ResetPassword requests a password reset email
	ResetPassword(ctx context.Context, email string) error

	// User retrieves a public profile
	User(ctx context.Context, id string) (*User, error)

	// Self retrieves the authenticated profile
	Self(ctx context.Context) (*SelfUser, error)

	// MediaItem retrieves gfycat metadata
	MediaItem(ctx context.Context, id string) (*MediaItem, error)

	// MediaItems retrieves several gfycats concurrently
	MediaItems(ctx context.Context, ids []string) ([]*MediaItem, error)

	// Refresh replaces the access token
	Refresh(ctx context.Context) error

	FollowUser(ctx context.Context, username string) error
	UnfollowUser(ctx context.Context, username string) error
	IsFollowing(ctx context.Context, username string) (bool, error)
	Following(ctx context.Context) ([]string, error)
	Followers(ctx context.Context) ([]string, error)
	Albums(ctx context.Context, userID string) ([]Collection, error)
	Folders(ctx context.Context) ([]Collection, error)
	Bookmarks(ctx context.Context) ([]Collection, error)
	UserFeed(ctx context.Context, userID string) ([]*MediaItem, error)
	UploadProfileImage(ctx context.Context, image io.Reader) error
	CreateAccount(ctx context.Context, account NewAccount) error
	UpdateUserDetails(ctx context.Context, updates ...UserDetailUpdate) error
}

var _ API = (*Client)(nil)
