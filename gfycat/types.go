package gfycat

import (
	"strings"
	"time"
)

// User represents a public gfycat profile
type User struct {
	UserID           string `json:"userid"`
	Username         string `json:"username"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	ProfileURL       string `json:"profileUrl"`
	URL              string `json:"url"`
	ProfileImageURL  string `json:"profileImageUrl"`
	CreateDate       int64  `json:"createDate"`
	Views            int64  `json:"views"`
	Followers        int64  `json:"followers"`
	Following        int64  `json:"following"`
	PublishedGfycats int64  `json:"publishedGfycats"`
	PublishedAlbums  int64  `json:"publishedAlbums"`
	Verified         bool   `json:"verified"`
}

var userRequired = []string{
	"userid", "username", "name", "description", "profileUrl", "url",
	"profileImageUrl", "createDate", "views", "followers", "following",
	"publishedGfycats", "publishedAlbums", "verified",
}

// GetDisplayName returns the best available display name for the user
func (u *User) GetDisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// CreatedAt returns the account creation time
func (u *User) CreatedAt() time.Time {
	return unixTime(u.CreateDate)
}

// SelfUser represents the profile of the authenticated account
type SelfUser struct {
	User
	Email                     string   `json:"email"`
	EmailVerified             bool     `json:"emailVerified"`
	CanonicalUsername         string   `json:"canonicalUsername"`
	UploadNotices             bool     `json:"uploadNotices"`
	TotalGfycats              int64    `json:"totalGfycats"`
	TotalBookmarks            int64    `json:"totalBookmarks"`
	TotalAlbums               int64    `json:"totalAlbums"`
	IframeProfileImageVisible bool     `json:"iframeProfileImageVisible"`
	GeoWhitelist              []string `json:"geoWhitelist"`
	DomainWhitelist           []string `json:"domainWhitelist"`
}

var selfUserRequired = append(append([]string{}, userRequired...),
	"email", "emailVerified", "canonicalUsername", "uploadNotices",
	"totalGfycats", "totalBookmarks", "totalAlbums", "iframeProfileImageVisible",
	"geoWhitelist", "domainWhitelist",
)

// MediaItem represents the metadata of a single gfycat.
//
// GifSize, MD5, LanguageCategories, Subreddit, RedditID and RedditIDText are
// nil when the service omits them.
type MediaItem struct {
	GfyID     string `json:"gfyId"`
	GfyName   string `json:"gfyName"`
	GfyNumber string `json:"gfyNumber"`

	Title       string   `json:"title"`
	Description string   `json:"description"`
	Username    string   `json:"userName"`
	Tags        []string `json:"tags"`
	NSFW        string   `json:"nsfw"`
	CreateDate  int64    `json:"createDate"`
	Published   int      `json:"published"`
	Views       int64    `json:"views"`
	Likes       int64    `json:"likes"`
	Dislikes    int64    `json:"dislikes"`

	// Renditions
	WebmURL           string `json:"webmUrl"`
	GifURL            string `json:"gifUrl"`
	MP4URL            string `json:"mp4Url"`
	MobileURL         string `json:"mobileUrl"`
	MobilePosterURL   string `json:"mobilePosterUrl"`
	MiniURL           string `json:"miniUrl"`
	PosterURL         string `json:"posterUrl"`
	Thumb100PosterURL string `json:"thumb100PosterUrl"`
	FiveMBGif         string `json:"max5mbGif"`
	TwoMBGif          string `json:"max2mbGif"`
	OneMBGif          string `json:"max1mbGif"`
	HundredPxGif      string `json:"gif100px"`

	// Media properties
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	AvgColor  string  `json:"avgColor"`
	FrameRate float64 `json:"frameRate"`
	NumFrames int64   `json:"numFrames"`
	MP4Size   int64   `json:"mp4Size"`
	WebmSize  int64   `json:"webmSize"`
	GifSize   *int64  `json:"gifSize,omitempty"`
	MD5       *string `json:"md5,omitempty"`

	LanguageText       string   `json:"languageText"`
	LanguageCategories []string `json:"languageCategories,omitempty"`
	Subreddit          *string  `json:"subreddit,omitempty"`
	RedditID           *string  `json:"redditId,omitempty"`
	RedditIDText       *string  `json:"redditIdText,omitempty"`
	DomainWhitelist    []string `json:"domainWhitelist"`
}

var mediaItemRequired = []string{
	"gfyId", "gfyName", "gfyNumber",
	"title", "description", "userName", "tags", "nsfw", "createDate",
	"published", "views", "likes", "dislikes",
	"webmUrl", "gifUrl", "mp4Url", "mobileUrl", "mobilePosterUrl", "miniUrl",
	"posterUrl", "thumb100PosterUrl", "max5mbGif", "max2mbGif", "max1mbGif", "gif100px",
	"width", "height", "avgColor", "frameRate", "numFrames", "mp4Size", "webmSize",
	"languageText", "domainWhitelist",
}

// IsNSFW checks if the item is flagged as not safe for work
func (m *MediaItem) IsNSFW() bool {
	return m.NSFW != "" && m.NSFW != "0"
}

// IsPublished checks if the item is publicly listed
func (m *MediaItem) IsPublished() bool {
	return m.Published == 1
}

// CreatedAt returns the upload time
func (m *MediaItem) CreatedAt() time.Time {
	return unixTime(m.CreateDate)
}

// Duration returns the playback length derived from frame count and rate
func (m *MediaItem) Duration() time.Duration {
	if m.FrameRate <= 0 {
		return 0
	}
	return time.Duration(float64(m.NumFrames) / m.FrameRate * float64(time.Second))
}

// HasTag checks if the item carries the given tag, ignoring case
func (m *MediaItem) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Collection is an album, folder or bookmark folder
type Collection struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// NewAccount holds the fields needed to register an account
type NewAccount struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// UserDetailUpdate is a single JSON-patch style change to the authenticated profile
type UserDetailUpdate struct {
	Operation string `json:"op"`
	Path      string `json:"path"`
	Value     any    `json:"value,omitempty"`
}

func unixTime(sec int64) time.Time {
	if sec > 0 {
		return time.Unix(sec, 0)
	}
	return time.Time{}
}
