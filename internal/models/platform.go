package models

// Platform is one of the fixed set of supported social networks.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
)

// Valid reports whether p is a member of the platform enum. Anything else
// is rejected at validation time, never coerced.
func (p Platform) Valid() bool {
	switch p {
	case PlatformTwitter, PlatformInstagram, PlatformTikTok:
		return true
	}
	return false
}

// ContentType is the kind of an ingested content item.
type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeVideo ContentType = "video"
)

// Valid reports whether t is a member of the content type enum.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeText, ContentTypeVideo:
		return true
	}
	return false
}
