package patterns

import "github.com/veildoc/veildoc/internal/types"

var onlinePatterns = []Pattern{
	// URLs
	{"\\bhttps?://[^\\s<>\"{}|\\\\^`\\[\\]]+", types.URL, 95, "url"},
	// Social handles
	{`@[A-Za-z0-9_]{1,15}\b`, types.AccountUsername, 80, "twitter_handle"},
	{`@[A-Za-z0-9_.]{1,30}\b`, types.AccountUsername, 75, "instagram_handle"},
	// WeChat ID. No leading \b: ASCII word boundaries never fire before CJK.
	{`微信[号:]?\s?[A-Za-z0-9_-]{6,20}\b`, types.AccountUsername, 85, "wechat_id"},
	// Labeled usernames
	{`\b(?:username|user|login|account|用户名|ユーザー名)[\s:]+[A-Za-z0-9_.-]+\b`, types.AccountUsername, 85, "username_labeled"},
}
