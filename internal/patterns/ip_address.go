package patterns

import "github.com/veildoc/veildoc/internal/types"

var ipAddressPatterns = []Pattern{
	{`\b(?:(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\.){3}(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\b`, types.IPAddress, 95, "ipv4"},
	{`\b(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}\b`, types.IPAddress, 95, "ipv6_full"},
	{`\b(?:[0-9a-fA-F]{1,4}:){1,7}:\b`, types.IPAddress, 85, "ipv6_compressed"},
	{`\b::(?:[0-9a-fA-F]{1,4}:){0,6}[0-9a-fA-F]{1,4}\b`, types.IPAddress, 85, "ipv6_prefix"},
}
