package patterns

import "github.com/veildoc/veildoc/internal/types"

var emailPatterns = []Pattern{
	{`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`, types.Email, 95, "email_standard"},
}
