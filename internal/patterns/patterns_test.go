package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veildoc/veildoc/internal/types"
)

func TestRegistryCompiles(t *testing.T) {
	// Every pattern source must survive compilation; a drop here means a
	// regex regressed.
	assert.Equal(t, len(allPatterns()), Count())
	assert.Contains(t, Names(), "email_standard")
	assert.Contains(t, Names(), "phone_international")
	assert.Contains(t, Names(), "iban_nl")
}

func TestCompileAllSkipsBadPattern(t *testing.T) {
	specs := []Pattern{
		{Expr: `\d{3}`, EntityType: types.NationalID, Confidence: 70, Name: "ok"},
		{Expr: `(unclosed`, EntityType: types.NationalID, Confidence: 70, Name: "broken"},
		{Expr: `[a-z]+`, EntityType: types.Email, Confidence: 60, Name: "also_ok"},
	}
	compiled := compileAll(specs)
	require.Len(t, compiled, 2)
	assert.Equal(t, "ok", compiled[0].spec.Name)
	assert.Equal(t, "also_ok", compiled[1].spec.Name)
}

func TestDetectOffsets(t *testing.T) {
	text := "please mail john@example.com soon"
	var email *types.Candidate
	for _, c := range Detect(text) {
		if c.Source == "pattern:email_standard" {
			email = &c
			break
		}
	}
	require.NotNil(t, email, "email pattern did not fire")
	assert.Equal(t, "john@example.com", email.Value)
	assert.Equal(t, email.Value, text[email.Start:email.End])
	assert.Equal(t, 95, email.Confidence)
}

func TestDetectByEntityType(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		entity types.EntityType
	}{
		{"email", "reach me at jane.doe+x@corp.example.org", types.Email},
		{"phone international", "call +31 6 12345678 today", types.PhoneNumber},
		{"ipv4", "server at 192.168.1.100 is down", types.IPAddress},
		{"iso date", "filed on 2024-01-15 by the clerk", types.Date},
		{"chinese date", "合同签署于2020年1月15日生效", types.Date},
		{"korean date", "2021년 3월 1일 서울", types.Date},
		{"url", "see https://example.com/case/42 for details", types.URL},
		{"iban", "transfer to NL91ABNA0417164300 please", types.BankAccount},
		{"ssn", "SSN 123-45-6789 on record", types.NationalID},
		{"dob", "DOB: 12/05/1980 confirmed", types.DateOfBirth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := false
			for _, c := range Detect(tt.text) {
				if c.EntityType == tt.entity {
					found = true
					break
				}
			}
			assert.True(t, found, "no %s candidate in %q", tt.entity, tt.text)
		})
	}
}

func TestLuhnGateDropsInvalidCards(t *testing.T) {
	valid := "card 4111 1111 1111 1111 on file"
	invalid := "card 4111 1111 1111 1112 on file"

	hasCard := func(cands []types.Candidate) bool {
		for _, c := range cands {
			if c.EntityType == types.CreditCard {
				return true
			}
		}
		return false
	}

	assert.True(t, hasCard(Detect(invalid)), "raw detection should still match structurally")
	assert.True(t, hasCard(DetectWithValidation(valid)))
	assert.False(t, hasCard(DetectWithValidation(invalid)), "failed Luhn must be dropped")
}

func TestValidatorBoost(t *testing.T) {
	confOf := func(text, source string) int {
		for _, c := range DetectWithValidation(text) {
			if c.Source == source {
				return c.Confidence
			}
		}
		return -1
	}

	// Valid BSN gets the boost, invalid keeps base confidence.
	assert.Equal(t, 75, confOf("bsn 111222333 x", "pattern:bsn_nl"))
	assert.Equal(t, 70, confOf("bsn 111222334 x", "pattern:bsn_nl"))

	// Valid IBAN is boosted and capped at 100.
	assert.Equal(t, 100, confOf("acct NL91ABNA0417164300 x", "pattern:iban"))
}

func TestCJKPatternsFireWithoutWordBoundary(t *testing.T) {
	// ASCII \b never matches adjacent to CJK text, so these patterns must
	// work embedded in running prose.
	tests := []struct {
		text   string
		source string
	}{
		{"联系微信号 zhang_wei88 咨询", "pattern:wechat_id"},
		{"事故发生于2019年12月3日深夜", "pattern:date_chinese"},
	}
	for _, tt := range tests {
		found := false
		for _, c := range Detect(tt.text) {
			if c.Source == tt.source {
				found = true
				break
			}
		}
		assert.True(t, found, "%s did not fire in %q", tt.source, tt.text)
	}
}
