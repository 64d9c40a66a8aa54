package basicform

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"

	"github.com/goliatone/go-boostform/pkg/optmap"
)

// Token signs action plus the sorted field and unlocked lists.
func (r *Renderer) Token(action string, fields, unlocked []string) string {
	locked := slices.Clone(fields)
	slices.Sort(locked)
	open := slices.Clone(unlocked)
	slices.Sort(open)

	mac := hmac.New(sha256.New, r.securityKey)
	mac.Write([]byte(action))
	mac.Write([]byte{0})
	mac.Write([]byte(strings.Join(locked, "|")))
	mac.Write([]byte{0})
	mac.Write([]byte(strings.Join(open, "|")))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyToken reports whether token matches the given form state.
func (r *Renderer) VerifyToken(token, action string, fields, unlocked []string) bool {
	if len(r.securityKey) == 0 {
		return false
	}
	expected := r.Token(action, fields, unlocked)
	return hmac.Equal([]byte(expected), []byte(token))
}

func (r *Renderer) tokenFields(action string, fields, unlocked []string) string {
	open := slices.Clone(unlocked)
	slices.Sort(open)

	var out strings.Builder
	out.WriteString(`<div style="display:none;">`)
	out.WriteString(r.UseTag("hidden", optmap.Map{
		"name":  "data[_Token][fields]",
		"value": r.Token(action, fields, unlocked),
	}))
	out.WriteString(r.UseTag("hidden", optmap.Map{
		"name":  "data[_Token][unlocked]",
		"value": strings.Join(open, "|"),
	}))
	out.WriteString("</div>")
	return out.String()
}
