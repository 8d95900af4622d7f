package auth

import "strings"

// PermissionSet is a flattened, lower-cased list of permission codes resolved
// at login time. It is a point-in-time snapshot; later role edits are not
// reflected until the next login.
type PermissionSet []string

// NewPermissionSet lower-cases and de-duplicates the given codes. Order is not
// significant.
func NewPermissionSet(codes []string) PermissionSet {
	seen := make(map[string]struct{}, len(codes))
	set := make(PermissionSet, 0, len(codes))
	for _, code := range codes {
		normalized := strings.ToLower(strings.TrimSpace(code))
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		set = append(set, normalized)
	}
	return set
}

// Can reports whether the set authorizes the required code. An empty required
// code always authorizes: the caller needs no permission.
func (s PermissionSet) Can(required string) bool {
	if required == "" {
		return true
	}
	required = strings.ToLower(required)
	for _, code := range s {
		if code == required {
			return true
		}
	}
	return false
}

// CanAny reports whether the set holds at least one of the required codes.
func (s PermissionSet) CanAny(required ...string) bool {
	if len(required) == 0 {
		return true
	}
	for _, code := range required {
		if code != "" && s.Can(code) {
			return true
		}
	}
	return false
}
