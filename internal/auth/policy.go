package auth

import "feedbackboard/internal/model"

// Access rules evaluated by handlers before any mutation. The requester is
// the identity from the current session, empty when anonymous.

// CanViewProfile reports whether the requester may view a profile page. Any
// logged-in user qualifies, not just the profile owner.
func CanViewProfile(requester string) bool {
	return requester != ""
}

// CanModifyUser reports whether the requester may act on the target account.
func CanModifyUser(requester, target string) bool {
	return requester != "" && requester == target
}

// CanModifyFeedback reports whether the requester owns the feedback.
func CanModifyFeedback(requester string, fb *model.Feedback) bool {
	return fb != nil && requester != "" && requester == fb.Username
}
