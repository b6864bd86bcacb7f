package dashboard

// CurrentProfile returns the read-only account card.
func CurrentProfile() Profile {
	return defaultProfile
}
