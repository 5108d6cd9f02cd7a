package models

// AllModels lists every table for idempotent startup migration
func AllModels() []interface{} {
	return []interface{}{
		&Image{},
		&Company{},
		&Member{},
		&User{},
		&Event{},
		&Notification{},
		&Badge{},
		&MemberBadge{},
		&Follower{},
		&SocialLink{},
		&ExternalLink{},
	}
}
