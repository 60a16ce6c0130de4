package client

// Session is the client-side login state: anonymous, or exactly one of the
// two roles with its profile. Modeling it as a single tagged value is what
// guarantees the roles stay mutually exclusive.
type Session struct {
	role    Role
	profile Profile
}

func Anonymous() Session {
	return Session{}
}

func StudentSession(profile Profile) Session {
	return Session{role: RoleStudent, profile: profile}
}

func VendorSession(profile Profile) Session {
	return Session{role: RoleVendor, profile: profile}
}

func (s Session) Anonymous() bool {
	return !s.role.valid()
}

// Role reports the active role; ok is false for an anonymous session.
func (s Session) Role() (Role, bool) {
	return s.role, s.role.valid()
}

func (s Session) Profile() (Profile, bool) {
	return s.profile, s.role.valid()
}
