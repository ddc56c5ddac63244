package store

import "golang.org/x/crypto/bcrypt"

type seedUser struct {
	username   string
	repairHero bool
}

var demoUsers = []seedUser{
	{username: "sarah_k", repairHero: true},
	{username: "miguel_r", repairHero: false},
	{username: "tom_w", repairHero: true},
}

// SeedDemoData inserts the demo accounts the marketplace ships with.
// Idempotent: existing usernames are left alone. Repair-hero status is
// only ever granted here, never through the API.
func SeedDemoData(s Storage) error {
	for _, seed := range demoUsers {
		existing, err := s.GetUserByUsername(seed.username)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user, err := s.CreateUser(NewUser{Username: seed.username, Password: string(hash)})
		if err != nil {
			return err
		}
		if seed.repairHero {
			hero := true
			if _, err := s.UpdateUser(user.ID, UserPatch{IsRepairHero: &hero}); err != nil {
				return err
			}
		}
	}
	return nil
}
