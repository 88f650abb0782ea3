// Command seed creates a faculty account with login credentials and
// fills its scope with starter records. Intended for first-time setup
// of the credentials auth mode.
package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/unicampus/portal/bootstrap"
	"github.com/unicampus/portal/config"
	"github.com/unicampus/portal/database"
	"github.com/unicampus/portal/models"
)

func main() {
	cfg := config.Load()
	log := config.NewLogger(cfg.AppEnv)
	defer func() { _ = log.Sync() }()

	st, err := database.OpenStore(cfg)
	if err != nil {
		log.Fatal("open store failed", zap.Error(err))
	}

	ctx := context.Background()
	username := "faculty"
	password := "faculty123"

	users, err := st.Users.List(ctx)
	if err != nil {
		log.Fatal("list users failed", zap.Error(err))
	}
	for _, u := range users {
		if u.Username == username {
			log.Info("faculty user already exists", zap.String("username", username))
			return
		}
	}

	f, err := st.Faculty.Create(ctx, "", models.Faculty{
		FacultyCode: "F-100",
		Name:        "Dr. Anil Krishnan",
		Department:  "CS",
		Email:       "anil@example.edu",
	})
	if err != nil {
		log.Fatal("create faculty failed", zap.Error(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("hash password failed", zap.Error(err))
	}
	if _, err := st.Users.Create(ctx, "", models.User{
		Username:  username,
		Password:  string(hash),
		Role:      models.RoleFaculty,
		Name:      f.Name,
		ProfileID: f.ID,
	}); err != nil {
		log.Fatal("create user failed", zap.Error(err))
	}

	if err := bootstrap.Seed(ctx, st, f.ID); err != nil {
		log.Fatal("seed starter records failed", zap.Error(err))
	}

	fmt.Println("faculty account created")
	fmt.Println("  username:", username)
	fmt.Println("  password:", password)
}
