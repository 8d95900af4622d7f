package cmd

import (
	"fmt"
	"log"

	"github.com/kitchenops/admin-api/internal/auth"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with the canonical permission codes, an administrator role and an admin user.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		db, err := initGorm(sqlDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		// the codes the sidebar menu gates on
		permissions := []string{"dashboard", "order_management", "help", "access"}

		for _, title := range permissions {
			var pid int64
			row := db.Raw("SELECT id FROM permissions WHERE title = ? AND deleted_at IS NULL", title).Row()
			if err := row.Scan(&pid); err != nil {
				if err := db.Exec("INSERT INTO permissions (title, created_at, updated_at) VALUES (?, now(), now())", title).Error; err != nil {
					log.Fatalf("failed to insert permission %s: %v", title, err)
				}
				fmt.Println("Seeded permission:", title)
			}
		}

		roleTitle := "Administrator"
		var roleID int64
		row := db.Raw("SELECT id FROM roles WHERE title = ? AND deleted_at IS NULL", roleTitle).Row()
		if err := row.Scan(&roleID); err != nil {
			if err := db.Exec("INSERT INTO roles (title, created_at, updated_at) VALUES (?, now(), now())", roleTitle).Error; err != nil {
				log.Fatalf("failed to insert role %s: %v", roleTitle, err)
			}
			if err := db.Raw("SELECT id FROM roles WHERE title = ?", roleTitle).Row().Scan(&roleID); err != nil {
				log.Fatalf("failed to lookup role id: %v", err)
			}
			fmt.Println("Seeded role:", roleTitle)
		}

		for _, title := range permissions {
			var pid int64
			if err := db.Raw("SELECT id FROM permissions WHERE title = ?", title).Row().Scan(&pid); err != nil {
				log.Fatalf("permission not found after insert %s: %v", title, err)
			}

			var exists int
			if err := db.Raw("SELECT 1 FROM permission_role WHERE role_id = ? AND permission_id = ?", roleID, pid).Row().Scan(&exists); err == nil {
				continue
			}

			if err := db.Exec("INSERT INTO permission_role (permission_id, role_id) VALUES (?, ?)", pid, roleID).Error; err != nil {
				log.Fatalf("failed to attach permission %s to role: %v", title, err)
			}
		}
		fmt.Println("Attached all permissions to role:", roleTitle)

		adminEmail := "admin@kitchenops.local"
		var exists int
		if err := db.Raw("SELECT 1 FROM users WHERE email = ?", adminEmail).Row().Scan(&exists); err == nil {
			fmt.Println("admin user already exists:", adminEmail)
			return
		}

		// seeded credentials are always hashed, never plaintext
		hash, err := auth.HashPassword("password", bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}

		if err := db.Exec(
			"INSERT INTO users (name, email, password, role_id, created_at, updated_at) VALUES (?, ?, ?, ?, now(), now())",
			"Administrator", adminEmail, hash, roleID,
		).Error; err != nil {
			log.Fatalf("failed to insert admin user: %v", err)
		}

		fmt.Println("Seeded admin user:", adminEmail)
	},
}
