package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stockify/stockify-api/internal/config"
	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/enum"
	"github.com/stockify/stockify-api/pkg/utils"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Access control entities
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.PasswordResetToken{},

		// Catalog entities
		&entity.Branch{},
		&entity.Category{},
		&entity.Supplier{},
		&entity.Tax{},
		&entity.Product{},
		&entity.StockEntry{},

		// Transaction entities
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Return{},
		&entity.ReturnItem{},

		// System entities
		&entity.IdempotencyKey{},
		&entity.Settings{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// Modules guarded by the permission matrix
var permissionModules = []string{
	"dashboard",
	"products",
	"stock",
	"orders",
	"returns",
	"categories",
	"suppliers",
	"branches",
	"taxes",
	"users",
	"roles",
	"reports",
	"settings",
}

// staffGrants lists the actions the staff role gets per module.
// Modules not listed are invisible to staff.
var staffGrants = map[string][]string{
	"dashboard":  {entity.ActionRead},
	"products":   {entity.ActionRead},
	"stock":      {entity.ActionCreate, entity.ActionRead},
	"orders":     {entity.ActionCreate, entity.ActionRead, entity.ActionUpdate},
	"returns":    {entity.ActionCreate, entity.ActionRead},
	"categories": {entity.ActionRead},
	"suppliers":  {entity.ActionRead},
	"taxes":      {entity.ActionRead},
}

// SeedDefaultData seeds the database with default data (permissions,
// roles, default branch, settings and the admin user)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Create the full module x action permission matrix
	actions := []string{entity.ActionCreate, entity.ActionRead, entity.ActionUpdate, entity.ActionDelete}
	for _, module := range permissionModules {
		for _, action := range actions {
			var existing entity.Permission
			err := db.Where("module = ? AND action = ?", module, action).First(&existing).Error
			if err != nil {
				perm := entity.Permission{Module: module, Action: action}
				if err := db.Create(&perm).Error; err != nil {
					log.Printf("Warning: failed to create permission %s.%s: %v", module, action, err)
				}
			}
		}
	}

	// Reload permissions with IDs
	var allPermissions []entity.Permission
	db.Find(&allPermissions)

	// Create super-admin role with all permissions
	var superAdminRole entity.Role
	if err := db.Where("name = ?", "super-admin").First(&superAdminRole).Error; err != nil {
		superAdminRole = entity.Role{
			Name:        "super-admin",
			Status:      enum.StatusActive,
			Permissions: allPermissions,
		}
		if err := db.Create(&superAdminRole).Error; err != nil {
			log.Printf("Warning: failed to create super-admin role: %v", err)
		}
	}

	// Create admin role with all permissions
	var adminRole entity.Role
	if err := db.Where("name = ?", "admin").First(&adminRole).Error; err != nil {
		adminRole = entity.Role{
			Name:        "admin",
			Status:      enum.StatusActive,
			Permissions: allPermissions,
		}
		if err := db.Create(&adminRole).Error; err != nil {
			log.Printf("Warning: failed to create admin role: %v", err)
		}
	}

	// Create staff role with limited permissions
	var staffPerms []entity.Permission
	for _, p := range allPermissions {
		for _, action := range staffGrants[p.Module] {
			if p.Action == action {
				staffPerms = append(staffPerms, p)
				break
			}
		}
	}

	var staffRole entity.Role
	if err := db.Where("name = ?", "staff").First(&staffRole).Error; err != nil {
		staffRole = entity.Role{
			Name:        "staff",
			Status:      enum.StatusActive,
			Permissions: staffPerms,
		}
		if err := db.Create(&staffRole).Error; err != nil {
			log.Printf("Warning: failed to create staff role: %v", err)
		}
	}

	// Create default branch
	var defaultBranch entity.Branch
	if err := db.Where("slug = ?", "main-branch").First(&defaultBranch).Error; err != nil {
		defaultBranch = entity.Branch{
			Name:   "Main Branch",
			Slug:   "main-branch",
			Status: enum.StatusActive,
		}
		if err := db.Create(&defaultBranch).Error; err != nil {
			log.Printf("Warning: failed to create default branch: %v", err)
		}
	}

	// Create the settings row if missing
	var settings entity.Settings
	if err := db.First(&settings).Error; err != nil {
		settings = entity.Settings{
			CompanyName: "Stockify",
			Currency:    "USD",
		}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to create settings: %v", err)
		}
	}

	// Create super admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				var saRole entity.Role
				if err := db.Where("name = ?", "super-admin").First(&saRole).Error; err == nil {
					if adminName == "" {
						adminName = "Super Admin"
					}
					// Split admin name into first and last name
					firstName := adminName
					lastName := ""
					for i, c := range adminName {
						if c == ' ' {
							firstName = adminName[:i]
							lastName = adminName[i+1:]
							break
						}
					}
					adminUser := entity.User{
						ID:        uuid.New(),
						BranchID:  &defaultBranch.ID,
						FirstName: firstName,
						LastName:  lastName,
						Username:  utils.Slugify(adminName),
						Email:     adminEmail,
						Password:  string(hashedPassword),
						Status:    enum.StatusActive,
						Roles:     []entity.Role{saRole},
					}
					if err := db.Create(&adminUser).Error; err != nil {
						log.Printf("Warning: failed to create super admin user: %v", err)
					} else {
						log.Printf("Super admin user created: %s", adminEmail)
					}
				}
			}
		} else {
			log.Printf("Super admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
