package models

import (
	"fmt"
	"log"
	"os"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// all returns every persisted model, in migration order.
func all() []interface{} {
	return []interface{}{
		&Project{},
		&TeamMember{},
		&Testimonial{},
		&BlogPost{},
		&Contact{},
		&SiteSetting{},
		&AdminUser{},
	}
}

// Migrate brings the schema up to date for every model.
func Migrate(db *gorm.DB) error {
	migrateDB := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})
	if err := migrateDB.AutoMigrate(all()...); err != nil {
		return fmt.Errorf("migrating models: %w", err)
	}
	return nil
}

// GenerateModels migrates the schema and emits typed query helpers under
// ./generated. Run via GENERATE_MODELS=true; exits the process on failure.
func GenerateModels(db *gorm.DB) {
	if err := db.Exec("SELECT 1").Error; err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             0,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)
	db = db.Session(&gorm.Session{
		Logger:                 newLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(
		Project{},
		TeamMember{},
		Testimonial{},
		BlogPost{},
		Contact{},
		SiteSetting{},
		AdminUser{},
	)

	fmt.Println("Starting database migration...")
	if err := Migrate(db); err != nil {
		fmt.Printf("Error during models migration: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Database migration completed successfully!")

	g.Execute()
	fmt.Println("Model generation complete!")
}
