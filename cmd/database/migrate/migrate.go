package migration

import (
	"Cookbook-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	// Parents first so AutoMigrate can create foreign keys in one pass.
	models := []interface{}{
		&entities.User{},
		&entities.Unit{},
		&entities.IngredientCategory{},
		&entities.IngredientType{},
		&entities.Ingredient{},
		&entities.Utensil{},
		&entities.RecipeCategory{},
		&entities.Recipe{},
		&entities.Version{},
		&entities.RecipeDetail{},
		&entities.Step{},
		&entities.Tip{},
		&entities.Comment{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
