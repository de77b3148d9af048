package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/neighbornet/neighbor-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("neighbor")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS neighbor`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO neighbor").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.User{},
		&schema.HelpRequest{},
		&schema.HelpRequestResponse{},
		&schema.Rating{},
	).Error; err != nil {
		panic(err)
	}

	// Deleting a requester removes their requests; deleting an assigned
	// helper only clears the assignment.
	if err := db.Model(schema.HelpRequest{}).
		AddForeignKey("requester_id", "users(id)", "CASCADE", "CASCADE").Error; err != nil {
		panic(err)
	}
	if err := db.Model(schema.HelpRequest{}).
		AddForeignKey("assigned_helper_id", "users(id)", "SET NULL", "CASCADE").Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.HelpRequestResponse{}).
		AddForeignKey("help_request_id", "help_requests(id)", "CASCADE", "CASCADE").Error; err != nil {
		panic(err)
	}
	if err := db.Model(schema.HelpRequestResponse{}).
		AddForeignKey("helper_id", "users(id)", "CASCADE", "CASCADE").Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.Rating{}).
		AddForeignKey("help_request_id", "help_requests(id)", "CASCADE", "CASCADE").Error; err != nil {
		panic(err)
	}
	if err := db.Model(schema.Rating{}).
		AddForeignKey("rater_id", "users(id)", "CASCADE", "CASCADE").Error; err != nil {
		panic(err)
	}
	if err := db.Model(schema.Rating{}).
		AddForeignKey("rated_user_id", "users(id)", "CASCADE", "CASCADE").Error; err != nil {
		panic(err)
	}

	// A helper may offer only once per request.
	if err := db.Model(schema.HelpRequestResponse{}).
		AddUniqueIndex("idx_help_request_helper", "help_request_id", "helper_id").Error; err != nil {
		panic(err)
	}

	// One rating per request, and redundantly one per (request, rater).
	if err := db.Model(schema.Rating{}).
		AddUniqueIndex("idx_help_request_rating", "help_request_id").Error; err != nil {
		panic(err)
	}
	if err := db.Model(schema.Rating{}).
		AddUniqueIndex("idx_help_request_rater", "help_request_id", "rater_id").Error; err != nil {
		panic(err)
	}
}
