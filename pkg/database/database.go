package database

import (
	"fmt"
	"log"

	"github.com/AdityaANS/dsa-progress-tracker/internal/config"
	"github.com/AdityaANS/dsa-progress-tracker/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the remote replica database and migrates its schema.
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Remote database connection established")

	err = db.AutoMigrate(
		&model.UserRecord{},
		&model.TopicRecord{},
		&model.ProblemRecord{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Remote database migration completed")

	return db, nil
}
