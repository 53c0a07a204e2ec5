package models

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/creasty/defaults"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"lostfound_backend/config"
)

var DB *gorm.DB

var gormConfig = &gorm.Config{
	NamingStrategy: schema.NamingStrategy{
		SingularTable: true, // use singular table name, table for `User` would be `user` with this option enabled
	},
	Logger: logger.New(
		log.Default(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	),
}

func InitDB() {
	mysqlDB := func() (*gorm.DB, error) {
		return gorm.Open(mysql.Open(config.Config.DbUrl), gormConfig)
	}
	sqliteDB := func() (*gorm.DB, error) {
		err := os.MkdirAll("data", 0755)
		if err != nil && !os.IsExist(err) {
			panic(err)
		}
		return gorm.Open(sqlite.Open("data/sqlite.db"), gormConfig)
	}
	memoryDB := func() (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file::memory:?cache=shared"), gormConfig)
	}

	var err error

	// connect to database with different mode
	switch config.Config.Mode {
	case "production":
		DB, err = mysqlDB()
	case "dev":
		if config.Config.DbUrl == "" {
			DB, err = sqliteDB()
		} else {
			DB, err = mysqlDB()
		}
	case "test":
		DB, err = memoryDB()
	default:
		panic("unsupported mode")
	}

	if err != nil {
		panic(err)
	}

	if config.Config.Mode == "dev" || config.Config.Mode == "test" {
		DB = DB.Debug()
	}

	// migrate database
	err = DB.AutoMigrate(
		Organization{},
		User{},
		Item{},
		Report{},
		Notification{},
		InviteCode{},
	)
	if err != nil {
		panic(err)
	}

	initDefaultRecords()
}

// initDefaultRecords seeds the default organization and the system-wide
// super admin account on first start
func initDefaultRecords() {
	var organization Organization
	err := DB.Take(&organization, "code = ?", DefaultOrganizationCode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		organization = Organization{
			Name:        "Default Organization",
			Code:        DefaultOrganizationCode,
			Type:        "community",
			Description: "Default organization for the lost and found system",
			Status:      OrganizationStatusActive,
		}
		if err = defaults.Set(&organization.Settings); err != nil {
			panic(err)
		}
		if err = DB.Create(&organization).Error; err != nil {
			panic(err)
		}
	}

	var superAdminCount int64
	DB.Model(&User{}).Where("role = ?", RoleSuperAdmin).Count(&superAdminCount)
	if superAdminCount == 0 {
		if err = CreateSuperAdmin(organization.ID); err != nil {
			panic(err)
		}
	}
}
