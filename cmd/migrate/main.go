package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/adbridge/adbridge-backend/internal/config"
	"github.com/adbridge/adbridge-backend/internal/migration"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configPath := flag.String("config", "configs/config.local.yaml", "config file path")
	verify := flag.Bool("verify", false, "print table row counts after migration")
	verbose := flag.Bool("verbose", false, "verbose SQL logging")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logLevel := gormlogger.Warn
	if *verbose {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.GetDSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying DB: %v", err)
	}
	defer sqlDB.Close()

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("[migrate] Schema migration and category seed complete")

	if *verify {
		runVerify(db)
	}
}

func runVerify(db *gorm.DB) {
	tables := []string{
		"users",
		"creator_details",
		"advertiser_details",
		"product_categories",
		"products",
		"campaigns",
		"campaign_applications",
		"clicks",
		"my_shop_items",
	}

	log.Println("[verify] Row counts:")
	for _, t := range tables {
		var count int64
		if err := db.Raw(fmt.Sprintf("SELECT COUNT(*) FROM %s", t)).Scan(&count).Error; err != nil {
			log.Printf("[verify]   %-22s error: %v", t, err)
			continue
		}
		log.Printf("[verify]   %-22s %d", t, count)
	}
}
