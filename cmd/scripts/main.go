// Command scripts seeds the sample company and optionally imports leads.
//
//	go run ./cmd/scripts [-fake 25] [leads.csv]
//	go run ./cmd/scripts -token owner:COMP00000001
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ArowuTest/leadcapture-backend/internal/config"
	mongorepo "github.com/ArowuTest/leadcapture-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/leadcapture-backend/internal/services"
	"github.com/ArowuTest/leadcapture-backend/pkg/logger"
	mongodb "github.com/ArowuTest/leadcapture-backend/pkg/mongodb"
	"go.uber.org/zap"
)

func main() {
	fake := flag.Int("fake", 0, "number of generated leads to insert for the sample company")
	token := flag.String("token", "", "print a bearer token for role:companyId and exit")
	flag.Parse()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Log.Level, ""); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if *token != "" {
		signed, err := DevToken(cfg.JWT.Secret, *token, 24*time.Hour)
		if err != nil {
			logger.Log.Fatal("Failed to issue token", zap.Error(err))
		}
		fmt.Println(signed)
		return
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Log.Fatal("Invalid time zone", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI, mongodb.Options{
		ServerSelectionTimeout: cfg.MongoDB.ConnectTimeout,
		PingRetries:            cfg.MongoDB.ConnectRetries,
		Logger:                 logger.Log,
	})
	if err != nil {
		logger.Log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB.Database)
	companyRepo := mongorepo.NewCompanyRepository(db)
	leadRepo := mongorepo.NewLeadRepository(db)

	created, err := SeedSampleCompany(ctx, companyRepo)
	if err != nil {
		logger.Log.Fatal("Seeding failed", zap.Error(err))
	}
	if created {
		logger.Log.Info("Sample company created", zap.String("company_id", SampleCompanyID))
	} else {
		logger.Log.Info("Sample company already exists", zap.String("company_id", SampleCompanyID))
	}

	if *fake > 0 {
		if err := InsertFakeLeads(ctx, leadRepo, *fake); err != nil {
			logger.Log.Fatal("Fake lead generation failed", zap.Error(err))
		}
		logger.Log.Info("Fake leads inserted", zap.Int("count", *fake))
	}

	if flag.NArg() == 0 {
		return
	}

	csvPath := flag.Arg(0)
	file, err := os.Open(csvPath)
	if err != nil {
		logger.Log.Fatal("Failed to open CSV file", zap.String("path", csvPath), zap.Error(err))
	}
	defer file.Close()

	result, err := ImportLeads(ctx, services.NewLeadService(leadRepo, loc), file)
	if err != nil {
		logger.Log.Fatal("Import failed", zap.Error(err))
	}
	logger.Log.Info("Leads imported",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)
}
