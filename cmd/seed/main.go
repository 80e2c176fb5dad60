package main

import (
	"context"

	"marketplace/internal/app/ds"
	"marketplace/internal/app/dsn"
	"marketplace/internal/app/repository"
	"marketplace/internal/app/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// один диапазон на имя уровня, диапазоны стыкуются без пересечений
var defaultTiers = []service.CreateTierInput{
	{Name: ds.TierBasic, MinValue: 0, MaxValue: 3000, FeePercentage: 10},
	{Name: ds.TierStandard, MinValue: 3001, MaxValue: 10000, FeePercentage: 8},
	{Name: ds.TierPremium, MinValue: 10001, MaxValue: 25000, FeePercentage: 6.5},
	{Name: ds.TierEnterprise, MinValue: 25001, MaxValue: 999999, FeePercentage: 4.5},
}

var defaultServices = []service.ServiceMasterInput{
	{Title: "Company Incorporation", Description: "Company registration and incorporation including documentation, filing and legal compliance."},
	{Title: "Tax Consultation", Description: "Tax planning, preparation and consultation for businesses and individuals."},
	{Title: "Legal Advisory", Description: "Legal consultation and advisory for business operations and compliance."},
	{Title: "Trademark Registration", Description: "Trademark search, application and registration to protect your brand."},
	{Title: "Accounting Services", Description: "Bookkeeping, accounting and financial reporting for businesses of all sizes."},
	{Title: "Business License", Description: "Help with obtaining business licenses and permits required for your operations."},
	{Title: "GST Registration", Description: "Goods and Services Tax registration and compliance for businesses."},
	{Title: "Compliance Management", Description: "Ongoing compliance monitoring and management for regulatory adherence."},
}

func main() {
	_ = godotenv.Load()

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	if err := seedTiers(ctx, service.NewFeeTierService(repo, repo)); err != nil {
		logrus.Fatalf("Failed to seed platform fees: %v", err)
	}
	if err := seedServices(ctx, service.NewCatalogService(repo, repo, nil)); err != nil {
		logrus.Fatalf("Failed to seed service offerings: %v", err)
	}

	logrus.Info("Seed completed")
}

func seedTiers(ctx context.Context, tiers *service.FeeTierService) error {
	existing, err := tiers.ListTiers(ctx, service.Page{Page: 1, Limit: 1})
	if err != nil {
		return err
	}
	if existing.Total > 0 {
		logrus.Info("Platform fees already seeded, skipping")
		return nil
	}

	for _, in := range defaultTiers {
		if _, err := tiers.CreateTier(ctx, in); err != nil {
			return err
		}
	}
	logrus.Infof("Seeded %d platform fee tiers", len(defaultTiers))
	return nil
}

func seedServices(ctx context.Context, catalog *service.CatalogService) error {
	existing, err := catalog.List(ctx, service.Page{Page: 1, Limit: 1})
	if err != nil {
		return err
	}
	if existing.Total > 0 {
		logrus.Info("Service offerings already seeded, skipping")
		return nil
	}

	for _, in := range defaultServices {
		if _, err := catalog.Create(ctx, in); err != nil {
			return err
		}
	}
	logrus.Infof("Seeded %d service offerings", len(defaultServices))
	return nil
}
