package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pratishelar/realtor-sub000/config"
	"github.com/pratishelar/realtor-sub000/models"
	"github.com/pratishelar/realtor-sub000/property"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "realtor-admin",
		Short: "One-off maintenance jobs for the property store",
	}

	rootCmd.AddCommand(
		seedCmd(),
		backfillCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func propertiesCollection() string {
	name := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if name == "" {
		name = "properties"
	}
	return name
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample property records",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.ConnectDB()
			collection := config.GetCollection(propertiesCollection())

			inserted := 0
			for _, form := range seedForms() {
				record := property.BuildPayload(form)
				doc := record.Document()
				now := time.Now()
				doc["createdAt"] = now
				doc["updatedAt"] = now
				if _, err := collection.InsertOne(context.Background(), doc); err != nil {
					return fmt.Errorf("seed %q: %w", record.Title, err)
				}
				inserted++
			}
			log.Printf("Seeded %d properties", inserted)
			return nil
		},
	}
}

// backfillCmd rewrites the derived fields of every stored document from its
// source fields. Each document is updated individually; the run reports one
// aggregate count at the end.
func backfillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backfill",
		Short: "Re-derive redundant fields across all stored properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.ConnectDB()
			collection := config.GetCollection(propertiesCollection())
			ctx := context.Background()

			cursor, err := collection.Find(ctx, bson.M{})
			if err != nil {
				return fmt.Errorf("list properties: %w", err)
			}
			defer cursor.Close(ctx)

			updated, failed := 0, 0
			for cursor.Next(ctx) {
				var doc bson.M
				if err := cursor.Decode(&doc); err != nil {
					failed++
					continue
				}
				id, ok := doc["_id"].(primitive.ObjectID)
				if !ok {
					failed++
					continue
				}
				record := property.FromDocument(id.Hex(), doc)
				_, err := collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
					"amenities":        record.Amenities,
					"bedrooms":         record.Bedrooms,
					"price":            record.Price,
					"area":             record.Area,
					"possessionStatus": record.PossessionStatus,
					"mainImage":        record.MainImage,
					"cityDivision":     record.CityDivision,
					"updatedAt":        time.Now(),
				}})
				if err != nil {
					failed++
					continue
				}
				updated++
			}
			log.Printf("Backfill done: %d updated, %d failed", updated, failed)
			return nil
		},
	}
}

func seedForms() []models.PropertyForm {
	return []models.PropertyForm{
		{
			Title:       "Serene Heights",
			Description: "Gated apartment community with landscaped gardens",
			Location:    "Baner Road, Pune",
			City:        "Pune",
			Category:    "residential",
			PropertyType: models.PropertyType{
				Apartment: true,
			},
			BasePrice:  "7500000",
			GovtCharge: "450000",
			Status: models.ConstructionStatus{
				UnderConstruction: true,
			},
			UnitConfig: models.UnitConfig{
				TwoBHK:   true,
				ThreeBHK: true,
			},
			Bathrooms:  "2",
			CarpetArea: "950",
			BuiltArea:  "1180",
			PriceList: []models.PriceListRowForm{
				{Configuration: "2 BHK", Area: "1180", Price: "7950000"},
				{Configuration: "3 BHK", Area: "1460", Price: "9800000"},
			},
			Images: []string{
				"https://media.example.com/serene-heights/tower.jpg",
				"https://media.example.com/serene-heights/lobby.jpg",
			},
			Amenities: models.AmenityGroups{
				Sports:      []string{"Gym", "Swimming pool"},
				Convenience: []string{"Covered parking", "Power backup"},
				Leisure:     []string{"Clubhouse"},
			},
			ReraDetails: models.ReraDetails{
				ReraNumber: "P52100031234",
				ReraStatus: "Registered",
				Possession: "Dec 2026",
			},
			Owner: "Serene Developers",
			Phone: "+91 98220 00001",
			Email: "sales@serene.example.com",
		},
		{
			Title:       "Harbor Point Offices",
			Description: "Commercial office floors near the business district",
			Location:    "Vashi, Navi Mumbai",
			City:        "Mumbai",
			Category:    "commercial",
			PropertyType: models.PropertyType{
				Office: true,
			},
			BasePrice: "18500000",
			Status: models.ConstructionStatus{
				ReadyToMove: true,
			},
			Bathrooms: "4",
			TotalArea: "2400",
			Images: []string{
				"https://media.example.com/harbor-point/facade.jpg",
			},
			Amenities: models.AmenityGroups{
				Convenience: []string{"Covered parking", "High-speed lifts"},
			},
			Owner: "Harbor Estates",
			Phone: "+91 98220 00002",
			Email: "leasing@harbor.example.com",
		},
		{
			Title:       "Whitefield Villa Enclave",
			Description: "Independent villa plots with ready infrastructure",
			Location:    "Whitefield, Bangalore",
			City:        "Bangalore",
			Category:    "residential",
			PropertyType: models.PropertyType{
				Villa: true,
				Plot:  true,
			},
			BasePrice:  "12800000",
			GovtCharge: "700000",
			Status: models.ConstructionStatus{
				Resale: true,
			},
			UnitConfig: models.UnitConfig{
				FourBHK: true,
			},
			Bathrooms:  "3",
			CarpetArea: "2100",
			BuiltArea:  "2600",
			Images: []string{
				"https://media.example.com/whitefield-villas/gate.jpg",
				"https://media.example.com/whitefield-villas/model-home.jpg",
			},
			Amenities: models.AmenityGroups{
				Sports:  []string{"Tennis court"},
				Leisure: []string{"Clubhouse", "Amphitheatre"},
			},
			Owner: "Enclave Properties",
			Phone: "+91 98220 00003",
			Email: "info@enclave.example.com",
		},
	}
}
