// Command seed bootstraps a local database with a demo account and a few
// catalog entries. Account registration itself lives in an external flow;
// this is development tooling only.
package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/artesania/storefront-api/internal/core/domain"
	"github.com/artesania/storefront-api/internal/infrastructure/config"
	mongostore "github.com/artesania/storefront-api/internal/infrastructure/db/mongo"
	"github.com/artesania/storefront-api/pkg/logger"
)

const (
	demoUsername = "demo"
	demoPassword = "P@ssw0rd!"
)

var demoProducts = []domain.Product{
	{ID: "prod-delft-vase", Title: "Delft Blue Vase", Artist: "V. Marais", Price: 120, Units: 3},
	{ID: "prod-tulip-bowl", Title: "Tulip Bowl", Artist: "J. Hooven", Price: 45.5, Units: 12},
	{ID: "prod-windmill-print", Title: "Windmill Print", Artist: "A. de Ruyter", Price: 30, Units: 25},
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password")
	}

	users := db.Collection("users")
	count, err := users.CountDocuments(ctx, bson.M{"username": demoUsername})
	if err != nil {
		log.Fatal().Err(err).Msg("count users")
	}
	if count == 0 {
		_, err = users.InsertOne(ctx, bson.M{
			"username":      demoUsername,
			"email":         "demo@example.com",
			"password_hash": string(hash),
			"created_at":    time.Now().Unix(),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("insert demo user")
		}
		log.Info().Str("username", demoUsername).Msg("demo user created")
	} else {
		log.Info().Str("username", demoUsername).Msg("demo user already present")
	}

	products := db.Collection("products")
	for _, p := range demoProducts {
		_, err := products.UpdateOne(ctx,
			bson.M{"_id": p.ID},
			bson.M{"$set": bson.M{
				"title":  p.Title,
				"artist": p.Artist,
				"price":  p.Price,
				"units":  p.Units,
			}},
			// upsert keeps the seeder idempotent
			options.Update().SetUpsert(true),
		)
		if err != nil {
			log.Fatal().Err(err).Str("product", p.ID).Msg("seed product")
		}
	}
	log.Info().Int("products", len(demoProducts)).Msg("catalog seeded")
}
