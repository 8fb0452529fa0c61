package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v76"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abuabdullah23/bistro-boss-server-6b-74m/handlers"
	"github.com/abuabdullah23/bistro-boss-server-6b-74m/store"
)

func main() {

	/* CONFIG SETUP STARTS */

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment variables.")
	}

	uri := os.Getenv("DB_URI")
	if uri == "" {
		uri = fmt.Sprintf("mongodb+srv://%s:%s@cluster0.ufrxsge.mongodb.net/?retryWrites=true&w=majority",
			os.Getenv("DB_USER"), os.Getenv("DB_SECRET"))
	}

	stripe.Key = os.Getenv("PAYMENT_SECRET_KEY")

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	/* CONFIG SETUP ENDS */

	/* DATABASE SETUP STARTS */

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Pinged your deployment. You successfully connected to MongoDB!")

	st := store.NewMongoStore(client, "bistroBoss")

	/* DATABASE SETUP ENDS */

	/* ROUTING STARTS */

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	h := handlers.NewHandler(st, handlers.StripeIntents{})
	h.RegisterRoutes(router)

	/* ROUTING ENDS */

	log.Printf("Server listening on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
