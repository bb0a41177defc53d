package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
	mongodoc "github.com/declared-as-ala/pricewatch-admin-api/internal/infrastructure/mongo"
)

type seedOptions struct {
	userCount        int
	productCount     int
	storeCount       int
	reclamationCount int
	dropCollections  bool
	adminEmail       string
	adminPassword    string
	randomSeed       int64
}

type collections struct {
	users        string
	reclamations string
	products     string
	stores       string
	admins       string
}

func main() {
	opts := parseFlags()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("failed to load .env: %v", err)
	}

	cols := collections{
		users:        envOrDefault("USER_COLLECTION", "users"),
		reclamations: envOrDefault("RECLAMATION_COLLECTION", "reclamations"),
		products:     envOrDefault("PRODUCT_COLLECTION", "InfoProduit"),
		stores:       envOrDefault("STORE_COLLECTION", "Magasin"),
		admins:       envOrDefault("ADMIN_COLLECTION", "admin"),
	}

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	dbName := envOrDefault("MONGO_DB", "pricewatch")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(dbName)

	if opts.dropCollections {
		dropAll(ctx, db, cols)
		log.Printf("dropped existing collections")
	}

	rng := rand.New(rand.NewSource(opts.randomSeed))

	userDocs := generateUsers(rng, opts.userCount)
	if err := insertMany(ctx, db.Collection(cols.users), toAnySlice(userDocs)); err != nil {
		log.Fatalf("failed to insert users: %v", err)
	}

	reclamations := generateReclamations(rng, userDocs, opts.reclamationCount)
	reclamationRepo := mongodoc.NewReclamationRepository(db, cols.reclamations)
	for i := range reclamations {
		if err := reclamationRepo.Create(ctx, &reclamations[i]); err != nil {
			log.Fatalf("failed to insert reclamations: %v", err)
		}
	}

	storeDocs := generateStores(rng, opts.storeCount)
	if err := insertMany(ctx, db.Collection(cols.stores), toAnySlice(storeDocs)); err != nil {
		log.Fatalf("failed to insert stores: %v", err)
	}

	productDocs := generateProducts(rng, storeDocs, opts.productCount)
	if err := insertMany(ctx, db.Collection(cols.products), toAnySlice(productDocs)); err != nil {
		log.Fatalf("failed to insert products: %v", err)
	}

	if err := seedAdmin(ctx, db, cols.admins, opts); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	log.Printf("seed done: users=%d reclamations=%d products=%d stores=%d admin=%s",
		len(userDocs), len(reclamations), len(productDocs), len(storeDocs), opts.adminEmail)
	log.Printf("Mongo: %s / %s", mongoURI, dbName)
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.IntVar(&opts.userCount, "users", 25, "number of users to generate")
	flag.IntVar(&opts.productCount, "products", 40, "number of products to generate")
	flag.IntVar(&opts.storeCount, "stores", 6, "number of stores to generate")
	flag.IntVar(&opts.reclamationCount, "reclamations", 30, "number of complaints to generate")
	flag.BoolVar(&opts.dropCollections, "drop", true, "drop collections before seeding")
	flag.StringVar(&opts.adminEmail, "admin-email", "admin@pricewatch.local", "allow-listed admin email")
	flag.StringVar(&opts.adminPassword, "admin-password", "changeme", "allow-listed admin password")
	defaultSeed := time.Now().UnixNano()
	flag.Int64Var(&opts.randomSeed, "seed", defaultSeed, "random seed for reproducibility")
	flag.Parse()

	if opts.userCount <= 0 {
		log.Fatal("users must be at least 1")
	}
	if opts.storeCount <= 0 {
		log.Fatal("stores must be at least 1")
	}
	if opts.reclamationCount < 0 {
		opts.reclamationCount = 0
	}
	return opts
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func dropAll(ctx context.Context, db *mongo.Database, cols collections) {
	for _, name := range []string{cols.users, cols.reclamations, cols.products, cols.stores, cols.admins} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			log.Printf("WARN: failed to drop collection %s: %v", name, err)
		}
	}
}

func generateUsers(rng *rand.Rand, count int) []mongodoc.UserDocument {
	now := time.Now().UTC()
	docs := make([]mongodoc.UserDocument, 0, count)
	for i := 0; i < count; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		joined := now.AddDate(0, -rng.Intn(14), -rng.Intn(28))
		blocked := rng.Intn(10) == 0
		docs = append(docs, mongodoc.UserDocument{
			ID:           primitive.NewObjectID(),
			Nom:          first + " " + last,
			Email:        strings.ToLower(fmt.Sprintf("%s.%s%d@example.com", first, last, rng.Intn(90)+10)),
			Telephone:    fmt.Sprintf("+216 %d %03d %03d", 20+rng.Intn(80), rng.Intn(1000), rng.Intn(1000)),
			Localisation: cities[rng.Intn(len(cities))],
			DateJoined:   &joined,
			IsBlocked:    &blocked,
			CreatedAt:    &joined,
		})
	}
	return docs
}

func generateReclamations(rng *rand.Rand, users []mongodoc.UserDocument, count int) []domain.Reclamation {
	if count == 0 || len(users) == 0 {
		return nil
	}
	now := time.Now().UTC()
	recs := make([]domain.Reclamation, 0, count)
	for i := 0; i < count; i++ {
		user := users[rng.Intn(len(users))]
		recs = append(recs, domain.Reclamation{
			Sender:    user.Nom,
			Recipient: "support",
			Message:   complaintMessages[rng.Intn(len(complaintMessages))],
			Date:      now.Add(-time.Duration(rng.Intn(120*24)) * time.Hour),
			Resolved:  rng.Intn(3) != 0,
			UserID:    user.ID.Hex(),
		})
	}
	return recs
}

func generateStores(rng *rand.Rand, count int) []mongodoc.StoreDocument {
	now := time.Now().UTC()
	docs := make([]mongodoc.StoreDocument, 0, count)
	for i := 0; i < count; i++ {
		chain := storeChains[i%len(storeChains)]
		city := cities[rng.Intn(len(cities))]
		docs = append(docs, mongodoc.StoreDocument{
			ID:        primitive.NewObjectID(),
			Nom:       chain + " " + city,
			Adresse:   fmt.Sprintf("%d Avenue Habib Bourguiba", rng.Intn(120)+1),
			Ville:     city,
			Pays:      "Tunisie",
			Mail:      strings.ToLower(fmt.Sprintf("contact@%s-%s.tn", slugify(chain), slugify(city))),
			Telephone: fmt.Sprintf("+216 71 %03d %03d", rng.Intn(1000), rng.Intn(1000)),
			Latitude:  33.0 + rng.Float64()*4.5,
			Longitude: 8.0 + rng.Float64()*3.5,
			CreatedAt: &now,
		})
	}
	return docs
}

// generateProducts writes prices as a mix of numbers and numeric
// strings, matching what the scrapers actually produce.
func generateProducts(rng *rand.Rand, stores []mongodoc.StoreDocument, count int) []mongodoc.ProductDocument {
	now := time.Now().UTC()
	docs := make([]mongodoc.ProductDocument, 0, count)
	for i := 0; i < count; i++ {
		name := productNames[i%len(productNames)]
		created := now.Add(-time.Duration(rng.Intn(200*24)) * time.Hour)
		entries := make(map[string]mongodoc.ProductStoreDocument)
		for _, store := range stores {
			if rng.Intn(3) == 0 {
				continue
			}
			price := 1.0 + rng.Float64()*80
			var raw any = price
			switch rng.Intn(4) {
			case 0:
				raw = fmt.Sprintf("%.2f", price)
			case 1:
				raw = int(price)
			}
			updated := now.Add(-time.Duration(rng.Intn(30*24)) * time.Hour)
			entries[store.Nom] = mongodoc.ProductStoreDocument{
				Prix:    raw,
				DateMaj: updated,
			}
		}
		docs = append(docs, mongodoc.ProductDocument{
			ID:        primitive.NewObjectID(),
			Nom:       name,
			Categorie: categories[rng.Intn(len(categories))],
			Marque:    brands[rng.Intn(len(brands))],
			Produits:  entries,
			CreatedAt: &created,
		})
	}
	return docs
}

func seedAdmin(ctx context.Context, db *mongo.Database, collection string, opts seedOptions) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(opts.adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	repo := mongodoc.NewAdminRepository(db, collection)
	id := primitive.NewObjectID().Hex()
	return repo.Create(ctx, id, opts.adminEmail, "Administrateur", string(hash))
}

func insertMany(ctx context.Context, col *mongo.Collection, docs []interface{}) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := col.InsertMany(ctx, docs)
	return err
}

func toAnySlice[T any](in []T) []interface{} {
	out := make([]interface{}, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}

func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

var (
	firstNames = []string{"Ala", "Amine", "Asma", "Fares", "Hana", "Ines", "Khaled", "Mariem", "Omar", "Rania", "Sami", "Yasmine"}
	lastNames  = []string{"Ben Ali", "Bouazizi", "Chedly", "Gharbi", "Hammami", "Jlassi", "Mansouri", "Trabelsi"}

	cities = []string{"Tunis", "Sfax", "Sousse", "Bizerte", "Nabeul", "Monastir", "Gabes"}

	storeChains = []string{"Carrefour", "Monoprix", "Aziza", "Geant", "MG", "Magasin General"}

	productNames = []string{
		"Lait demi-ecreme 1L", "Huile d'olive 1L", "Pates penne 500g", "Riz basmati 1kg",
		"Tomates en boite 400g", "Thon entier 160g", "Cafe moulu 250g", "The vert 100g",
		"Farine 1kg", "Sucre 1kg", "Eau minerale 1.5L", "Jus d'orange 1L",
		"Yaourt nature x4", "Fromage fondu 8p", "Beurre 200g", "Oeufs x10",
		"Chocolat noir 100g", "Biscuits 300g", "Couscous moyen 1kg", "Harissa 135g",
	}

	categories = []string{"Epicerie", "Boissons", "Produits laitiers", "Petit dejeuner", ""}
	brands     = []string{"Delice", "Vitalait", "Sicam", "Jadida", "Safia", "Said"}

	complaintMessages = []string{
		"Le prix affiche ne correspond pas au prix en magasin.",
		"Le produit est introuvable dans le magasin indique.",
		"La date de mise a jour du prix est trop ancienne.",
		"Impossible de signaler un prix depuis l'application.",
		"Le magasin indique est ferme definitivement.",
	}
)
