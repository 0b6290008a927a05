package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/contaplena/site-api/internal/config"
	"github.com/contaplena/site-api/internal/models"
	"github.com/contaplena/site-api/internal/services"
	"go.mongodb.org/mongo-driver/bson"
)

// SeedPosts contains the initial blog posts. Posts are managed
// out-of-band, so this script is the only write path for the blog.
var SeedPosts = []models.BlogPost{
	{
		Title:       "MEI ou Simples Nacional: qual escolher ao abrir sua empresa?",
		Slug:        "mei-ou-simples-nacional",
		Excerpt:     "Entenda as diferenças de limite de faturamento, obrigações e tributação entre o MEI e o Simples Nacional.",
		Content:     "Ao formalizar um negócio, a primeira decisão é o enquadramento tributário. O MEI atende quem fatura até R$ 81 mil por ano e exerce uma atividade permitida; acima disso, o Simples Nacional costuma ser o caminho natural...",
		Category:    "tributacao",
		PublishedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	},
	{
		Title:       "O que é o Fator R e como ele reduz seus impostos",
		Slug:        "o-que-e-fator-r",
		Excerpt:     "Empresas de serviços podem migrar do Anexo V para o Anexo III do Simples Nacional quando a folha de pagamento supera 28% do faturamento.",
		Content:     "O Fator R é a razão entre a folha de pagamento e a receita bruta dos últimos 12 meses. Quando essa razão é igual ou superior a 28%, atividades tributadas pelo Anexo V passam a ser tributadas pelo Anexo III, com alíquotas menores...",
		Category:    "tributacao",
		PublishedAt: time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC),
	},
	{
		Title:       "Como escolher o CNAE certo para a sua atividade",
		Slug:        "como-escolher-cnae",
		Excerpt:     "O CNAE define quais tributos sua empresa paga e se ela pode ser MEI. Veja como encontrar o código adequado.",
		Content:     "O CNAE (Classificação Nacional de Atividades Econômicas) identifica a atividade exercida pela empresa junto aos órgãos públicos. Um código errado pode impedir o enquadramento como MEI ou gerar tributação maior do que a devida...",
		Category:    "abertura",
		PublishedAt: time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC),
	},
}

func main() {
	fmt.Println("🌱 Seeding blog posts...")

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize MongoDB
	config.InitMongoDB()
	if config.MongoDB == nil {
		log.Fatal("Failed to initialize MongoDB")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collection := config.MongoDB.Collection(config.AppConfig.BlogCollection)

	// Check if posts already exist
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to count existing posts: %v", err)
	}

	if count > 0 {
		fmt.Printf("⚠️  Found %d existing posts. Do you want to replace them? (y/N): ", count)
		var response string
		_, err := fmt.Scanln(&response)
		if err != nil {
			fmt.Println("❌ Error reading input")
			return
		}
		if response != "y" && response != "Y" {
			fmt.Println("❌ Seeding cancelled")
			return
		}

		// Delete existing posts
		result, err := collection.DeleteMany(ctx, bson.M{})
		if err != nil {
			log.Fatalf("Failed to delete existing posts: %v", err)
		}
		fmt.Printf("🗑️  Deleted %d existing posts\n", result.DeletedCount)
	}

	// Insert seed posts with ids from the shared counter
	docs := make([]interface{}, len(SeedPosts))
	for i, post := range SeedPosts {
		id, err := services.NextSequence(ctx, config.MongoDB, "blog_posts")
		if err != nil {
			log.Fatalf("Failed to allocate post id: %v", err)
		}
		post.ID = id
		post.CreatedAt = time.Now().UTC()
		docs[i] = post
	}

	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to insert posts: %v", err)
	}

	fmt.Printf("✅ Successfully seeded %d blog posts:\n", len(result.InsertedIDs))
	for _, post := range SeedPosts {
		fmt.Printf("  ✓ [%s] %s\n", post.Slug, post.Title)
	}

	fmt.Println("\n🎉 Seeding completed successfully!")
}
