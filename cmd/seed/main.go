// seed carga un árbol de categorías desde un JSON y emite un token de administrador
// para probar las rutas protegidas.
//
// Uso: go run ./cmd/seed [-file categories.json] [-token]
// Sin -file se carga un árbol de ejemplo. Las categorías existentes se omiten.
// Con REDIS_URL definido invalida la caché de categorías que comparte con la API.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/shop-api/internal/application/catalog"
	"github.com/jhoicas/shop-api/internal/application/dto"
	"github.com/jhoicas/shop-api/internal/domain"
	"github.com/jhoicas/shop-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/shop-api/internal/infrastructure/redis"
	"github.com/jhoicas/shop-api/pkg/config"
	"github.com/jhoicas/shop-api/pkg/jwt"
	"github.com/jhoicas/shop-api/pkg/logger"
)

// sampleTree está ordenado padre antes que hijo.
var sampleTree = []dto.CreateCategoryRequest{
	{Name: "Shoes"},
	{Name: "Sport shoes", Father: ptr("shoes")},
	{Name: "Boots", Father: ptr("shoes")},
	{Name: "Hoodies"},
	{Name: "Zip hoodies", Father: ptr("hoodies")},
}

func ptr(s string) *string { return &s }

func main() {
	file := flag.String("file", "", "JSON con []{name, slug, description, father}")
	token := flag.Bool("token", false, "imprimir un JWT con rol admin")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	tree := sampleTree
	if *file != "" {
		tree, err = readTree(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer %s: %v\n", *file, err)
			os.Exit(1)
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Esquema: %v\n", err)
		os.Exit(1)
	}

	cache, closeCache, err := infraredis.NewCategoryCacheFromConfig(ctx, cfg.Cache, log.Component("redis"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a Redis: %v\n", err)
		os.Exit(1)
	}
	defer closeCache()

	uc := catalog.NewCategoryUseCase(postgres.NewCategoryRepository(pool), postgres.NewTxRunner(pool), cache, log)
	created, skipped := 0, 0
	for _, in := range tree {
		out, err := uc.Create(ctx, in)
		switch {
		case errors.Is(err, domain.ErrConflict):
			skipped++
		case err != nil:
			fmt.Fprintf(os.Stderr, "Crear %q: %v\n", in.Name, err)
			os.Exit(1)
		default:
			created++
			fmt.Printf("+ %s (father: %q)\n", out.Slug, out.Father)
		}
	}
	fmt.Printf("Categorías creadas: %d, omitidas: %d\n", created, skipped)

	if *token {
		tok, err := jwt.Generate(cfg.JWT.Secret, "seed", "admin", cfg.JWT.Issuer, cfg.JWT.Expiration)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(tok)
	}
}

func readTree(path string) ([]dto.CreateCategoryRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tree []dto.CreateCategoryRequest
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}
