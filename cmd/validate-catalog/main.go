package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/storefront/config"
	"github.com/Gunvolt24/storefront/internal/app"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/pkg/logger"
	"github.com/Gunvolt24/storefront/pkg/validate"
)

// CLI-приложение для валидации файлов каталога и (опционально) загрузки товаров в хранилище.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	doImport := flag.Bool("import", false, "write valid products to the configured store (STOREFRONT_STORE_BACKEND)")
	flag.Parse()

	ctx := context.Background()
	format := validate.InputFormat(*formatStr)

	// stdin вариант: считаем, что jsonl
	path := *inputPath
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	var onValid func(*domain.Product) error
	if *doImport {
		_ = godotenv.Load(".env.local")
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = cleanupLogger() }()

		store, closeStore, err := app.OpenStore(ctx, &cfg, logg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: %v\n", err)
			os.Exit(1)
		}
		defer closeStore()

		onValid = func(p *domain.Product) error {
			return store.Put(ctx, domain.CollectionProducts, p.ID, validate.EncodeProduct(p))
		}
	}

	summary, err := validate.ValidateFile(path, format, os.Stdout, onValid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
