// sqlgen generates SQL DDL scripts from the OpenAPI documents a build
// produces, one file per service per dialect.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/goldenpath-gen/openapi-sqlgen/internal/config"
	"github.com/goldenpath-gen/openapi-sqlgen/internal/dialect"
	"github.com/goldenpath-gen/openapi-sqlgen/internal/generator"
)

// Version info for the sqlgen tool
// These variables are injected at build time via ldflags
var (
	// Version is the current version of the sqlgen tool
	Version = "dev"

	// BuildTime is the time at which the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit that was compiled
	GitCommit = "unknown"
)

func main() {
	log.SetFlags(0) // Remove timestamp from logs

	// A local .env can supply the SQLGEN_* overrides during development
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Display version information")
	paramsPath := flag.String("config", "", "Path to params.json; the dialect is read from the first project's database.sgbd")
	flag.Parse()

	if *showVersion {
		log.Printf("sqlgen %s (commit: %s, built: %s)", Version, GitCommit, BuildTime)
		return
	}

	cfg := config.NewConfig()
	if *paramsPath != "" {
		cfg.ParamsPath = *paramsPath
	}

	args := flag.Args()

	var dialectValue string
	switch {
	case len(args) > 0:
		dialectValue = args[0]
	case cfg.ParamsPath != "":
		projects, err := config.LoadParams(cfg.ParamsPath)
		if err != nil {
			log.Printf("❌ %v", err)
			os.Exit(1)
		}
		dialectValue = config.DialectFrom(projects)
	default:
		printUsage()
		return
	}

	buildDir := cfg.BuildDir
	if len(args) > 1 {
		buildDir = args[1]
	}
	outputDir := cfg.OutputDir
	if len(args) > 2 {
		outputDir = args[2]
	}

	gen, err := generator.New(buildDir, outputDir, dialectValue)
	if err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}

	upper := strings.ToUpper(gen.Dialect().String())
	log.Printf("🗄️  Generating SQL DDL scripts for %s...", upper)

	if err := gen.GenerateAll(); err != nil {
		log.Printf("❌ Error generating SQL: %v", err)
		os.Exit(1)
	}

	log.Printf("✅ SQL generation complete for %s", upper)
}

func printUsage() {
	log.Println("Usage: sqlgen <dialect> [build_dir] [output_dir]")
	log.Println("       sqlgen -config <params.json> [build_dir] [output_dir]")
	log.Println()

	names := make([]string, 0, 4)
	for _, d := range dialect.Supported() {
		names = append(names, d.String())
	}
	log.Printf("Supported dialects: %s", strings.Join(names, ", "))
}
