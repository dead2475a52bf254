package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rodrigobarrosparreira/br-desk/components/deskapi"
	"github.com/rodrigobarrosparreira/br-desk/internal/crm"
	"github.com/rodrigobarrosparreira/br-desk/internal/pdf"
)

type config struct {
	Listen string `yaml:"listen"`

	CRM struct {
		Endpoint string `yaml:"endpoint"`
		Token    string `yaml:"token"`
	} `yaml:"crm"`

	Assets struct {
		Header    string `yaml:"header"`
		Footer    string `yaml:"footer"`
		Signature string `yaml:"signature"`
	} `yaml:"assets"`
}

func defaultConfig() config {
	cfg := config{Listen: ":8080"}
	return cfg
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	listen := flag.String("listen", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	renderer := pdf.NewRenderer(
		pdf.WithLetterhead(cfg.Assets.Header, cfg.Assets.Footer),
		pdf.WithSignatureImage(cfg.Assets.Signature),
	)

	component := deskapi.New(deskapi.WithRenderer(renderer))

	mux := http.NewServeMux()
	patterns, err := component.RegisterRoutes(mux, "/")
	if err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}
	for _, pattern := range patterns {
		log.Printf("mounted %s", pattern)
	}

	if cfg.CRM.Endpoint != "" {
		client := crm.NewClient(cfg.CRM.Endpoint, cfg.CRM.Token)
		registerCRMRoutes(mux, client)
		log.Printf("CRM proxy enabled for %s", cfg.CRM.Endpoint)
	}

	server := &http.Server{
		Addr:              cfg.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.Listen)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server stopped: %v", err)
	}
}
