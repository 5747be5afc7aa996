package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"voxbill/internal/auth/clerk"
	noopauth "voxbill/internal/auth/noop"
	"voxbill/internal/config"
	noopemail "voxbill/internal/email/noop"
	"voxbill/internal/email/ses"
	"voxbill/internal/extractor"
	"voxbill/internal/extractor/gemini"
	"voxbill/internal/handler"
	"voxbill/internal/port"
	"voxbill/internal/router"
	"voxbill/internal/service"
	"voxbill/internal/storage/local"
	s3storage "voxbill/internal/storage/s3"
	"voxbill/internal/transcriber/whisper"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Missing .env is fine; real deployments use environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize storage
	store, err := local.NewStore(cfg.Upload.Dir)
	if err != nil {
		return fmt.Errorf("failed to initialize document store: %w", err)
	}

	var mirror port.ObjectStorage
	if cfg.S3.Enabled() {
		mirror, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 mirror: %w", err)
		}
	}

	// Initialize providers
	extractor.RegisterProvider("gemini", gemini.NewExtractor)
	extractor.RegisterProvider("demo", extractor.NewDemoExtractor)

	ex, err := buildExtractor(&cfg.Extractor)
	if err != nil {
		return fmt.Errorf("failed to initialize extractor: %w", err)
	}

	transcriber := whisper.NewTranscriber(&cfg.Transcriber)

	var verifier port.SessionVerifier
	if cfg.Auth.SecretKey != "" {
		verifier = clerk.NewVerifier(&cfg.Auth)
	} else {
		log.Println("auth: no secret key configured, sessions pass through unverified")
		verifier = noopauth.NewVerifier()
	}

	var sender port.EmailSender
	if cfg.Email.Provider == "ses" {
		sender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.ToAddress)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		sender = noopemail.NewNoopSender()
	}

	// Initialize services
	invoiceSvc := service.NewInvoiceService(transcriber, ex, store, &cfg.Upload)
	renderSvc := service.NewRenderService(store, mirror, &cfg.S3)
	contactSvc := service.NewContactService(sender)

	// Initialize handlers
	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler()
	audioH := handler.NewAudioHandler(invoiceSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc, renderSvc)
	contactH := handler.NewContactHandler(contactSvc)
	redirectH := handler.NewRedirectHandler(&cfg.Frontend)

	// Setup router
	r := router.Setup(cfg, verifier, healthH, authH, audioH, invoiceH, contactH, redirectH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// buildExtractor assembles the primary extractor and, when a secondary
// provider is configured, wraps both in a fallback chain.
func buildExtractor(cfg *config.ExtractorConfig) (port.InvoiceExtractor, error) {
	primary, err := extractor.NewExtractor(&cfg.Primary)
	if err != nil {
		return nil, err
	}

	secondaryCfg := cfg.SecondaryConfig()
	if secondaryCfg == nil {
		return primary, nil
	}

	secondary, err := extractor.NewExtractor(secondaryCfg)
	if err != nil {
		return nil, err
	}

	return extractor.NewFallbackExtractor(
		[]port.InvoiceExtractor{primary, secondary},
		[]string{cfg.Primary.Provider, secondaryCfg.Provider},
	), nil
}
