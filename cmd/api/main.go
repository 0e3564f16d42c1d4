package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/joho/godotenv"

	"github.com/mockforge/mockforge/internal/config"
	"github.com/mockforge/mockforge/internal/handler"
	"github.com/mockforge/mockforge/internal/model/mockapi"
	"github.com/mockforge/mockforge/internal/service/mockdata"
	"github.com/mockforge/mockforge/internal/service/requestlog"
	"github.com/mockforge/mockforge/internal/service/schemagen"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	store := mockapi.NewMemoryStore()
	generator := mockdata.NewGenerator(cfg.Mock.RecordCount)
	reqLog := requestlog.NewLog(cfg.Mock.RequestLogCapacity)

	// The chat model is optional; without it every generation request
	// resolves through the deterministic templates.
	var chatModel model.ChatModel
	if cfg.AI.Enabled() {
		chatModel, err = cfg.AI.NewChatModel(ctx)
		if err != nil {
			log.Printf("warning: failed to create chat model: %v", err)
			log.Println("continuing with template-based schema generation only")
			chatModel = nil
		} else {
			log.Println("chat model initialized successfully")
		}
	} else {
		log.Println("Ark credentials not configured, using template-based schema generation only")
	}

	schemaSvc, err := schemagen.NewService(ctx, chatModel)
	if err != nil {
		log.Printf("warning: failed to initialize schema generation chain: %v", err)
		log.Println("continuing with template-based schema generation only")
		schemaSvc, _ = schemagen.NewService(ctx, nil)
	}

	router := handler.NewRouter(store, schemaSvc, generator, reqLog, cfg.Server.PublicBaseURL)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("MockForge backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
