package cmd

import (
	"agri-drone/core/booking"
	inboundCron "agri-drone/inbound/cron"
	inboundHttp "agri-drone/inbound/http"
	"agri-drone/outbound/ai"
	"agri-drone/outbound/line"
	"agri-drone/outbound/receipt"
	"agri-drone/outbound/sqlgen"
	"agri-drone/outbound/storage"
	"context"
	"fmt"
	"github.com/go-playground/validator/v10"
	"log"
	"log/slog"
	"net/http"
	"os"
	"runtime/pprof"
	"time"
)

func runHttpServerCmd(ctx context.Context) {
	cfg := newCfg("env")

	if cfg.GetString("env") == "dev" {
		cpu, err := os.Create("http-cpu.prof")
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		defer cpu.Close()

		err = pprof.StartCPUProfile(cpu)
		if err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	shutdownTracer := newTracer(ctx, cfg)
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			slog.Error("unable to shutdown tracer", slog.Any("err", err))
		}
	}()

	validate := validator.New()
	printer := newThaiPrinter()

	db := newDb(cfg)
	defer db.Close()

	cacheClient := newRedis(cfg)
	defer cacheClient.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	createEventStream(ctx, js)

	querier := sqlgen.New(db)

	slipStore := &storage.DiskSlipStore{Cfg: cfg}
	if err := slipStore.Init(); err != nil {
		log.Fatalln("unable to init slip store", err)
	}

	lineOutbound := &line.LineOutbound{Cfg: cfg}
	lineOutbound.Init()

	assistantOutbound := &ai.AssistantOutbound{Cfg: cfg}
	assistantOutbound.Init()

	receiptOutbound := &receipt.ReceiptOutbound{Cfg: cfg}
	receiptOutbound.Init()

	priceTableCron := &inboundCron.PriceTableCron{
		Cfg:     cfg,
		Querier: querier,
	}

	if err := priceTableCron.Refresh(ctx); err != nil {
		log.Fatalln("unable to load price table", err)
	}

	codes := booking.NewCodeGenerator(cfg.GetString("booking.code_prefix"), time.Now)
	creator := inboundHttp.NewBookingCreator(cfg, querier, cacheClient, js, codes, printer)
	adminAuth := inboundHttp.AdminAuthMiddleware([]byte(cfg.GetString("admin.jwt_secret")))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		slog.DebugContext(r.Context(), "health check")
		w.WriteHeader(http.StatusOK)
	})

	timeoutMiddleware := inboundHttp.TimeoutMiddleware(20 * time.Second)

	inboundHttp.RegisterPricingHttp(mux, adminAuth, querier, validate, priceTableCron, creator.DepositRate)
	inboundHttp.RegisterBookingHttp(mux, cfg, db, querier, creator, js, slipStore, lineOutbound, receiptOutbound, validate)
	inboundHttp.RegisterAssistantHttp(mux, assistantOutbound, validate)
	inboundHttp.RegisterLineHttp(mux, cfg, cacheClient, querier, creator, lineOutbound, assistantOutbound, lineOutbound)
	inboundHttp.RegisterAuthHttp(mux, cfg, validate)
	inboundHttp.RegisterAdminBookingHttp(mux, adminAuth, db, querier, js, validate)
	inboundHttp.RegisterFleetHttp(mux, adminAuth, querier, validate)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.GetInt("server.port")),
		Handler:           timeoutMiddleware(inboundHttp.CorsMiddleware(mux)),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      25 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("unable to start server", err)
		}
	}()

	slog.Info("http server started", slog.String("addr", srv.Addr))

	go func() {
		priceTableCron.Start(ctx)
	}()

	<-ctx.Done()

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatalln("unable to shutdown server", err)
	}

	slog.Info("http server stopped")
}
