package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/annel0/isocity/internal/config"
	"github.com/annel0/isocity/internal/eventbus"
	"github.com/annel0/isocity/internal/game"
	"github.com/annel0/isocity/internal/iso"
	"github.com/annel0/isocity/internal/logging"
	"github.com/annel0/isocity/internal/middleware"
	"github.com/annel0/isocity/internal/observability"
	"github.com/annel0/isocity/internal/world"
)

func main() {
	var (
		configPath = flag.String("config", "", "Путь к YAML-конфигурации (по умолчанию $GAME_CONFIG)")
		scriptPath = flag.String("script", "", "Сценарий ввода для воспроизведения")
		serve      = flag.Bool("serve", false, "После сценария обслуживать /metrics до сигнала")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	logging.Configure(cfg.Logging.LoggingOptions())
	cfg.Logging.ApplyComponentLevels(logging.GetLoggerManager())
	if err := logging.InitDefaultLogger("citybuilder"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, *scriptPath, *serve)
	stop()

	if err != nil {
		logging.Error("❌ %v", err)
	}
	logging.GetLoggerManager().CloseAll()
	logging.CloseDefaultLogger()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, scriptPath string, serve bool) error {
	logging.Info("🏙️ Запуск: поле %dx%d (%s), политика %s", cfg.Board.Width, cfg.Board.Height, cfg.Board.Generator, cfg.Sculpt.CommitPolicy)

	if cfg.Telemetry.Enabled {
		shutdown, err := observability.InitTelemetry(ctx, observability.Options{
			ServiceName: cfg.Telemetry.Service,
			Endpoint:    cfg.Telemetry.Endpoint,
			Insecure:    cfg.Telemetry.Insecure,
		})
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logging.Warn("Ошибка остановки телеметрии: %v", err)
			}
		}()
	}

	// === ШИНА СОБЫТИЙ И МЕТРИКИ ===
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	bus := eventbus.NewMemoryBus(256)
	defer bus.Close()

	if _, err := eventbus.StartLoggingListener(bus); err != nil {
		return fmt.Errorf("start logging listener: %w", err)
	}
	if _, err := eventbus.StartEventCounter(bus, reg); err != nil {
		return fmt.Errorf("start event counter: %w", err)
	}
	exporter, err := eventbus.NewMetricsExporter(bus, reg)
	if err != nil {
		return fmt.Errorf("metrics exporter: %w", err)
	}
	exporter.Start(time.Second)
	defer exporter.Stop()

	if cfg.Metrics.Addr != "" {
		handler, err := metricsHandler(reg)
		if err != nil {
			return fmt.Errorf("metrics handler: %w", err)
		}
		srv := &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Error("❌ Сервер метрик: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		logging.Info("📊 Метрики: http://%s/metrics", cfg.Metrics.Addr)
	}

	// === МИР И СЕССИЯ ===
	policy, err := cfg.Sculpt.Policy()
	if err != nil {
		return err
	}
	tool, err := game.ParseTool(cfg.Session.StartTool)
	if err != nil {
		return err
	}

	board := world.NewBoard(cfg.Board.Width, cfg.Board.Height, cfg.Board.NewGenerator(), policy)
	session := game.NewSession(board, game.Options{
		Focal: world.Vertex{X: cfg.Session.FocalX, Y: cfg.Session.FocalY},
		Tool:  tool,
		Bus:   bus,
	})

	w, h := cfg.View.ViewportSize()
	viewport := iso.NewViewport(w, h, cfg.View.SidebarWidth, iso.NewProjector(cfg.Projection()))
	ctrl := game.NewController(session, viewport)

	if scriptPath != "" {
		steps, err := game.LoadScript(scriptPath)
		if err != nil {
			return err
		}
		report, err := ctrl.Replay(ctx, steps)
		if err != nil {
			return fmt.Errorf("replay %s: %w", scriptPath, err)
		}
		logging.Info("▶️ Сценарий: шагов %d, применено %d, пропущено %d, отклонено %d",
			report.Steps, report.Applied, report.Ignored, len(report.Rejected))
		for _, rej := range report.Rejected {
			logging.Warn("   %v", rej)
		}
	}

	fmt.Print(renderMap(session, viewport))

	if serve && cfg.Metrics.Addr != "" {
		logging.Info("Ожидание сигнала завершения...")
		<-ctx.Done()
	}

	logging.Info("👋 Сессия %s завершена", session.ID())
	return nil
}

// metricsHandler отдаёт /metrics реестра с логированием и метриками самих запросов
func metricsHandler(reg *prometheus.Registry) (http.Handler, error) {
	mw, err := middleware.NewPrometheusMiddleware("isocity", reg)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	return middleware.NewRequestLogger().Wrap(mw.Wrap(mux)), nil
}
