package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/tontonjojo/chez-leonie/internal/adapter/storage"
	"github.com/tontonjojo/chez-leonie/internal/core/domain"
	"github.com/tontonjojo/chez-leonie/internal/core/service"
	"github.com/tontonjojo/chez-leonie/internal/port"
)

// Smoke-run of the whole order lifecycle against a real substrate. Picks
// Redis (REDIS_ADDR) or MySQL (MYSQL_DSN), and degrades to the in-memory
// substrate when neither is reachable, same as a headless session.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	kv := openSubstrate(ctx, logger)

	menuStore := storage.NewKeyed[[]domain.MenuItem](kv, storage.MenuItemsKey, logger)
	orderStore := storage.NewKeyed[[]domain.Order](kv, storage.OrdersKey, logger)

	catalog := service.NewCatalogService(menuStore)
	composer := service.NewOrderService(orderStore, 16)
	defer composer.Close()
	delivery := service.NewDeliveryService(orderStore)
	reset := service.NewResetService(menuStore, orderStore)

	reset.ClearAll(ctx)

	pizza, err := catalog.Add(ctx, "Pizza Margherita", 12.50)
	if err != nil {
		logger.Error("add dish failed", "error", err)
		os.Exit(1)
	}
	tarte, _ := catalog.Add(ctx, "Tarte aux pommes", 4.50)
	logger.Info("catalog seeded", "dishes", len(catalog.Items(ctx)))

	composer.AddToDraft(pizza)
	composer.AddToDraft(pizza)
	composer.AddToDraft(tarte)
	logger.Info("draft composed", "lines", len(composer.Draft()), "total", composer.Total())

	order, err := composer.Finalize(ctx)
	if err != nil {
		logger.Error("finalize failed", "error", err)
		os.Exit(1)
	}
	logger.Info("order placed", "number", order.Number(), "total", order.Total, "items", order.ItemCount())

	notified := <-composer.Events()
	logger.Info("kitchen notified", "number", notified.Number())

	for _, pending := range delivery.ListPending(ctx) {
		delivery.MarkDelivered(ctx, pending.ID)
	}

	delivered := delivery.ListDelivered(ctx)
	logger.Info("deliveries done", "count", len(delivered))
}

func openSubstrate(ctx context.Context, logger *slog.Logger) port.KeyValue {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		if err := rdb.Ping(ctx).Err(); err == nil {
			logger.Info("using redis substrate", "addr", addr)
			return storage.NewRedisAdapter(rdb)
		} else {
			logger.Warn("redis unreachable, falling back", "addr", addr, "error", err)
		}
	}

	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		db, err := sql.Open("mysql", dsn)
		if err == nil {
			if err = db.PingContext(ctx); err == nil {
				logger.Info("using mysql substrate")
				return storage.NewMySQLAdapter(db)
			}
		}
		logger.Warn("mysql unreachable, falling back", "error", err)
	}

	logger.Info("using in-memory substrate, state will not survive exit")
	return storage.NewMemoryAdapter()
}
