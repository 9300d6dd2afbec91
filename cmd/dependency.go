package cmd

import (
	"agri-drone/common/jetstream"
	"agri-drone/common/otel"
	"context"
	"fmt"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	natsJs "github.com/nats-io/nats.go/jetstream"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"log"
	"os"
)

func newCfg(name string) *viper.Viper {
	config := viper.New()

	config.SetConfigName(name)
	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	config.SetDefault("server.port", 8080)
	config.SetDefault("server.timezone", "Asia/Bangkok")
	config.SetDefault("booking.deposit_rate", "0.30")
	config.SetDefault("booking.code_prefix", "BK")
	config.SetDefault("booking.submit_lock_ttl", "1m")
	config.SetDefault("booking.insert_attempts", 3)
	config.SetDefault("pricing.refresh.interval", "1m")
	config.SetDefault("pricing.refresh.timeout", "10s")
	config.SetDefault("upload.dir", "uploads/slips")
	config.SetDefault("upload.max_bytes", 5<<20)
	config.SetDefault("admin.token_ttl", "12h")
	config.SetDefault("line.api_url", "https://api.line.me")
	config.SetDefault("line.session_ttl", "30m")
	config.SetDefault("ai.endpoint", "https://generativelanguage.googleapis.com")
	config.SetDefault("ai.model", "gemini-1.5-flash")
	config.SetDefault("ai.timeout", "15s")
	config.SetDefault("otel.service_name", "agri-drone")

	err := config.ReadInConfig()
	if err != nil {
		log.Fatalln(err)
	}

	err = os.Setenv("TZ", config.GetString("server.timezone"))
	if err != nil {
		log.Fatalln(err)
	}

	return config
}

func newDb(cfg *viper.Viper) *pgxpool.Pool {
	username := cfg.GetString("db.user")
	password := cfg.GetString("db.password")
	host := cfg.GetString("db.host")
	port := cfg.GetInt("db.port")
	database := cfg.GetString("db.name")
	maxConn := cfg.GetInt("db.pool.max")
	minConn := cfg.GetInt("db.pool.min")
	timezone := cfg.GetString("server.timezone")

	connString := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?timezone=%s",
		username, password, host, port, database, timezone)

	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		log.Fatalln(err)
	}

	if maxConn > 0 {
		config.MaxConns = int32(maxConn)
	}
	config.MinConns = int32(minConn)
	config.ConnConfig.Tracer = &otel.PgxCustomTracer{}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatalln(err)
	}

	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatalln(err)
	}

	return pool
}

func newRedis(cfg *viper.Viper) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.GetString("redis.addr"),
		Password: cfg.GetString("redis.password"),
		DB:       0,
	})

	err := rdb.Ping(context.Background()).Err()
	if err != nil {
		log.Fatalln(err)
	}

	return rdb
}

func newNats(viper *viper.Viper) *nats.Conn {
	conn, err := nats.Connect(viper.GetString("nats.addr"))
	if err != nil {
		log.Fatalln(err)
	}

	return conn
}

func newJs(conn *nats.Conn) natsJs.JetStream {
	js, err := natsJs.New(conn)
	if err != nil {
		log.Fatalln(err)
	}

	return js
}

func createEventStream(ctx context.Context, js natsJs.JetStream) natsJs.Stream {
	st, err := jetstream.CreateEventStream(ctx, js, -1)
	if err != nil {
		log.Fatalln("unable to create event stream", err)
	}

	return st
}

func newTracer(ctx context.Context, cfg *viper.Viper) func(context.Context) error {
	shutdown, err := otel.InitTracer(ctx, cfg.GetString("otel.endpoint"), cfg.GetString("otel.service_name"))
	if err != nil {
		log.Fatalln("unable to init tracer", err)
	}

	return shutdown
}

func newThaiPrinter() *message.Printer {
	return message.NewPrinter(language.Thai)
}
