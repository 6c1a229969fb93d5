package main

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/jose-valero/bowling-bot/internal/adapters/bowling"
	"github.com/jose-valero/bowling-bot/internal/app/service"
	"github.com/jose-valero/bowling-bot/internal/infra/metrics"
	"github.com/jose-valero/bowling-bot/internal/infra/storage"
)

var (
	lanes       *service.LaneService
	secretValue = os.Getenv("LANE_WEBHOOK_SECRET")
)

func init() {
	api := os.Getenv("BOWLING_API_URL")
	if api == "" {
		fmt.Println("BOWLING_API_URL empty; every event will fail")
	}
	bc := bowling.New(api, bowling.WithObserver(metrics.ObserveBowling))

	// DB opcional: sin DATABASE_URL no hay dedup, pero igual reenviamos
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Println("DATABASE_URL empty; running without dedup")
		lanes = service.NewLaneService(bc, nil)
		return
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		fmt.Println("pgx ParseConfig:", err)
		lanes = service.NewLaneService(bc, nil)
		return
	}
	cfg.MaxConns = 4
	cfg.MaxConnLifetime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		fmt.Println("pgxpool New:", err)
		lanes = service.NewLaneService(bc, nil)
		return
	}
	lanes = service.NewLaneService(bc, storage.NewLaneEventsRepo(stdlib.OpenDBFromPool(pool)))
}

func readSecret(req events.APIGatewayV2HTTPRequest) string {
	for k, v := range req.Headers {
		if strings.EqualFold(k, "x-lane-secret") {
			return v
		}
	}
	return ""
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	fmt.Printf("lane hit | path=%s method=%s ip=%s b64=%v\n",
		req.RawPath, req.RequestContext.HTTP.Method, req.RequestContext.HTTP.SourceIP, req.IsBase64Encoded)

	got := readSecret(req)
	if secretValue == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secretValue)) != 1 {
		fmt.Println("auth: unauthorized (missing/invalid secret)")
		return events.APIGatewayV2HTTPResponse{StatusCode: 401, Body: "unauthorized"}, nil
	}

	body := req.Body
	if req.IsBase64Encoded {
		dec, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return events.APIGatewayV2HTTPResponse{StatusCode: 400, Body: "invalid base64"}, nil
		}
		body = string(dec)
	}

	res, err := lanes.Handle(ctx, []byte(body))
	code, out := service.LaneResponse(res, err)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: code,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(out),
	}, nil
}

func main() { lambda.Start(handler) }
