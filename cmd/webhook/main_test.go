package main

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/jose-valero/bowling-bot/internal/adapters/bowling"
	"github.com/jose-valero/bowling-bot/internal/app/service"
)

func setup(t *testing.T) *[]string {
	t.Helper()
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = io.WriteString(w, `{"frame":1}`)
	}))
	t.Cleanup(srv.Close)

	oldLanes, oldSecret := lanes, secretValue
	lanes = service.NewLaneService(bowling.New(srv.URL), nil)
	secretValue = "s3cret"
	t.Cleanup(func() { lanes, secretValue = oldLanes, oldSecret })
	return &paths
}

func TestHandlerForwardsRoll(t *testing.T) {
	paths := setup(t)
	body := `{"game_id":"g1","player_id":"p1","pins":8}`
	res, err := handler(context.Background(), events.APIGatewayV2HTTPRequest{
		Headers:         map[string]string{"x-lane-secret": "s3cret"},
		Body:            base64.StdEncoding.EncodeToString([]byte(body)),
		IsBase64Encoded: true,
	})
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if res.StatusCode != 200 || !strings.Contains(res.Body, `"frame":1`) {
		t.Fatalf("res = %+v", res)
	}
	if len(*paths) != 1 || (*paths)[0] != "/g1/roll" {
		t.Fatalf("paths = %v", *paths)
	}
}

func TestHandlerUnauthorized(t *testing.T) {
	paths := setup(t)
	res, _ := handler(context.Background(), events.APIGatewayV2HTTPRequest{
		Headers: map[string]string{"X-Lane-Secret": "wrong"},
		Body:    `{"game_id":"g1","player_id":"p1","pins":8}`,
	})
	if res.StatusCode != 401 || len(*paths) != 0 {
		t.Fatalf("res = %+v paths=%v", res, *paths)
	}
}

func TestHandlerBadEvent(t *testing.T) {
	setup(t)
	res, _ := handler(context.Background(), events.APIGatewayV2HTTPRequest{
		Headers: map[string]string{"X-Lane-Secret": "s3cret"},
		Body:    `{"game_id":"g1"}`,
	})
	if res.StatusCode != 400 {
		t.Fatalf("res = %+v", res)
	}
}
