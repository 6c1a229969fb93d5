package main

import (
	"context"
	"strings"
	"testing"
)

func TestHandlerWithoutDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	got, err := handler(context.Background())
	if err != nil || got != "no DATABASE_URL" {
		t.Fatalf("handler = %q, %v", got, err)
	}
}

func TestHandlerBadDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://%zz")
	got, err := handler(context.Background())
	if err != nil || !strings.HasPrefix(got, "parse: ") {
		t.Fatalf("handler = %q, %v", got, err)
	}
}
