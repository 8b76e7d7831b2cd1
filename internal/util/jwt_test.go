package util

import (
	"peerlearn_backend/internal/model"
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Email: "rt@example.com"}
	user.ID = model.GenerateUUID()

	token, err := GenerateJWT(user, "secret-one", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseJWT(token, "secret-one")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	user := &model.User{Email: "ws@example.com"}
	user.ID = model.GenerateUUID()

	token, err := GenerateJWT(user, "secret-one", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseJWT(token, "secret-two"); err == nil {
		t.Fatal("token accepted with wrong secret")
	}
}

func TestJWTExpired(t *testing.T) {
	user := &model.User{Email: "exp@example.com"}
	user.ID = model.GenerateUUID()

	token, err := GenerateJWT(user, "secret-one", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseJWT(token, "secret-one"); err == nil {
		t.Fatal("expired token accepted")
	}
}
