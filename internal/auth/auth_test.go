package auth

import (
	"context"
	"testing"

	"github.com/hamidmukhtar/SpaceTravelHub/internal/config"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/store"
)

func newHandler() (*AuthHandler, *store.MemStore) {
	s := store.NewMemStore()
	cfg := &config.Config{JWTSecret: "test-secret"}
	return NewAuthHandler(cfg, s), s
}

func registerRequest(username string) *RegisterRequest {
	req := &RegisterRequest{}
	req.Body.Username = username
	req.Body.Password = "supersecret"
	req.Body.Email = username + "@example.com"
	req.Body.FullName = "Test User"
	return req
}

func TestHandleRegister(t *testing.T) {
	handler, s := newHandler()

	resp, err := handler.HandleRegister(context.Background(), registerRequest("alice"))
	if err != nil {
		t.Fatalf("HandleRegister returned error: %v", err)
	}
	if resp.Body.Username != "alice" {
		t.Errorf("expected username alice, got %s", resp.Body.Username)
	}
	if resp.Body.ID != 1 {
		t.Errorf("expected user id 1, got %d", resp.Body.ID)
	}

	// Password is stored hashed, never plain.
	user, err := s.GetUser(resp.Body.ID)
	if err != nil {
		t.Fatalf("failed to load user: %v", err)
	}
	if user.Password == "supersecret" {
		t.Error("password stored in plain text")
	}
	if !CheckPassword(user.Password, "supersecret") {
		t.Error("stored hash does not verify against the password")
	}
}

func TestHandleRegisterDuplicateUsername(t *testing.T) {
	handler, s := newHandler()

	if _, err := handler.HandleRegister(context.Background(), registerRequest("alice")); err != nil {
		t.Fatalf("first register returned error: %v", err)
	}

	if _, err := handler.HandleRegister(context.Background(), registerRequest("alice")); err == nil {
		t.Fatal("expected conflict error for duplicate username")
	}

	// Only one record exists.
	if _, err := s.GetUser(2); err == nil {
		t.Error("expected no second user record")
	}
}

func TestHandleLogin(t *testing.T) {
	handler, _ := newHandler()

	if _, err := handler.HandleRegister(context.Background(), registerRequest("alice")); err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	login := &LoginRequest{}
	login.Body.Username = "alice"
	login.Body.Password = "supersecret"

	resp, err := handler.HandleLogin(context.Background(), login)
	if err != nil {
		t.Fatalf("HandleLogin returned error: %v", err)
	}
	if resp.SetCookie == "" {
		t.Error("expected a session cookie")
	}
	if resp.Body.Username != "alice" {
		t.Errorf("expected username alice, got %s", resp.Body.Username)
	}

	login.Body.Password = "wrong"
	if _, err := handler.HandleLogin(context.Background(), login); err == nil {
		t.Fatal("expected error for bad credentials")
	}

	login.Body.Username = "nobody"
	if _, err := handler.HandleLogin(context.Background(), login); err == nil {
		t.Fatal("expected error for unknown user")
	}
}

func TestHandleMe(t *testing.T) {
	handler, s := newHandler()

	if _, err := handler.HandleRegister(context.Background(), registerRequest("alice")); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	user, _ := s.GetUserByUsername("alice")

	t.Run("Authenticated", func(t *testing.T) {
		token, err := handler.GenerateToken(user.ID)
		if err != nil {
			t.Fatalf("GenerateToken returned error: %v", err)
		}
		input := &MeRequest{}
		input.Cookie = "auth_token=" + token

		resp, err := handler.HandleMe(context.Background(), input)
		if err != nil {
			t.Fatalf("HandleMe returned error: %v", err)
		}
		if resp.Body.Username != user.Username {
			t.Errorf("expected username %s, got %s", user.Username, resp.Body.Username)
		}
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		input := &MeRequest{}
		if _, err := handler.HandleMe(context.Background(), input); err == nil {
			t.Fatal("expected error for unauthenticated request, got nil")
		}
	})

	t.Run("ContextUserID", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDKey, user.ID)
		resp, err := handler.HandleMe(ctx, &MeRequest{})
		if err != nil {
			t.Fatalf("HandleMe returned error: %v", err)
		}
		if resp.Body.ID != user.ID {
			t.Errorf("expected user id %d, got %d", user.ID, resp.Body.ID)
		}
	})
}

func TestAuthorizeRejectsForgedToken(t *testing.T) {
	handler, _ := newHandler()

	otherCfg := &config.Config{JWTSecret: "other-secret"}
	other := NewAuthHandler(otherCfg, store.NewMemStore())
	token, err := other.GenerateToken(1)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := handler.Authorize(context.Background(), "auth_token="+token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}
