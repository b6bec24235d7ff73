package secrethash_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/jaekwang-park/auth-api/secrethash"
)

// Expected values were computed with an independent HMAC-SHA256
// implementation and are pinned here so the algorithm can never drift:
// key material, message ordering, and output encoding are all locked in.
func TestCompute_GoldenVectors(t *testing.T) {
	tests := []struct {
		name         string
		username     string
		clientID     string
		clientSecret string
		want         string
	}{
		{
			name:         "reference vector",
			username:     "testuser",
			clientID:     "client123",
			clientSecret: "secret456",
			want:         "8/Yhmn+D5WWpokviJc87gBuEnyPis7cM/GXZqVnIcVE=",
		},
		{
			name:         "second reference vector",
			username:     "alice",
			clientID:     "client123",
			clientSecret: "mysecret",
			want:         "AYTa4U3dSK66QnnGsLZQ7kR4haLHutwpRDfHpNH2JC8=",
		},
		{
			name:         "single-character inputs",
			username:     "a",
			clientID:     "b",
			clientSecret: "c",
			want:         "HUmkKcRzHEjRK+RdPR2FjN2zou7RlOpQ9BCfCY51mpM=",
		},
		{
			name:         "empty username",
			username:     "",
			clientID:     "client123",
			clientSecret: "secret456",
			want:         "sdCx29x3leKENRAU/5zgyd2b7O+V6NYl1jQUN8m8h4s=",
		},
		{
			name:         "empty client id",
			username:     "testuser",
			clientID:     "",
			clientSecret: "secret456",
			want:         "kvEBnJZ/KYecxDyfUXhnA+QCxJhFZ8IGSWZ62lmKMSE=",
		},
		{
			name:         "unicode inputs",
			username:     "üserñame",
			clientID:     "клиент",
			clientSecret: "秘密のかぎ",
			want:         "9q4Rg6IaM5INBYo59QChIs0mlwIsvqoI1uQLUPfkeWg=",
		},
		{
			name:         "whitespace and control characters",
			username:     "user\nwith\ttabs",
			clientID:     "client id with spaces",
			clientSecret: "s3cr3t",
			want:         "SBaWRc5ZQhchRdtRdgaNlzjMrLPcNwiZ0wKkq2tt47M=",
		},
		{
			name:         "1000-character inputs",
			username:     strings.Repeat("x", 1000),
			clientID:     strings.Repeat("y", 1000),
			clientSecret: strings.Repeat("z", 1000),
			want:         "c8j/svkEmolgZPpFcCLiahL/PvAXB/Hqs350CDJLoyM=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := secrethash.Compute(tt.username, tt.clientID, tt.clientSecret)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Compute() = %q, want %q", got, tt.want)
			}
			if len(got) != secrethash.EncodedLen {
				t.Errorf("output length = %d, want %d", len(got), secrethash.EncodedLen)
			}
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	h1, err := secrethash.Compute("alice", "client123", "mysecret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, err := secrethash.Compute("alice", "client123", "mysecret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h1 != h2 {
		t.Errorf("same inputs produced different hashes: %q vs %q", h1, h2)
	}
}

func TestCompute_ArgumentOrderMatters(t *testing.T) {
	// username and clientID are concatenated without a separator, so
	// swapping them changes the message bytes and must change the MAC.
	h1, err := secrethash.Compute("abc", "def", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, err := secrethash.Compute("def", "abc", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h1 == h2 {
		t.Error("swapping username and clientID should change the hash")
	}
	if h1 != "GUU6+syruI52ZqBQaTa5jBp/SK/q3VHFQiPpan02sIE=" {
		t.Errorf("Compute(abc, def, secret) = %q, want pinned value", h1)
	}
	if h2 != "79/yOLwgIgn3qH9KUpVtxhw/4n5FalCXGmvG7j89+MA=" {
		t.Errorf("Compute(def, abc, secret) = %q, want pinned value", h2)
	}
}

func TestCompute_EachInputAffectsOutput(t *testing.T) {
	base, err := secrethash.Compute("user", "client", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name         string
		username     string
		clientID     string
		clientSecret string
	}{
		{"changed username", "user2", "client", "secret"},
		{"changed clientID", "user", "client2", "secret"},
		{"changed clientSecret", "user", "client", "secret2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := secrethash.Compute(tt.username, tt.clientID, tt.clientSecret)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == base {
				t.Errorf("expected %s to change the hash", tt.name)
			}
		})
	}
}

func TestCompute_EmptySecret(t *testing.T) {
	tests := []struct {
		name     string
		username string
		clientID string
	}{
		{"normal inputs", "testuser", "client123"},
		{"empty username", "", "client123"},
		{"all empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := secrethash.Compute(tt.username, tt.clientID, "")
			if err == nil {
				t.Fatal("expected error for empty secret, got nil")
			}
			if !errors.Is(err, secrethash.ErrInvalidKey) {
				t.Errorf("expected ErrInvalidKey, got %v", err)
			}
			if got != "" {
				t.Errorf("expected empty output on error, got %q", got)
			}
		})
	}
}

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)

func TestCompute_OutputShape(t *testing.T) {
	inputs := [][3]string{
		{"testuser", "client123", "secret456"},
		{"", "", "k"},
		{strings.Repeat("long", 2048), "client", "secret"},
		{"user", "client", strings.Repeat("s", 4096)},
	}

	for _, in := range inputs {
		got, err := secrethash.Compute(in[0], in[1], in[2])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 44 {
			t.Errorf("output length = %d, want 44", len(got))
		}
		if !base64Pattern.MatchString(got) {
			t.Errorf("output %q is not standard base64", got)
		}
	}
}
