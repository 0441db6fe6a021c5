package auth

import "testing"

func TestLogin(t *testing.T) {
	tests := []struct {
		name    string
		entered string
		actual  string
		wantErr bool
	}{
		{"correct password", "admin123", "admin123", false},
		{"wrong password", "nope", "admin123", true},
		{"empty entered", "", "admin123", true},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewGate()
			token, err := gate.Login(tt.entered, tt.actual)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if err != ErrUnauthorized {
					t.Errorf("Login() error = %v, want %v", err, ErrUnauthorized)
				}
				if token != "" {
					t.Error("Login() returned a token on failure")
				}
				return
			}
			if token == "" {
				t.Error("Login() returned an empty token on success")
			}
			if !gate.Authorized(token) {
				t.Error("issued token is not authorized")
			}
		})
	}
}

func TestTokensAreUnique(t *testing.T) {
	gate := NewGate()
	t1, _ := gate.Login("admin123", "admin123")
	t2, _ := gate.Login("admin123", "admin123")
	if t1 == t2 {
		t.Error("two logins produced the same token")
	}
	if !gate.Authorized(t1) || !gate.Authorized(t2) {
		t.Error("both tokens should be valid simultaneously")
	}
}

func TestAuthorized(t *testing.T) {
	gate := NewGate()
	if gate.Authorized("") {
		t.Error("empty token must not be authorized")
	}
	if gate.Authorized("made-up-token") {
		t.Error("unissued token must not be authorized")
	}
}

func TestLogout(t *testing.T) {
	gate := NewGate()
	token, err := gate.Login("admin123", "admin123")
	if err != nil {
		t.Fatal(err)
	}

	gate.Logout(token)
	if gate.Authorized(token) {
		t.Error("token still authorized after logout")
	}

	// Unknown token logout is a no-op
	gate.Logout("never-issued")
}
