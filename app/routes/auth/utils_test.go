package auth

import (
	"testing"

	"github.com/dghimirey/edVance/app/config"
	"github.com/dghimirey/edVance/app/models"
)

func TestJWTRoundtrip(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	token, err := GenerateJWT("u1", "jane@school.test", "Jane Doe", models.RoleTeacher)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "jane@school.test" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.Role != models.RoleTeacher {
		t.Errorf("role = %q, want teacher", claims.Role)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "secret-one"}
	token, err := GenerateJWT("u1", "jane@school.test", "Jane Doe", models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	config.AppConfig = &config.Config{JWTSecret: "secret-two"}
	if _, err := ValidateJWT(token); err == nil {
		t.Error("token signed with a different secret must not validate")
	}
}

func TestJWTRejectsGarbage(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Error("malformed token must not validate")
	}
}
