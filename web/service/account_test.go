package service

import (
	"errors"
	"testing"

	"orderdesk/config"
	"orderdesk/database/model"
)

func openForm(username string) *RegistrationForm {
	return &RegistrationForm{
		Username:        username,
		Password:        "secret-pass",
		FirstName:       "Dana",
		LastName:        "Kassab",
		Email:           username + "@example.com",
		Phone:           "0500000000",
		ChallengeAnswer: "7",
	}
}

func TestRegisterBootstrapFirstAccountBecomesAdmin(t *testing.T) {
	setupTestDB(t)
	svc := AccountService{}

	account, err := svc.Register(&RegistrationForm{Username: "first", Password: "pw"}, config.RegistrationBootstrap)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if account.Role != model.RoleAdmin {
		t.Errorf("first account role = %q, expected admin", account.Role)
	}
	if account.RequestToken == "" {
		t.Error("expected a request token to be issued")
	}

	_, err = svc.Register(&RegistrationForm{Username: "second", Password: "pw"}, config.RegistrationBootstrap)
	if !errors.Is(err, ErrRegistrationShut) {
		t.Errorf("second registration err = %v, expected ErrRegistrationShut", err)
	}

	count, err := svc.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("account count = %d, expected 1", count)
	}
}

func TestRegisterOpenValidation(t *testing.T) {
	setupTestDB(t)
	svc := AccountService{}

	tests := []struct {
		name     string
		mutate   func(f *RegistrationForm)
		expected error
	}{
		{
			name:     "missing profile field",
			mutate:   func(f *RegistrationForm) { f.Email = "" },
			expected: ErrMissingField,
		},
		{
			name:     "short password",
			mutate:   func(f *RegistrationForm) { f.Password = "abc" },
			expected: ErrPasswordTooShort,
		},
		{
			name:     "wrong challenge answer",
			mutate:   func(f *RegistrationForm) { f.ChallengeAnswer = "8" },
			expected: ErrWrongChallenge,
		},
		{
			name:     "missing username",
			mutate:   func(f *RegistrationForm) { f.Username = "" },
			expected: ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := openForm("candidate")
			tt.mutate(form)
			if _, err := svc.Register(form, config.RegistrationOpen); !errors.Is(err, tt.expected) {
				t.Errorf("err = %v, expected %v", err, tt.expected)
			}
		})
	}

	count, err := svc.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("account count after failed registrations = %d, expected 0", count)
	}
}

func TestRegisterOpenAlwaysEmployee(t *testing.T) {
	setupTestDB(t)
	svc := AccountService{}

	account, err := svc.Register(openForm("agent1"), config.RegistrationOpen)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if account.Role != model.RoleEmployee {
		t.Errorf("role = %q, expected employee", account.Role)
	}

	second, err := svc.Register(openForm("agent2"), config.RegistrationOpen)
	if err != nil {
		t.Fatalf("second register: %v", err)
	}
	if second.Role != model.RoleEmployee {
		t.Errorf("second role = %q, expected employee", second.Role)
	}
	if second.RequestToken == account.RequestToken {
		t.Error("two accounts share a request token")
	}
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	setupTestDB(t)
	svc := AccountService{}

	if _, err := svc.Register(openForm("taken"), config.RegistrationOpen); err != nil {
		t.Fatalf("seed register: %v", err)
	}

	_, err := svc.Register(openForm("taken"), config.RegistrationOpen)
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("duplicate username err = %v, expected ErrDuplicateUsername", err)
	}

	dupEmail := openForm("someoneelse")
	dupEmail.Email = "taken@example.com"
	_, err = svc.Register(dupEmail, config.RegistrationOpen)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("duplicate email err = %v, expected ErrDuplicateEmail", err)
	}

	count, err := svc.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("account count = %d, expected the store unchanged at 1", count)
	}
}

func TestAuthenticate(t *testing.T) {
	setupTestDB(t)
	svc := AccountService{}

	if _, err := svc.Register(openForm("dana"), config.RegistrationOpen); err != nil {
		t.Fatalf("seed register: %v", err)
	}

	if svc.Authenticate("dana", "secret-pass") == nil {
		t.Error("expected valid credentials to authenticate")
	}
	if svc.Authenticate("dana", "wrong") != nil {
		t.Error("expected wrong password to fail")
	}
	if svc.Authenticate("nobody", "secret-pass") != nil {
		t.Error("expected unknown username to fail")
	}
}

func TestDeleteRefusesSelf(t *testing.T) {
	setupTestDB(t)
	svc := AccountService{}

	admin, err := svc.Register(&RegistrationForm{Username: "root", Password: "pw"}, config.RegistrationBootstrap)
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	other, err := svc.Create(&model.Account{Username: "agent", Role: model.RoleEmployee}, "agent-pass")
	if err != nil {
		t.Fatalf("seed employee: %v", err)
	}

	if err := svc.Delete(admin.Id, admin.Id); !errors.Is(err, ErrSelfDelete) {
		t.Errorf("self delete err = %v, expected ErrSelfDelete", err)
	}

	if err := svc.Delete(other.Id, admin.Id); err != nil {
		t.Fatalf("delete other: %v", err)
	}
	if svc.Authenticate("agent", "agent-pass") != nil {
		t.Error("expected deleted account to no longer authenticate")
	}
}

func TestGetByToken(t *testing.T) {
	setupTestDB(t)
	svc := AccountService{}

	account, err := svc.Create(&model.Account{Username: "agent", Role: model.RoleEmployee}, "pw")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	resolved, err := svc.GetByToken(account.RequestToken)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Username != "agent" {
		t.Errorf("resolved username = %q, expected agent", resolved.Username)
	}

	if _, err := svc.GetByToken("no-such-token"); err == nil {
		t.Error("expected an unknown token to fail resolution")
	}
}

func TestListExcludesPasswordHash(t *testing.T) {
	setupTestDB(t)
	svc := AccountService{}

	if _, err := svc.Create(&model.Account{Username: "agent", Role: model.RoleEmployee}, "pw"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	accounts, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("len = %d, expected 1", len(accounts))
	}
	if accounts[0].Username != "agent" || accounts[0].RequestToken == "" {
		t.Errorf("unexpected projection: %+v", accounts[0])
	}
}
