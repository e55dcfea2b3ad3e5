package service

import (
	"errors"

	"orderdesk/config"
	"orderdesk/database"
	"orderdesk/database/model"
	"orderdesk/logger"
	"orderdesk/util/crypto"

	"github.com/google/uuid"
)

// Field-level conflict and validation errors, distinguished from generic
// storage failures so forms can report them inline.
var (
	ErrDuplicateUsername = errors.New("username is already taken")
	ErrDuplicateEmail    = errors.New("email is already registered")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters")
	ErrWrongChallenge    = errors.New("challenge answer is wrong")
	ErrMissingField      = errors.New("required field is missing")
	ErrRegistrationShut  = errors.New("registration is closed")
	ErrSelfDelete        = errors.New("cannot delete your own account")
)

// Challenge is the static anti-automation question shown on the open
// registration form. Not a production-grade control.
const (
	ChallengeQuestion = "What is 3 + 4?"
	challengeAnswer   = "7"
)

const minPasswordLen = 6

// AccountService manages staff accounts and their routing tokens.
type AccountService struct{}

// AccountDTO is the projection exposed to the admin panel. It never
// carries the password hash.
type AccountDTO struct {
	Id           int        `json:"id"`
	Username     string     `json:"username"`
	Role         model.Role `json:"role"`
	RequestToken string     `json:"requestToken"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
}

func toDTO(a *model.Account) AccountDTO {
	return AccountDTO{
		Id:           a.Id,
		Username:     a.Username,
		Role:         a.Role,
		RequestToken: a.RequestToken,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Email:        a.Email,
		Phone:        a.Phone,
	}
}

// Authenticate verifies the credentials and returns the account on
// success. Unknown usernames and wrong passwords fail identically.
func (s *AccountService) Authenticate(username, password string) *model.Account {
	db := database.GetDB()
	account := &model.Account{}
	err := db.Where("username = ?", username).First(account).Error
	if err != nil {
		if !database.IsNotFound(err) {
			logger.Warning("account lookup failed:", err)
		}
		return nil
	}
	if !crypto.CheckPasswordHash(account.PasswordHash, password) {
		return nil
	}
	return account
}

// RegistrationForm carries the fields of the self-service registration
// page, bound once at the boundary.
type RegistrationForm struct {
	Username        string `form:"username"`
	Password        string `form:"password"`
	FirstName       string `form:"firstName"`
	LastName        string `form:"lastName"`
	Email           string `form:"email"`
	Phone           string `form:"phone"`
	WorkType        string `form:"workType"`
	Gender          string `form:"gender"`
	Age             int    `form:"age"`
	ChallengeAnswer string `form:"challengeAnswer"`
}

// Register creates an account under the active registration policy.
// Bootstrap mode only admits the first account, as admin. Open mode
// admits anyone as employee after full validation.
func (s *AccountService) Register(form *RegistrationForm, mode config.RegistrationMode) (*model.Account, error) {
	if form.Username == "" || form.Password == "" {
		return nil, ErrMissingField
	}

	role := model.RoleEmployee
	switch mode {
	case config.RegistrationBootstrap:
		count, err := s.Count()
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrRegistrationShut
		}
		role = model.RoleAdmin
	case config.RegistrationOpen:
		if form.FirstName == "" || form.LastName == "" || form.Email == "" || form.Phone == "" {
			return nil, ErrMissingField
		}
		if len(form.Password) < minPasswordLen {
			return nil, ErrPasswordTooShort
		}
		if form.ChallengeAnswer != challengeAnswer {
			return nil, ErrWrongChallenge
		}
	}

	account := &model.Account{
		Username:  form.Username,
		Role:      role,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		WorkType:  form.WorkType,
		Gender:    form.Gender,
		Age:       form.Age,
	}
	return s.create(account, form.Password)
}

// Create adds an account from the admin panel with an explicit role.
func (s *AccountService) Create(account *model.Account, password string) (*model.Account, error) {
	if account.Username == "" || password == "" {
		return nil, ErrMissingField
	}
	if !account.Role.Valid() {
		account.Role = model.RoleEmployee
	}
	return s.create(account, password)
}

func (s *AccountService) create(account *model.Account, password string) (*model.Account, error) {
	db := database.GetDB()

	// Pre-checks give field-level conflicts; the unique indexes still
	// back them up at insert time.
	var count int64
	if err := db.Model(&model.Account{}).Where("username = ?", account.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateUsername
	}
	if account.Email != "" {
		if err := db.Model(&model.Account{}).Where("email = ?", account.Email).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicateEmail
		}
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}
	account.PasswordHash = hash
	account.RequestToken = uuid.NewString()

	if err := db.Create(account).Error; err != nil {
		if database.IsDuplicate(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return account, nil
}

// List returns all accounts as DTOs, ordered by id.
func (s *AccountService) List() ([]AccountDTO, error) {
	db := database.GetDB()
	var accounts []model.Account
	if err := db.Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	out := make([]AccountDTO, 0, len(accounts))
	for i := range accounts {
		out = append(out, toDTO(&accounts[i]))
	}
	return out, nil
}

// Delete removes an account by id. Deleting the acting account is
// refused so an admin can't lock themselves out.
func (s *AccountService) Delete(id, actingId int) error {
	if id == actingId {
		return ErrSelfDelete
	}
	db := database.GetDB()
	return db.Delete(&model.Account{}, id).Error
}

// GetByToken resolves a public request token to its owning account.
func (s *AccountService) GetByToken(token string) (*model.Account, error) {
	db := database.GetDB()
	account := &model.Account{}
	err := db.Where("request_token = ?", token).First(account).Error
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetByUsername returns the account with the given username.
func (s *AccountService) GetByUsername(username string) (*model.Account, error) {
	db := database.GetDB()
	account := &model.Account{}
	err := db.Where("username = ?", username).First(account).Error
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Count returns the number of accounts in the store.
func (s *AccountService) Count() (int64, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(&model.Account{}).Count(&count).Error
	return count, err
}

// SubmissionLink builds an agent's full public intake link.
func (s *AccountService) SubmissionLink(account *model.Account) string {
	return config.GetBaseURL() + "/request/" + account.RequestToken
}
