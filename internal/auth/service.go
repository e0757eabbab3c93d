package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"hrms-backend/internal/models"
	"hrms-backend/internal/store"
)

// Notifier delivers the out-of-band onboarding and reset mails. The
// onboarding mail is the only place a plaintext temporary password ever
// leaves the process.
type Notifier interface {
	SendOnboarding(to string, code string, tempPassword string, resetLink string, companyEmail string) error
	SendPasswordReset(to string, resetLink string) error
}

// Service owns the credential lifecycle: registration into the provisioned
// state, login, the temp-password exchange and the token-based reset flow.
// All collaborators are injected so tests run against fixed secrets and
// in-memory stores.
type Service struct {
	store     store.EmployeeStore
	notifier  Notifier
	codec     *TokenCodec
	orgDomain string
	resetBase string
}

func NewService(employees store.EmployeeStore, notifier Notifier, codec *TokenCodec, orgDomain string, resetBase string) *Service {
	return &Service{
		store:     employees,
		notifier:  notifier,
		codec:     codec,
		orgDomain: orgDomain,
		resetBase: resetBase,
	}
}

type RegisterInput struct {
	FirstName      string
	LastName       string
	Email          string
	ManagerName    string
	Department     string
	JoiningDate    time.Time
	EmploymentType string
	VendorName     string
}

type RegisterResult struct {
	EmployeeCode string
	CompanyEmail string
	// Notified is false when the record was persisted but the onboarding
	// mail could not be delivered.
	Notified bool
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" ||
		input.Department == "" || input.EmploymentType == "" || input.JoiningDate.IsZero() {
		return nil, ErrMissingFields
	}
	if input.EmploymentType == models.EmploymentContractual && input.VendorName == "" {
		return nil, ErrMissingVendor
	}
	if input.EmploymentType != models.EmploymentContractual {
		input.VendorName = ""
	}

	email := normalizeEmail(input.Email)
	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	companyEmail, err := s.availableCompanyEmail(ctx, input.FirstName, input.LastName)
	if err != nil {
		return nil, err
	}

	seq, err := s.store.NextDepartmentCode(ctx, input.Department)
	if err != nil {
		return nil, err
	}
	code := EmployeeCode(input.Department, seq)

	tempPassword, err := TempPassword()
	if err != nil {
		return nil, err
	}
	hash, err := HashPassword(tempPassword)
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          email,
		CompanyEmail:   companyEmail,
		ManagerName:    input.ManagerName,
		Department:     input.Department,
		JoiningDate:    input.JoiningDate,
		EmploymentType: input.EmploymentType,
		VendorName:     input.VendorName,
		EmployeeCode:   code,
		PasswordHash:   hash,
		TempPassword:   true,
		Role:           models.RoleEmployee,
	}
	if err := s.store.Insert(ctx, employee); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// The unique violation may be on any of the three keyed columns.
			// Only a personal-email collision is the caller's mistake; a
			// company-email or employee-code race is ours to retry.
			if _, lookupErr := s.store.FindByEmail(ctx, email); lookupErr == nil {
				return nil, ErrDuplicateEmail
			}
			return nil, ErrConflict
		}
		return nil, err
	}

	resetLink, err := s.issueResetLink(ctx, email)
	if err != nil {
		return nil, err
	}

	result := &RegisterResult{EmployeeCode: code, CompanyEmail: companyEmail, Notified: true}
	if err := s.notifier.SendOnboarding(email, code, tempPassword, resetLink, companyEmail); err != nil {
		// The record exists but the employee never saw their credentials.
		// Surface that distinctly instead of failing or silently succeeding.
		log.Printf("onboarding mail error for %s: %v", code, err)
		result.Notified = false
	}
	return result, nil
}

func (s *Service) Login(ctx context.Context, email string, password string) (string, error) {
	employee, err := s.store.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredential
		}
		return "", err
	}
	if !CheckPassword(employee.PasswordHash, password) {
		return "", ErrInvalidCredential
	}
	return s.codec.SignAccess(employee)
}

// ExchangeTempPassword is the one legitimate provisioned-to-active
// transition. The conditional store update guarantees that of two racing
// exchanges only one lands.
func (s *Service) ExchangeTempPassword(ctx context.Context, companyEmail string, tempPassword string, newPassword string) error {
	employee, err := s.store.FindByCompanyEmail(ctx, normalizeEmail(companyEmail))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidRequest
		}
		return err
	}
	if !employee.TempPassword {
		return ErrInvalidRequest
	}
	if !CheckPassword(employee.PasswordHash, tempPassword) {
		return ErrInvalidCredential
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.store.UpdatePasswordState(ctx, employee.ID, hash, true); err != nil {
		if errors.Is(err, store.ErrStale) || errors.Is(err, store.ErrNotFound) {
			return ErrInvalidRequest
		}
		return err
	}
	return nil
}

// ForgotPassword issues a reset link for known accounts and reports success
// either way, so callers cannot probe which emails exist.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if _, err := s.store.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	resetLink, err := s.issueResetLink(ctx, email)
	if err != nil {
		return err
	}
	return s.notifier.SendPasswordReset(email, resetLink)
}

func (s *Service) SetNewPassword(ctx context.Context, token string, newPassword string) error {
	claims, err := s.codec.ParseReset(token)
	if err != nil {
		return err
	}

	employee, err := s.store.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTokenInvalid
		}
		return err
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	// Token consumption and the password write happen in one store
	// transaction: a failed write leaves the single-use token redeemable.
	if err := s.store.RedeemPasswordReset(ctx, claims.ID, employee.ID, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrStale) {
			return ErrTokenInvalid
		}
		return err
	}
	return nil
}

func (s *Service) availableCompanyEmail(ctx context.Context, firstName string, lastName string) (string, error) {
	candidate := CompanyEmail(firstName, lastName, s.orgDomain)
	for n := 2; ; n++ {
		_, err := s.store.FindByCompanyEmail(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = CompanyEmailWithSuffix(firstName, lastName, s.orgDomain, n)
	}
}

func (s *Service) issueResetLink(ctx context.Context, email string) (string, error) {
	token, tokenID, err := s.codec.SignReset(email)
	if err != nil {
		return "", err
	}
	reset := &models.PasswordReset{
		TokenID:   tokenID,
		Email:     email,
		ExpiresAt: time.Now().Add(s.codec.ResetTTL()),
	}
	if err := s.store.CreatePasswordReset(ctx, reset); err != nil {
		return "", err
	}
	return s.resetBase + "?token=" + token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
