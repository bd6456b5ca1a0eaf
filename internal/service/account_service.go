package service

import (
	"errors"
	"fmt"
	"strings"

	"ordering-backend/internal/domain"
)

// AccountService manages customer accounts. Passwords are stored as bcrypt
// hashes; nothing outside this service sees a plaintext password.
type AccountService struct {
	customers CustomerRepository
}

func NewAccountService(customers CustomerRepository) *AccountService {
	return &AccountService{customers: customers}
}

// SignUp creates the account. The repository's unique constraint is the
// real duplicate guard; IsIDDuplicated is only the polite fast path.
func (s *AccountService) SignUp(c *domain.Customer) (int, error) {
	if strings.TrimSpace(c.SignInID) == "" || c.Password == "" {
		return 0, fmt.Errorf("%w: sign-in id and password are required", domain.ErrValidation)
	}
	hash, err := hashPassword(c.Password)
	if err != nil {
		return 0, err
	}
	c.Password = hash
	if err := s.customers.CreateCustomer(c); err != nil {
		return 0, err
	}
	return c.ID, nil
}

// SignIn returns (nil, nil) for both an unknown id and a wrong password so
// callers cannot enumerate accounts.
func (s *AccountService) SignIn(signInID, password string) (*domain.Customer, error) {
	c, err := s.customers.GetCustomerBySignInID(signInID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !checkPasswordHash(password, c.Password) {
		return nil, nil
	}
	return c, nil
}

func (s *AccountService) IsIDDuplicated(signInID string) (bool, error) {
	return s.customers.CustomerSignInIDExists(signInID)
}

func (s *AccountService) ChangePhoneNumber(customerID int, phoneNumber string) error {
	return s.customers.UpdateCustomerPhoneNumber(customerID, phoneNumber)
}

// ChangePassword returns false without mutating anything when the current
// password does not match.
func (s *AccountService) ChangePassword(customerID int, currentPassword, newPassword string) (bool, error) {
	c, err := s.customers.GetCustomer(customerID)
	if err != nil {
		return false, err
	}
	if !checkPasswordHash(currentPassword, c.Password) {
		return false, nil
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return false, err
	}
	if err := s.customers.UpdateCustomerPassword(customerID, hash); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteAccount removes the customer; placed orders stay in the ledger with
// their customer reference nulled.
func (s *AccountService) DeleteAccount(customerID int) error {
	return s.customers.DeleteCustomer(customerID)
}

var _ AccountServiceInterface = (*AccountService)(nil)
