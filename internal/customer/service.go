package customer

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=customer
type Repository interface {
	CreateCustomer(ctx context.Context, c *Customer) error
	GetCustomer(ctx context.Context, id uuid.UUID) (*Customer, error)
	GetCustomerByCode(ctx context.Context, code string) (*Customer, error)
	UpdateCustomer(ctx context.Context, c *Customer) error
	ListCustomers(ctx context.Context) ([]*Customer, error)
	SearchCustomers(ctx context.Context, q string) ([]*Customer, error)
}

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type CreateParams struct {
	FullName   string `validate:"required,min=3"`
	NationalID string
	Phone      string `validate:"required,min=7"`
	Address    string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Customer, error) {
	if err := s.validate.Struct(params); err != nil {
		return nil, toValidationError(err)
	}

	c := &Customer{
		Code:       newCode(),
		FullName:   strings.TrimSpace(params.FullName),
		NationalID: strings.TrimSpace(params.NationalID),
		Phone:      strings.TrimSpace(params.Phone),
		Address:    strings.TrimSpace(params.Address),
	}
	if err := s.repo.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

type UpdateParams struct {
	FullName   *string
	NationalID *string
	Phone      *string
	Address    *string
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Customer, error) {
	c, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.FullName != nil {
		c.FullName = strings.TrimSpace(*params.FullName)
	}

	if params.NationalID != nil {
		c.NationalID = strings.TrimSpace(*params.NationalID)
	}

	if params.Phone != nil {
		c.Phone = strings.TrimSpace(*params.Phone)
	}

	if params.Address != nil {
		c.Address = strings.TrimSpace(*params.Address)
	}

	if err := s.validate.Struct(CreateParams{
		FullName:   c.FullName,
		NationalID: c.NationalID,
		Phone:      c.Phone,
		Address:    c.Address,
	}); err != nil {
		return nil, toValidationError(err)
	}

	if err := s.repo.UpdateCustomer(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return s.repo.GetCustomer(ctx, id)
}

func (s *Service) GetByCode(ctx context.Context, code string) (*Customer, error) {
	return s.repo.GetCustomerByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

func (s *Service) List(ctx context.Context) ([]*Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *Service) Search(ctx context.Context, q string) ([]*Customer, error) {
	q = strings.TrimSpace(q)
	if len(q) < 2 {
		return nil, nil
	}

	return s.repo.SearchCustomers(ctx, q)
}

// newCode generates the short display id handed to customers, e.g.
// "CL-3FA85F21".
func newCode() string {
	return "CL-" + strings.ToUpper(uuid.NewString()[:8])
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{
			Field:  strings.ToLower(verrs[0].Field()),
			Reason: "valor invalido (" + verrs[0].Tag() + ")",
		}
	}

	return err
}
