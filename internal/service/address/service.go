package address

import (
	"context"
	"strings"

	"casecraft/internal/domain"
	addrrepo "casecraft/internal/repository/address"
)

// Service handles address book reads and owner-gated mutations.
type Service struct {
	repo addressRepo
}

type addressRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Address, error)
	Create(ctx context.Context, in addrrepo.CreateInput) (*domain.Address, error)
	CreateBilling(ctx context.Context, in addrrepo.CreateInput) (*domain.Address, error)
	GetByID(ctx context.Context, id string) (*domain.Address, error)
	Update(ctx context.Context, id string, in addrrepo.UpdateInput) (*domain.Address, error)
	Delete(ctx context.Context, id string) (*domain.Address, error)
}

func New(repo addrrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name        string  `json:"name"`
	Street      string  `json:"street"`
	City        string  `json:"city"`
	PostalCode  string  `json:"postalCode"`
	Country     string  `json:"country"`
	State       *string `json:"state,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// UpdateInput carries partial updates; nil fields keep their stored value.
type UpdateInput struct {
	Name        *string `json:"name,omitempty"`
	Street      *string `json:"street,omitempty"`
	City        *string `json:"city,omitempty"`
	PostalCode  *string `json:"postalCode,omitempty"`
	Country     *string `json:"country,omitempty"`
	State       *string `json:"state,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.Address, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.Validationf("userId required")
	}
	return s.repo.ListByUser(ctx, userID)
}

// Create stores the shipping address and mirrors it into the billing table.
// The shipping record is what the caller gets back.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (*domain.Address, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.Validationf("userId required")
	}
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	repoIn := addrrepo.CreateInput{
		UserID:      userID,
		Name:        strings.TrimSpace(in.Name),
		Street:      strings.TrimSpace(in.Street),
		City:        strings.TrimSpace(in.City),
		PostalCode:  strings.TrimSpace(in.PostalCode),
		Country:     strings.TrimSpace(in.Country),
		State:       in.State,
		PhoneNumber: in.PhoneNumber,
	}
	created, err := s.repo.Create(ctx, repoIn)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.CreateBilling(ctx, repoIn); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Address, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update. The acting user must own the address;
// a mismatch reads as not found so ids cannot be probed.
func (s *Service) Update(ctx context.Context, actingUserID, id string, in UpdateInput) (*domain.Address, error) {
	if err := s.checkOwner(ctx, actingUserID, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, addrrepo.UpdateInput{
		Name:        in.Name,
		Street:      in.Street,
		City:        in.City,
		PostalCode:  in.PostalCode,
		Country:     in.Country,
		State:       in.State,
		PhoneNumber: in.PhoneNumber,
	})
}

// Delete removes the address after the same ownership gate as Update and
// returns the deleted record.
func (s *Service) Delete(ctx context.Context, actingUserID, id string) (*domain.Address, error) {
	if err := s.checkOwner(ctx, actingUserID, id); err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) checkOwner(ctx context.Context, actingUserID, id string) error {
	if strings.TrimSpace(actingUserID) == "" {
		return domain.ErrUnauthenticated
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != actingUserID {
		return domain.ErrNotFound
	}
	return nil
}

func validateCreate(in CreateInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return domain.Validationf("name required")
	case strings.TrimSpace(in.Street) == "":
		return domain.Validationf("street required")
	case strings.TrimSpace(in.City) == "":
		return domain.Validationf("city required")
	case strings.TrimSpace(in.PostalCode) == "":
		return domain.Validationf("postalCode required")
	case strings.TrimSpace(in.Country) == "":
		return domain.Validationf("country required")
	}
	return nil
}
