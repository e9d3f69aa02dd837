package address

import (
	"context"
	"errors"
	"testing"

	"casecraft/internal/domain"
	addrrepo "casecraft/internal/repository/address"
)

type stubRepo struct {
	list           []domain.Address
	listErr        error
	created        *domain.Address
	createErr      error
	billingErr     error
	billingCalls   int
	lastCreate     addrrepo.CreateInput
	lastBilling    addrrepo.CreateInput
	getResult      *domain.Address
	getErr         error
	updated        *domain.Address
	updateErr      error
	lastUpdateID   string
	lastUpdate     addrrepo.UpdateInput
	deleted        *domain.Address
	deleteErr      error
	lastDeleteID   string
	deleteCalls    int
	updateCalls    int
}

func (s *stubRepo) ListByUser(_ context.Context, _ string) ([]domain.Address, error) {
	return s.list, s.listErr
}

func (s *stubRepo) Create(_ context.Context, in addrrepo.CreateInput) (*domain.Address, error) {
	s.lastCreate = in
	return s.created, s.createErr
}

func (s *stubRepo) CreateBilling(_ context.Context, in addrrepo.CreateInput) (*domain.Address, error) {
	s.billingCalls++
	s.lastBilling = in
	if s.billingErr != nil {
		return nil, s.billingErr
	}
	return s.created, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Address, error) {
	return s.getResult, s.getErr
}

func (s *stubRepo) Update(_ context.Context, id string, in addrrepo.UpdateInput) (*domain.Address, error) {
	s.updateCalls++
	s.lastUpdateID = id
	s.lastUpdate = in
	return s.updated, s.updateErr
}

func (s *stubRepo) Delete(_ context.Context, id string) (*domain.Address, error) {
	s.deleteCalls++
	s.lastDeleteID = id
	return s.deleted, s.deleteErr
}

func strPtr(v string) *string {
	return &v
}

func validCreate() CreateInput {
	return CreateInput{
		Name:       "Jo Buyer",
		Street:     "1 Case St",
		City:       "Pune",
		PostalCode: "411001",
		Country:    "IN",
	}
}

func TestListRequiresUserID(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	_, err := svc.List(context.Background(), "  ")
	if err == nil || err.Error() != "userId required" {
		t.Fatalf("expected userId validation error, got %v", err)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("validation errors must match the sentinel, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	tests := []struct {
		name   string
		mutate func(*CreateInput)
		want   string
	}{
		{"missing name", func(in *CreateInput) { in.Name = "" }, "name required"},
		{"missing street", func(in *CreateInput) { in.Street = " " }, "street required"},
		{"missing city", func(in *CreateInput) { in.City = "" }, "city required"},
		{"missing postalCode", func(in *CreateInput) { in.PostalCode = "" }, "postalCode required"},
		{"missing country", func(in *CreateInput) { in.Country = "" }, "country required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreate()
			tt.mutate(&in)
			_, err := svc.Create(context.Background(), "user-1", in)
			if err == nil || err.Error() != tt.want {
				t.Fatalf("expected %q, got %v", tt.want, err)
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("validation errors must match the sentinel, got %v", err)
			}
		})
	}
}

func TestCreateMirrorsBillingRecord(t *testing.T) {
	created := &domain.Address{ID: "a1", UserID: "user-1", Name: "Jo Buyer"}
	repo := &stubRepo{created: created}
	svc := &Service{repo: repo}

	got, err := svc.Create(context.Background(), "user-1", validCreate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != created {
		t.Fatalf("unexpected address: %+v", got)
	}
	if repo.billingCalls != 1 {
		t.Fatalf("expected billing mirror, got %d calls", repo.billingCalls)
	}
	if repo.lastBilling != repo.lastCreate {
		t.Fatalf("billing input %+v differs from shipping input %+v", repo.lastBilling, repo.lastCreate)
	}
}

func TestCreateBillingFailureSurfaces(t *testing.T) {
	repo := &stubRepo{created: &domain.Address{ID: "a1"}, billingErr: errors.New("boom")}
	svc := &Service{repo: repo}
	_, err := svc.Create(context.Background(), "user-1", validCreate())
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected billing error, got %v", err)
	}
}

func TestUpdateOwnershipMismatchReadsAsNotFound(t *testing.T) {
	repo := &stubRepo{getResult: &domain.Address{ID: "a1", UserID: "someone-else"}}
	svc := &Service{repo: repo}
	_, err := svc.Update(context.Background(), "user-1", "a1", UpdateInput{City: strPtr("Delhi")})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("update must not run on ownership mismatch")
	}
}

func TestUpdateRequiresActingUser(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	_, err := svc.Update(context.Background(), "", "a1", UpdateInput{})
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestUpdateHappyPath(t *testing.T) {
	updated := &domain.Address{ID: "a1", UserID: "user-1", City: "Delhi"}
	repo := &stubRepo{
		getResult: &domain.Address{ID: "a1", UserID: "user-1", City: "Pune"},
		updated:   updated,
	}
	svc := &Service{repo: repo}
	got, err := svc.Update(context.Background(), "user-1", "a1", UpdateInput{City: strPtr("Delhi")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != updated {
		t.Fatalf("unexpected address: %+v", got)
	}
	if repo.lastUpdateID != "a1" || repo.lastUpdate.City == nil || *repo.lastUpdate.City != "Delhi" {
		t.Fatalf("update not called as expected: id=%s in=%+v", repo.lastUpdateID, repo.lastUpdate)
	}
}

func TestDeleteOwnershipMismatch(t *testing.T) {
	repo := &stubRepo{getResult: &domain.Address{ID: "a1", UserID: "someone-else"}}
	svc := &Service{repo: repo}
	_, err := svc.Delete(context.Background(), "user-1", "a1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if repo.deleteCalls != 0 {
		t.Fatalf("delete must not run on ownership mismatch")
	}
}

func TestDeleteHappyPath(t *testing.T) {
	deleted := &domain.Address{ID: "a1", UserID: "user-1"}
	repo := &stubRepo{getResult: deleted, deleted: deleted}
	svc := &Service{repo: repo}
	got, err := svc.Delete(context.Background(), "user-1", "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != deleted || repo.lastDeleteID != "a1" {
		t.Fatalf("delete not called as expected")
	}
}

func TestDeleteMissingAddress(t *testing.T) {
	repo := &stubRepo{getErr: domain.ErrNotFound}
	svc := &Service{repo: repo}
	_, err := svc.Delete(context.Background(), "user-1", "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
