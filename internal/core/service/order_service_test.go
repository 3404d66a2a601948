package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/artesania/storefront-api/internal/core/domain"
	"github.com/artesania/storefront-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubOrderRepo struct {
	orders    map[string]*domain.Order // by id
	staged    []*domain.Order
	findCalls int
	listCalls int
	commits   int
	findErr   error // if set, FindByOwnerAndID returns this error
	listErr   error // if set, ListByOwner returns this error
	commitErr error // if set, Commit returns this error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) FindByOwnerAndID(_ context.Context, owner, id string) (*domain.Order, error) {
	r.findCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	order, ok := r.orders[id]
	// Owner filter is part of the query (mirrors the real Mongo filter):
	// a mismatch is indistinguishable from a missing order.
	if !ok || order.Owner != owner {
		return nil, domain.ErrOrderNotFound
	}
	clone := *order
	return &clone, nil
}

func (r *stubOrderRepo) ListByOwner(_ context.Context, owner string, includeItems bool) ([]domain.Order, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	var matched []domain.Order
	for _, order := range r.orders {
		if order.Owner != owner {
			continue
		}
		clone := *order
		if !includeItems {
			clone.Items = nil
		}
		matched = append(matched, clone)
	}
	return matched, nil
}

func (r *stubOrderRepo) Stage(_ context.Context, order *domain.Order) error {
	clone := *order
	r.staged = append(r.staged, &clone)
	return nil
}

func (r *stubOrderRepo) Commit(_ context.Context) error {
	r.commits++
	// The batch is consumed on both paths, like the real repository: a
	// failed commit must not leave orders behind for a later commit.
	staged := r.staged
	r.staged = nil
	if r.commitErr != nil {
		return r.commitErr
	}
	for _, order := range staged {
		r.orders[order.ID] = order
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func seedOrder(repo *stubOrderRepo, id, owner string) *domain.Order {
	order := &domain.Order{
		ID:        id,
		Owner:     owner,
		Number:    "ORD-" + id,
		CreatedAt: time.Now().UTC(),
		Items: []domain.OrderItem{
			{ProductID: "p1", ProductName: "Vase", UnitPrice: 19.5, Quantity: 2},
		},
	}
	repo.orders[id] = order
	return order
}

func minimalCreateInput(owner string) ports.CreateOrderInput {
	return ports.CreateOrderInput{
		Owner:  owner,
		Number: "ORD-100",
		Items: []ports.OrderItemInput{
			{ProductID: "p1", ProductName: "Vase", UnitPrice: 19.5, Quantity: 2},
			{ProductID: "p2", ProductName: "Bowl", UnitPrice: 7.25, Quantity: 1},
		},
	}
}

// ---------------------------------------------------------------------------
// GetOrder tests
// ---------------------------------------------------------------------------

func TestOrderService_Get_Success(t *testing.T) {
	repo := newStubOrderRepo()
	seedOrder(repo, "o1", "alice")
	svc := NewOrderService(repo, zerolog.Nop())

	detail, err := svc.GetOrder(context.Background(), ports.GetOrderInput{Owner: "alice", OrderID: "o1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.ID != "o1" || detail.Number != "ORD-o1" {
		t.Errorf("unexpected detail: %+v", detail)
	}
	if detail.Total != 39 {
		t.Errorf("expected total 39, got %v", detail.Total)
	}
	if repo.findCalls != 1 {
		t.Errorf("expected exactly one store call, got %d", repo.findCalls)
	}
}

func TestOrderService_Get_NotFound(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, zerolog.Nop())

	_, err := svc.GetOrder(context.Background(), ports.GetOrderInput{Owner: "alice", OrderID: "missing"})
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if repo.findCalls != 1 {
		t.Errorf("expected exactly one store call, got %d", repo.findCalls)
	}
}

// An order of another account must behave exactly like a missing order,
// even when its id is known.
func TestOrderService_Get_NeverCrossesOwners(t *testing.T) {
	repo := newStubOrderRepo()
	seedOrder(repo, "q1", "quentin")
	svc := NewOrderService(repo, zerolog.Nop())

	_, err := svc.GetOrder(context.Background(), ports.GetOrderInput{Owner: "paula", OrderID: "q1"})
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for foreign order, got %v", err)
	}
}

func TestOrderService_Get_StoreFault(t *testing.T) {
	repo := newStubOrderRepo()
	repo.findErr = errors.New("socket timeout")
	svc := NewOrderService(repo, zerolog.Nop())

	_, err := svc.GetOrder(context.Background(), ports.GetOrderInput{Owner: "alice", OrderID: "o1"})
	if err == nil || errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected fault to surface, got %v", err)
	}
	if repo.findCalls != 1 {
		t.Errorf("expected exactly one store call, got %d", repo.findCalls)
	}
}

// ---------------------------------------------------------------------------
// ListOrders tests
// ---------------------------------------------------------------------------

func TestOrderService_List_EmptyIsSuccess(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, zerolog.Nop())

	details, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{Owner: "alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(details) != 0 {
		t.Fatalf("expected no orders, got %d", len(details))
	}
}

func TestOrderService_List_OnlyOwnOrders(t *testing.T) {
	repo := newStubOrderRepo()
	seedOrder(repo, "a1", "alice")
	seedOrder(repo, "a2", "alice")
	seedOrder(repo, "b1", "bob")
	svc := NewOrderService(repo, zerolog.Nop())

	details, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{Owner: "alice", IncludeItems: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(details))
	}
	for _, d := range details {
		if len(d.Items) == 0 {
			t.Errorf("expected items for order %s", d.ID)
		}
	}
}

func TestOrderService_List_WithoutItems(t *testing.T) {
	repo := newStubOrderRepo()
	seedOrder(repo, "a1", "alice")
	svc := NewOrderService(repo, zerolog.Nop())

	details, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{Owner: "alice", IncludeItems: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 order, got %d", len(details))
	}
	if len(details[0].Items) != 0 {
		t.Errorf("expected items omitted, got %d", len(details[0].Items))
	}
}

func TestOrderService_List_StoreFault(t *testing.T) {
	repo := newStubOrderRepo()
	repo.listErr = errors.New("cursor error")
	svc := NewOrderService(repo, zerolog.Nop())

	if _, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{Owner: "alice"}); err == nil {
		t.Fatal("expected error")
	}
}

// ---------------------------------------------------------------------------
// CreateOrder tests
// ---------------------------------------------------------------------------

func TestOrderService_Create_Success(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, zerolog.Nop())

	detail, err := svc.CreateOrder(context.Background(), minimalCreateInput("alice"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.ID == "" {
		t.Fatal("expected a generated order id")
	}
	if detail.Total != 46.25 {
		t.Errorf("expected total 46.25, got %v", detail.Total)
	}
	if repo.commits != 1 {
		t.Errorf("expected one commit, got %d", repo.commits)
	}

	stored := repo.orders[detail.ID]
	if stored == nil {
		t.Fatal("order not persisted")
	}
	if stored.Owner != "alice" {
		t.Errorf("expected owner stamped from principal, got %q", stored.Owner)
	}
	if stored.CreatedAt.IsZero() {
		t.Error("CreatedAt must be stamped when absent")
	}
}

func TestOrderService_Create_InvalidRequest(t *testing.T) {
	cases := []struct {
		name  string
		input ports.CreateOrderInput
	}{
		{"missing owner", ports.CreateOrderInput{Number: "ORD-1", Items: []ports.OrderItemInput{{ProductID: "p1", Quantity: 1}}}},
		{"missing number", ports.CreateOrderInput{Owner: "alice", Items: []ports.OrderItemInput{{ProductID: "p1", Quantity: 1}}}},
		{"no items", ports.CreateOrderInput{Owner: "alice", Number: "ORD-1"}},
		{"zero quantity", ports.CreateOrderInput{Owner: "alice", Number: "ORD-1", Items: []ports.OrderItemInput{{ProductID: "p1"}}}},
		{"item without product", ports.CreateOrderInput{Owner: "alice", Number: "ORD-1", Items: []ports.OrderItemInput{{Quantity: 2}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newStubOrderRepo()
			svc := NewOrderService(repo, zerolog.Nop())

			if _, err := svc.CreateOrder(context.Background(), tc.input); !errors.Is(err, domain.ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
			if len(repo.staged) != 0 || repo.commits != 0 {
				t.Fatalf("store must not be touched on invalid input (staged=%d commits=%d)", len(repo.staged), repo.commits)
			}
		})
	}
}

func TestOrderService_Create_CommitFailure(t *testing.T) {
	repo := newStubOrderRepo()
	repo.commitErr = errors.New("write concern error")
	svc := NewOrderService(repo, zerolog.Nop())

	_, err := svc.CreateOrder(context.Background(), minimalCreateInput("alice"))
	if err == nil {
		t.Fatal("expected error on commit failure")
	}
	if len(repo.orders) != 0 {
		t.Fatal("no order may be considered created after a failed commit")
	}
	if len(repo.staged) != 0 {
		t.Fatal("a failed commit must not leave the order staged for a later commit")
	}
}

func TestOrderService_Create_FailedOrderNotResurrectedByLaterCreate(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, zerolog.Nop())

	// Alice's commit fails; she is told the order was not created.
	repo.commitErr = errors.New("write concern error")
	if _, err := svc.CreateOrder(context.Background(), minimalCreateInput("alice")); err == nil {
		t.Fatal("expected error on commit failure")
	}

	// Bob's later, unrelated create succeeds. It must persist only his
	// own order, never replay alice's failed one.
	repo.commitErr = nil
	detail, err := svc.CreateOrder(context.Background(), minimalCreateInput("bob"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(repo.orders) != 1 {
		t.Fatalf("expected exactly 1 persisted order, got %d", len(repo.orders))
	}
	persisted, ok := repo.orders[detail.ID]
	if !ok || persisted.Owner != "bob" {
		t.Fatalf("expected only bob's order persisted, got %+v", repo.orders)
	}
}

func TestOrderService_Create_PreservesProvidedDate(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, zerolog.Nop())

	when := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	input := minimalCreateInput("alice")
	input.CreatedAt = when

	detail, err := svc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !detail.CreatedAt.Equal(when) {
		t.Errorf("expected provided date kept, got %v", detail.CreatedAt)
	}
}
