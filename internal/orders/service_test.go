package orders

import (
	"context"
	"testing"

	"github.com/MohamedSultan7/davinci-bakers/internal/address"
	"github.com/MohamedSultan7/davinci-bakers/internal/cart"
	"github.com/MohamedSultan7/davinci-bakers/internal/catalog"
	"github.com/MohamedSultan7/davinci-bakers/internal/moq"
	"github.com/MohamedSultan7/davinci-bakers/pkg/enums"
	pkgerrors "github.com/MohamedSultan7/davinci-bakers/pkg/errors"
	"github.com/MohamedSultan7/davinci-bakers/pkg/logger"
	"github.com/MohamedSultan7/davinci-bakers/pkg/pagination"
	"github.com/google/uuid"
)

var demoUserID = uuid.MustParse("d6e4f3a0-0004-4e00-8000-000000000001")

type fixture struct {
	orders   Service
	carts    cart.Service
	products *catalog.Repository
}

// neverAdvance keeps the simulated fulfillment still during tests that do not
// exercise it.
func neverAdvance() float64 { return 0.99 }

func alwaysAdvance() float64 { return 0.0 }

func newFixture(t *testing.T, roll func() float64) *fixture {
	t.Helper()
	logg := logger.New(logger.Options{Level: logger.ParseLevel("error")})
	products := catalog.NewRepository(catalog.SeedProducts(), catalog.SeedCategories())
	carts := cart.NewService(cart.NewRepository(), products, moq.NewPolicy(moq.SeedRules()), logg)
	addresses := address.NewService(address.SeedAddresses())
	repo := NewRepository(SeedOrders(demoUserID))
	return &fixture{
		orders:   NewService(repo, carts, addresses, logg, roll),
		carts:    carts,
		products: products,
	}
}

func addCroissants(t *testing.T, f *fixture, userID uuid.UUID, qty int) {
	t.Helper()
	if _, err := f.carts.Upsert(context.Background(), userID, catalog.ProductButterCroissant, qty); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
}

func TestCreateFromEmptyCart(t *testing.T) {
	f := newFixture(t, neverAdvance)

	_, err := f.orders.Create(context.Background(), uuid.New(), CreateInput{AddressID: address.AddressDowntownCafe})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeEmptyCart {
		t.Fatalf("expected EMPTY_CART, got %v", err)
	}
}

func TestCreateWithUnknownAddress(t *testing.T) {
	f := newFixture(t, neverAdvance)
	userID := uuid.New()
	addCroissants(t, f, userID, 6)

	_, err := f.orders.Create(context.Background(), userID, CreateInput{AddressID: uuid.New()})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeAddressNotFound {
		t.Fatalf("expected ADDRESS_NOT_FOUND, got %v", err)
	}
}

func TestCreateWithStaleCart(t *testing.T) {
	f := newFixture(t, neverAdvance)
	ctx := context.Background()
	userID := uuid.New()
	addCroissants(t, f, userID, 12)

	// Stock collapses between add and checkout.
	if err := f.products.SetInventory(ctx, catalog.ProductButterCroissant, 3); err != nil {
		t.Fatalf("set inventory: %v", err)
	}

	_, err := f.orders.Create(ctx, userID, CreateInput{AddressID: address.AddressDowntownCafe})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeCartInvalid {
		t.Fatalf("expected CART_INVALID, got %v", err)
	}
	issues, ok := typed.Details().([]cart.Issue)
	if !ok || len(issues) != 1 {
		t.Fatalf("expected one line issue in details, got %+v", typed.Details())
	}
}

func TestCreatePlacesOrderAndClearsCart(t *testing.T) {
	f := newFixture(t, neverAdvance)
	ctx := context.Background()
	userID := uuid.New()
	addCroissants(t, f, userID, 12)

	order, err := f.orders.Create(ctx, userID, CreateInput{
		AddressID:     address.AddressRiversideBar,
		RequestedDate: "2024-04-02",
		Notes:         "Back entrance please",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if order.Number != "BB-2024-003" {
		t.Fatalf("expected number BB-2024-003 after two seeded orders, got %s", order.Number)
	}
	if order.Status != enums.OrderStatusPlaced {
		t.Fatalf("expected status placed, got %s", order.Status)
	}
	if order.PaymentStatus != enums.PaymentStatusPaid {
		t.Fatalf("expected payment paid, got %s", order.PaymentStatus)
	}
	if order.Address.ID != address.AddressRiversideBar {
		t.Fatalf("expected riverside address copied onto order, got %+v", order.Address)
	}
	if order.RequestedDate.Format("2006-01-02") != "2024-04-02" {
		t.Fatalf("unexpected requested date %s", order.RequestedDate)
	}

	emptied, err := f.carts.Get(ctx, userID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(emptied.Items) != 0 {
		t.Fatalf("expected cart cleared after checkout, got %d lines", len(emptied.Items))
	}
}

func TestOrderNumbersStrictlyIncrease(t *testing.T) {
	f := newFixture(t, neverAdvance)
	ctx := context.Background()

	numbers := []string{}
	for i := 0; i < 3; i++ {
		userID := uuid.New()
		addCroissants(t, f, userID, 6)
		order, err := f.orders.Create(ctx, userID, CreateInput{AddressID: address.AddressDowntownCafe})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		numbers = append(numbers, order.Number)
	}

	want := []string{"BB-2024-003", "BB-2024-004", "BB-2024-005"}
	for i := range want {
		if numbers[i] != want[i] {
			t.Fatalf("expected numbers %v, got %v", want, numbers)
		}
	}
}

func TestCreateRejectsMalformedDate(t *testing.T) {
	f := newFixture(t, neverAdvance)
	userID := uuid.New()
	addCroissants(t, f, userID, 6)

	_, err := f.orders.Create(context.Background(), userID, CreateInput{
		AddressID:     address.AddressDowntownCafe,
		RequestedDate: "04/02/2024",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestListIsScopedToOwnerAndNewestFirst(t *testing.T) {
	f := newFixture(t, neverAdvance)
	ctx := context.Background()

	page, err := f.orders.List(ctx, demoUserID, "", pagination.Params{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("expected 2 seeded orders, got %d", page.Total)
	}
	if page.Data[0].Number != "BB-2024-002" || page.Data[1].Number != "BB-2024-001" {
		t.Fatalf("expected newest first, got %s then %s", page.Data[0].Number, page.Data[1].Number)
	}

	stranger, err := f.orders.List(ctx, uuid.New(), "", pagination.Params{})
	if err != nil {
		t.Fatalf("list stranger: %v", err)
	}
	if stranger.Total != 0 {
		t.Fatalf("expected no orders for a stranger, got %d", stranger.Total)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	f := newFixture(t, neverAdvance)
	ctx := context.Background()

	delivered, err := f.orders.List(ctx, demoUserID, enums.OrderStatusDelivered, pagination.Params{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if delivered.Total != 1 || delivered.Data[0].Number != "BB-2024-001" {
		t.Fatalf("expected only the delivered seed order, got %+v", delivered.Data)
	}

	cancelled, err := f.orders.List(ctx, demoUserID, enums.OrderStatusCancelled, pagination.Params{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if cancelled.Total != 0 {
		t.Fatalf("expected no cancelled orders, got %d", cancelled.Total)
	}
}

func TestGetScopedToOwner(t *testing.T) {
	f := newFixture(t, neverAdvance)

	_, err := f.orders.Get(context.Background(), uuid.New(), OrderHistorySecond)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeOrderNotFound {
		t.Fatalf("expected ORDER_NOT_FOUND for foreign order, got %v", err)
	}
}

func TestGetAdvancesOneStepAtATime(t *testing.T) {
	f := newFixture(t, alwaysAdvance)
	ctx := context.Background()

	// Seeded in preparing; each read moves exactly one step forward.
	order, err := f.orders.Get(ctx, demoUserID, OrderHistorySecond)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if order.Status != enums.OrderStatusReady {
		t.Fatalf("expected preparing to advance to ready, got %s", order.Status)
	}
	if order.DeliveredAt != nil {
		t.Fatal("delivered timestamp set before delivery")
	}

	order, err = f.orders.Get(ctx, demoUserID, OrderHistorySecond)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if order.Status != enums.OrderStatusDelivered {
		t.Fatalf("expected ready to advance to delivered, got %s", order.Status)
	}
	if order.DeliveredAt == nil {
		t.Fatal("expected delivered timestamp on delivery")
	}
	deliveredAt := *order.DeliveredAt

	// Terminal orders never move or restamp.
	order, err = f.orders.Get(ctx, demoUserID, OrderHistorySecond)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if order.Status != enums.OrderStatusDelivered {
		t.Fatalf("delivered order changed status to %s", order.Status)
	}
	if order.DeliveredAt == nil || !order.DeliveredAt.Equal(deliveredAt) {
		t.Fatal("delivered timestamp changed on re-read")
	}
}

func TestGetHoldsStatusWhenRollMisses(t *testing.T) {
	f := newFixture(t, neverAdvance)

	order, err := f.orders.Get(context.Background(), demoUserID, OrderHistorySecond)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if order.Status != enums.OrderStatusPreparing {
		t.Fatalf("expected status unchanged, got %s", order.Status)
	}
}

func TestReorderRebuildsCartAtCurrentPrices(t *testing.T) {
	f := newFixture(t, neverAdvance)
	ctx := context.Background()

	got, err := f.orders.Reorder(ctx, demoUserID, OrderHistorySecond)
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected both lines restored, got %d", len(got.Items))
	}
	for _, item := range got.Items {
		product, err := f.products.FindByID(ctx, item.ProductID)
		if err != nil {
			t.Fatalf("find product: %v", err)
		}
		if !item.UnitPrice.Equal(product.Price) {
			t.Fatalf("expected current price %s for %s, got %s", product.Price, item.SKU, item.UnitPrice)
		}
	}
}

func TestReorderDropsUnavailableLines(t *testing.T) {
	f := newFixture(t, neverAdvance)
	ctx := context.Background()

	// First seeded order contains brioche buns; kill their stock.
	if err := f.products.SetInventory(ctx, catalog.ProductBriocheBuns, 0); err != nil {
		t.Fatalf("set inventory: %v", err)
	}

	got, err := f.orders.Reorder(ctx, demoUserID, OrderHistoryFirst)
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("expected only sourdough to survive, got %d lines", len(got.Items))
	}
	if got.Items[0].ProductID != catalog.ProductSourdoughLoaf {
		t.Fatalf("unexpected surviving line %+v", got.Items[0])
	}
}
