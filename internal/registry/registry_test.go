package registry

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"

	"github.com/bytepay/bytepay/internal/models"
	"github.com/bytepay/bytepay/internal/repository"
	"github.com/bytepay/bytepay/pkg/logger"
)

func newTestRegistry(t *testing.T) models.MerchantRegistry {
	t.Helper()

	// One shared in-memory database per test, named after the test so
	// parallel packages never collide.
	dsn := fmt.Sprintf("file:registry_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	repo, err := repository.New(sqlite.Open(dsn), logger.NewNop())
	if err != nil {
		t.Fatalf("failed to open test repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	return New(repo, logger.NewNop())
}

func merchantFields(name string) *models.MerchantFields {
	return &models.MerchantFields{
		CompanyName:      name,
		CompanyAddress:   "1 Market Street",
		WalletAddress:    "0x1234567890123456789012345678901234567890",
		CompanyLogo:      "https://example.com/logo.png",
		StoreDescription: "Test store",
		ContactEmail:     "owner@example.com",
		PaymentOptions:   []string{"ETH", "USDT"},
	}
}

func TestCreateAndGet(t *testing.T) {
	reg := newTestRegistry(t)

	created, err := reg.Create(merchantFields("Acme"))
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.MerchantID == "" {
		t.Fatal("Create() should assign a merchant_id")
	}
	if !created.IsActive {
		t.Error("Create() should set is_active=true")
	}
	if created.CreatedAt.IsZero() {
		t.Error("Create() should set created_at")
	}

	got, err := reg.Get(created.MerchantID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.CompanyName != "Acme" {
		t.Errorf("CompanyName = %q, want %q", got.CompanyName, "Acme")
	}
	if got.WalletAddress != "0x1234567890123456789012345678901234567890" {
		t.Errorf("WalletAddress = %q", got.WalletAddress)
	}
	if got.ContactEmail != "owner@example.com" {
		t.Errorf("ContactEmail = %q", got.ContactEmail)
	}
	if len(got.PaymentOptions) != 2 || got.PaymentOptions[0] != "ETH" || got.PaymentOptions[1] != "USDT" {
		t.Errorf("PaymentOptions = %v, want [ETH USDT]", got.PaymentOptions)
	}
}

func TestMerchantIDsAreUnique(t *testing.T) {
	reg := newTestRegistry(t)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		m, err := reg.Create(merchantFields(fmt.Sprintf("Store %d", i)))
		if err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		if seen[m.MerchantID] {
			t.Fatalf("duplicate merchant_id %q", m.MerchantID)
		}
		seen[m.MerchantID] = true
	}
}

func TestGetNotFound(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Get("no-such-merchant")
	if !errors.Is(err, models.ErrMerchantNotFound) {
		t.Errorf("Get() error = %v, want ErrMerchantNotFound", err)
	}
}

func TestListPagination(t *testing.T) {
	reg := newTestRegistry(t)

	var ids []string
	for i := 0; i < 3; i++ {
		m, err := reg.Create(merchantFields(fmt.Sprintf("Store %d", i)))
		if err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		ids = append(ids, m.MerchantID)
	}

	page, err := reg.List(1, 2)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("List(1, 2) returned %d merchants, want 2", len(page))
	}
	if page[0].MerchantID != ids[1] || page[1].MerchantID != ids[2] {
		t.Errorf("List(1, 2) returned wrong records, want the 2nd and 3rd inserted")
	}

	all, err := reg.List(0, 0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("List(0, 0) returned %d merchants, want all 3 via the default limit", len(all))
	}
}

func TestUpdateIsFullReplace(t *testing.T) {
	reg := newTestRegistry(t)

	created, err := reg.Create(merchantFields("Acme"))
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Optional fields left empty must be cleared, not preserved.
	updated, err := reg.Update(created.MerchantID, &models.MerchantFields{
		CompanyName:    "Acme Renamed",
		WalletAddress:  "0x9876543210987654321098765432109876543210",
		ContactEmail:   "new@example.com",
		PaymentOptions: []string{"ETH"},
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if updated.MerchantID != created.MerchantID {
		t.Error("Update() must not change merchant_id")
	}
	if updated.CompanyName != "Acme Renamed" {
		t.Errorf("CompanyName = %q, want %q", updated.CompanyName, "Acme Renamed")
	}
	if updated.CompanyAddress != "" {
		t.Errorf("CompanyAddress = %q, want cleared", updated.CompanyAddress)
	}
	if updated.StoreDescription != "" {
		t.Errorf("StoreDescription = %q, want cleared", updated.StoreDescription)
	}
	if updated.CompanyLogo != "" {
		t.Errorf("CompanyLogo = %q, want cleared", updated.CompanyLogo)
	}

	got, err := reg.Get(created.MerchantID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.WalletAddress != "0x9876543210987654321098765432109876543210" {
		t.Errorf("WalletAddress = %q, not replaced", got.WalletAddress)
	}
	if got.CompanyAddress != "" {
		t.Errorf("CompanyAddress = %q, want cleared after reload", got.CompanyAddress)
	}
}

func TestUpdateNotFound(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Update("no-such-merchant", merchantFields("Acme"))
	if !errors.Is(err, models.ErrMerchantNotFound) {
		t.Errorf("Update() error = %v, want ErrMerchantNotFound", err)
	}
}

func TestDeleteIsNotIdempotent(t *testing.T) {
	reg := newTestRegistry(t)

	created, err := reg.Create(merchantFields("Acme"))
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := reg.Delete(created.MerchantID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	if _, err := reg.Get(created.MerchantID); !errors.Is(err, models.ErrMerchantNotFound) {
		t.Errorf("Get() after delete = %v, want ErrMerchantNotFound", err)
	}

	if err := reg.Delete(created.MerchantID); !errors.Is(err, models.ErrMerchantNotFound) {
		t.Errorf("second Delete() = %v, want ErrMerchantNotFound", err)
	}
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		skip, limit         int
		wantSkip, wantLimit int
	}{
		{0, 0, 0, DefaultLimit},
		{-5, -1, 0, DefaultLimit},
		{10, 50, 10, 50},
		{0, MaxLimit + 1, 0, MaxLimit},
	}

	for _, tt := range tests {
		skip, limit := NormalizePage(tt.skip, tt.limit)
		if skip != tt.wantSkip || limit != tt.wantLimit {
			t.Errorf("NormalizePage(%d, %d) = (%d, %d), want (%d, %d)",
				tt.skip, tt.limit, skip, limit, tt.wantSkip, tt.wantLimit)
		}
	}
}
