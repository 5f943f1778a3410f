package domain_test

import (
	"errors"
	"testing"

	"github.com/api-sage/account-policies/src/internal/domain"
	"github.com/shopspring/decimal"
)

func TestDepositAddsExactAmount(t *testing.T) {
	for _, amount := range []string{"500", "0", "0.01", "1234.56"} {
		a := mustSavings(t, "1000")
		before := a.Balance()

		if err := domain.Deposit(a, dec(t, amount)); err != nil {
			t.Fatalf("deposit %s: %v", amount, err)
		}
		if want := before.Add(dec(t, amount)); !a.Balance().Equal(want) {
			t.Fatalf("deposit %s: balance=%s want %s", amount, a.Balance(), want)
		}
	}
}

func TestDepositRejectsNegativeAmount(t *testing.T) {
	a := mustCurrent(t, "2000", "500")

	if err := domain.Deposit(a, dec(t, "-1")); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if !a.Balance().Equal(dec(t, "2000")) {
		t.Fatalf("balance changed to %s", a.Balance())
	}
}

func TestWithdrawBaseAccount(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		amount  string
		want    string
		wantErr error
	}{
		{"below balance", "100", "40", "60", nil},
		{"exact balance", "100", "100", "0", nil},
		{"zero amount", "100", "0", "100", nil},
		{"above balance", "100", "100.01", "100", domain.ErrInsufficientBalance},
		{"negative amount", "100", "-5", "100", domain.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := domain.NewAccount("A1", "John Doe", dec(t, tt.balance))
			if err != nil {
				t.Fatal(err)
			}

			err = domain.Withdraw(a, dec(t, tt.amount))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v want %v", err, tt.wantErr)
			}
			if !a.Balance().Equal(dec(t, tt.want)) {
				t.Fatalf("balance=%s want %s", a.Balance(), tt.want)
			}
		})
	}
}

func TestWithdrawSavingsAccount(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		amount  string
		want    string
		wantErr error
	}{
		{"leaves more than minimum", "1500", "200", "1300", nil},
		{"leaves exactly minimum", "1000", "500", "500", nil},
		{"crosses minimum", "1000", "500.01", "1000", domain.ErrMinimumBalance},
		{"opened below minimum", "300", "1", "300", domain.ErrMinimumBalance},
		{"negative amount", "1000", "-1", "1000", domain.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustSavings(t, tt.balance)

			err := domain.Withdraw(a, dec(t, tt.amount))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v want %v", err, tt.wantErr)
			}
			if !a.Balance().Equal(dec(t, tt.want)) {
				t.Fatalf("balance=%s want %s", a.Balance(), tt.want)
			}
		})
	}
}

func TestWithdrawSavingsBoundary(t *testing.T) {
	a := mustSavings(t, "1000")

	if err := domain.Withdraw(a, dec(t, "500")); err != nil {
		t.Fatalf("withdraw 500: %v", err)
	}
	if !a.Balance().Equal(dec(t, "500")) {
		t.Fatalf("balance=%s want 500", a.Balance())
	}

	if err := domain.Withdraw(a, dec(t, "1")); !errors.Is(err, domain.ErrMinimumBalance) {
		t.Fatalf("expected ErrMinimumBalance, got %v", err)
	}
	if !a.Balance().Equal(dec(t, "500")) {
		t.Fatalf("balance=%s want 500", a.Balance())
	}
}

func TestWithdrawCurrentAccount(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		amount  string
		want    string
		wantErr error
	}{
		{"within balance", "2000", "1000", "1000", nil},
		{"into overdraft", "2000", "2300", "-300", nil},
		{"exactly overdraft limit", "2000", "2500", "-500", nil},
		{"past overdraft limit", "2000", "2500.01", "2000", domain.ErrOverdraftLimitExceeded},
		{"already overdrawn", "-400", "100", "-500", nil},
		{"negative amount", "2000", "-1", "2000", domain.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustCurrent(t, tt.balance, "500")

			err := domain.Withdraw(a, dec(t, tt.amount))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v want %v", err, tt.wantErr)
			}
			if !a.Balance().Equal(dec(t, tt.want)) {
				t.Fatalf("balance=%s want %s", a.Balance(), tt.want)
			}
			if a.Balance().LessThan(domain.WithdrawalFloor(a)) {
				t.Fatalf("balance %s below floor %s", a.Balance(), domain.WithdrawalFloor(a))
			}
		})
	}
}

func TestMergeIntoCopiesSourceBalance(t *testing.T) {
	current := mustCurrent(t, "1000", "500")
	savings := mustSavings(t, "1500")

	merged, err := domain.MergeInto(current, savings)
	if err != nil {
		t.Fatal(err)
	}
	if merged != current {
		t.Fatal("expected MergeInto to return the target account")
	}
	if !current.Balance().Equal(dec(t, "2500")) {
		t.Fatalf("current=%s want 2500", current.Balance())
	}
	if !savings.Balance().Equal(dec(t, "1500")) {
		t.Fatalf("savings=%s want 1500 (source is not debited)", savings.Balance())
	}

	if _, err := domain.MergeInto(merged, savings); err != nil {
		t.Fatal(err)
	}
	if !current.Balance().Equal(dec(t, "4000")) {
		t.Fatalf("current=%s want 4000 after chained merge", current.Balance())
	}
}

func TestMergeIntoRejectsOtherKinds(t *testing.T) {
	base, err := domain.NewAccount("A1", "John Doe", decimal.NewFromInt(10))
	if err != nil {
		t.Fatal(err)
	}
	current := mustCurrent(t, "1000", "500")
	savings := mustSavings(t, "1500")

	pairs := []struct {
		name           string
		target, source *domain.Account
	}{
		{"savings into savings", savings, mustSavings(t, "700")},
		{"current into current", current, mustCurrent(t, "1", "0")},
		{"base into current", current, base},
		{"savings into base", base, savings},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			before := p.target.Balance()
			if _, err := domain.MergeInto(p.target, p.source); !errors.Is(err, domain.ErrMergeNotSupported) {
				t.Fatalf("expected ErrMergeNotSupported, got %v", err)
			}
			if !p.target.Balance().Equal(before) {
				t.Fatalf("target balance changed to %s", p.target.Balance())
			}
		})
	}
}

func TestWithdrawalFloor(t *testing.T) {
	base, err := domain.NewAccount("A1", "John Doe", decimal.Zero)
	if err != nil {
		t.Fatal(err)
	}

	if got := domain.WithdrawalFloor(base); !got.IsZero() {
		t.Fatalf("base floor=%s want 0", got)
	}
	if got := domain.WithdrawalFloor(mustSavings(t, "1000")); !got.Equal(domain.MinimumSavingsBalance) {
		t.Fatalf("savings floor=%s want %s", got, domain.MinimumSavingsBalance)
	}
	if got := domain.WithdrawalFloor(mustCurrent(t, "0", "250")); !got.Equal(dec(t, "-250")) {
		t.Fatalf("current floor=%s want -250", got)
	}
}
